package notify

import (
	"context"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-sticker/internal/common"
)

func TestOrderCreatedSendsConfirmation(t *testing.T) {
	mailer := &common.InMemoryEmail{}
	handler := OrderCreatedHandler{Mail: mailer}

	task, err := NewOrderCreatedTask("ord-123", "client@example.com", 9000)
	require.NoError(t, err)

	require.NoError(t, handler.ProcessTask(context.Background(), task))
	require.Len(t, mailer.Outbox, 1)
	require.Equal(t, "client@example.com", mailer.Outbox[0].To)
	require.Contains(t, mailer.Outbox[0].Subject, "ord-123")
	require.Contains(t, mailer.Outbox[0].HTML, "90.00")
}

func TestOrderCreatedSkipsWithoutEmail(t *testing.T) {
	mailer := &common.InMemoryEmail{}
	handler := OrderCreatedHandler{Mail: mailer}

	task, err := NewOrderCreatedTask("ord-456", "", 1500)
	require.NoError(t, err)

	require.NoError(t, handler.ProcessTask(context.Background(), task))
	require.Empty(t, mailer.Outbox)
}

func TestOrderCreatedRejectsMalformedPayload(t *testing.T) {
	handler := OrderCreatedHandler{}
	task := asynq.NewTask(TaskOrderCreated, []byte("{not json"))
	require.Error(t, handler.ProcessTask(context.Background(), task))
}
