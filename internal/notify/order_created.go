package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-sticker/internal/common"
)

// TaskOrderCreated is the asynq task type enqueued after a successful checkout.
const TaskOrderCreated = "notify:order_created"

// OrderCreatedPayload carries everything the worker needs to render the
// confirmation without a database round trip.
type OrderCreatedPayload struct {
	OrderID    string `json:"orderId"`
	Email      string `json:"email"`
	TotalCents int64  `json:"totalCents"`
}

// NewOrderCreatedTask builds the confirmation task for an order.
func NewOrderCreatedTask(orderID, email string, totalCents int64) (*asynq.Task, error) {
	payload, err := json.Marshal(OrderCreatedPayload{OrderID: orderID, Email: email, TotalCents: totalCents})
	if err != nil {
		return nil, fmt.Errorf("encode order-created payload: %w", err)
	}
	return asynq.NewTask(TaskOrderCreated, payload, asynq.MaxRetry(5)), nil
}

// OrderCreatedHandler sends the order confirmation email.
type OrderCreatedHandler struct {
	Mail   common.EmailSender
	Logger *zerolog.Logger
}

// ProcessTask implements asynq.Handler.
func (h OrderCreatedHandler) ProcessTask(_ context.Context, task *asynq.Task) error {
	var payload OrderCreatedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("decode order-created payload: %w", err)
	}
	if h.Logger != nil {
		h.Logger.Info().
			Str("order_id", payload.OrderID).
			Int64("total_cents", payload.TotalCents).
			Msg("order confirmation")
	}
	if h.Mail == nil || payload.Email == "" {
		return nil
	}
	subject := fmt.Sprintf("Commande %s confirmée", payload.OrderID)
	body := fmt.Sprintf("<p>Merci ! Votre commande %s d'un montant de %.2f € est confirmée.</p>",
		payload.OrderID, float64(payload.TotalCents)/100)
	return h.Mail.Send(payload.Email, subject, body)
}
