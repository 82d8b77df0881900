package shipping

import (
	"errors"
	"testing"
)

func TestFindMethod(t *testing.T) {
	svc := &Service{Methods: DefaultMethods()}
	m, err := svc.Find("Colissimo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.PriceCents() != 590 {
		t.Fatalf("expected 590 cents, got %d", m.PriceCents())
	}
}

func TestFindUnknownMethod(t *testing.T) {
	svc := &Service{Methods: DefaultMethods()}
	if _, err := svc.Find("drone"); !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("expected ErrUnknownMethod, got %v", err)
	}
}
