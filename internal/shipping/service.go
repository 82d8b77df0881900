package shipping

import (
	"errors"
	"strings"

	"github.com/noah-isme/backend-sticker/internal/pricing"
)

// ErrUnknownMethod is returned when a checkout references a method code the
// catalogue does not carry.
var ErrUnknownMethod = errors.New("unknown shipping method")

// Method is one deliverable shipping option. The aggregator quotes prices in
// major units; conversion to Cents happens here, at the boundary, and nowhere
// downstream.
type Method struct {
	Code  string        `json:"code"`
	Label string        `json:"label"`
	Price pricing.Major `json:"price"`
	ETD   string        `json:"etd"`
}

// PriceCents converts the quoted price to minor units.
func (m Method) PriceCents() pricing.Cents {
	return pricing.CentsFromMajor(m.Price)
}

// Service owns the static shipping method table.
type Service struct {
	Methods []Method
}

// DefaultMethods returns the production shipping options.
func DefaultMethods() []Method {
	return []Method{
		{Code: "lettre_suivie", Label: "Lettre suivie", Price: 3.50, ETD: "3-5"},
		{Code: "colissimo", Label: "Colissimo", Price: 5.90, ETD: "2-3"},
		{Code: "chronopost", Label: "Chronopost Express", Price: 12.00, ETD: "1"},
	}
}

// Find resolves a method by code, case-insensitively.
func (s *Service) Find(code string) (Method, error) {
	if s == nil {
		return Method{}, errors.New("shipping service not configured")
	}
	code = strings.ToLower(strings.TrimSpace(code))
	for _, m := range s.Methods {
		if strings.ToLower(m.Code) == code {
			return m, nil
		}
	}
	return Method{}, ErrUnknownMethod
}
