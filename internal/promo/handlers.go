package promo

import (
	"encoding/json"
	"errors"
	"net/http"

	validator "github.com/go-playground/validator/v10"

	"github.com/noah-isme/backend-sticker/internal/common"
	"github.com/noah-isme/backend-sticker/internal/pricing"
)

// Handler exposes promotion validation to the checkout UI.
type Handler struct {
	Store    *Store
	Validate *validator.Validate
}

type validateRequest struct {
	Code          string `json:"code" validate:"required"`
	ItemsCents    int64  `json:"itemsCents" validate:"gte=0"`
	ShippingCents int64  `json:"shippingCents" validate:"gte=0"`
}

// ValidateCode resolves a code against the supplied subtotals and returns the
// applied promotion together with the discount it would yield right now.
func (h *Handler) ValidateCode(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "promotion store not configured", nil)
		return
	}
	var payload validateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(payload); err != nil {
			common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
			return
		}
	}
	promotion, err := h.Store.Resolve(r.Context(), payload.Code, pricing.Cents(payload.ItemsCents))
	if err != nil {
		h.writeError(w, err)
		return
	}
	discount := DiscountFor(promotion, pricing.Cents(payload.ItemsCents), pricing.Cents(payload.ShippingCents))
	common.Data(w, http.StatusOK, map[string]any{
		"promotion":     promotion,
		"discountCents": discount,
	})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		common.JSONError(w, http.StatusNotFound, "PROMO_NOT_FOUND", "promotion code not found", nil)
	case errors.Is(err, ErrInactive):
		common.JSONError(w, http.StatusUnprocessableEntity, "PROMO_INACTIVE", "promotion not active", nil)
	case errors.Is(err, ErrExpired):
		common.JSONError(w, http.StatusUnprocessableEntity, "PROMO_EXPIRED", "promotion expired", nil)
	case errors.Is(err, ErrUsageLimitReached):
		common.JSONError(w, http.StatusUnprocessableEntity, "PROMO_EXHAUSTED", "promotion usage limit reached", nil)
	case errors.Is(err, ErrMinimumSpendUnmet):
		common.JSONError(w, http.StatusUnprocessableEntity, "PROMO_MIN_SPEND", "minimum spend not met", nil)
	default:
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to validate promotion", nil)
	}
}
