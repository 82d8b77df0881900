package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	validator "github.com/go-playground/validator/v10"

	"github.com/noah-isme/backend-sticker/internal/common"
	"github.com/noah-isme/backend-sticker/internal/pricing"
)

// Handler serves the configurator endpoints.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
}

type quoteRequest struct {
	Shape      string  `json:"shape" validate:"required"`
	Support    string  `json:"support" validate:"required"`
	WidthCm    float64 `json:"widthCm" validate:"gte=0"`
	HeightCm   float64 `json:"heightCm" validate:"gte=0"`
	DiameterCm float64 `json:"diameterCm" validate:"gte=0"`
}

// Quote prices a configuration and returns the unit price with the full tier
// matrix.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog service not configured", nil)
		return
	}
	var payload quoteRequest
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
	cfg := pricing.Configuration{
		Shape:      pricing.Shape(payload.Shape),
		Support:    pricing.Support(payload.Support),
		WidthCm:    payload.WidthCm,
		HeightCm:   payload.HeightCm,
		DiameterCm: payload.DiameterCm,
	}
	quote, err := h.Svc.Quote(r.Context(), cfg)
	if err != nil {
		if errors.Is(err, ErrIncompleteConfiguration) {
			common.JSONError(w, http.StatusUnprocessableEntity, "INCOMPLETE_CONFIG", "configuration is incomplete", nil)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to price configuration", nil)
		return
	}
	common.Data(w, http.StatusOK, quote)
}

// Options lists shapes, supports, and the tier schedule.
func (h *Handler) Options(w http.ResponseWriter, _ *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog service not configured", nil)
		return
	}
	common.Data(w, http.StatusOK, h.Svc.Options())
}
