package shipping

import (
	"net/http"

	"github.com/noah-isme/backend-sticker/internal/common"
)

// Handler lists shipping methods to the checkout UI.
type Handler struct {
	Svc *Service
}

// List returns the available methods with prices in both units so the UI can
// render major units while the checkout call sends the method code only.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "shipping service not configured", nil)
		return
	}
	type methodView struct {
		Code       string  `json:"code"`
		Label      string  `json:"label"`
		Price      float64 `json:"price"`
		PriceCents int64   `json:"priceCents"`
		ETD        string  `json:"etd"`
	}
	out := make([]methodView, 0, len(h.Svc.Methods))
	for _, m := range h.Svc.Methods {
		out = append(out, methodView{
			Code:       m.Code,
			Label:      m.Label,
			Price:      float64(m.Price),
			PriceCents: int64(m.PriceCents()),
			ETD:        m.ETD,
		})
	}
	common.Data(w, http.StatusOK, out)
}
