package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-sticker/internal/catalog"
	"github.com/noah-isme/backend-sticker/internal/pricing"
)

type quoteResponse struct {
	Data catalog.Quote `json:"data"`
}

type optionsResponse struct {
	Data catalog.Options `json:"data"`
}

func newRouter() http.Handler {
	svc := &catalog.Service{Table: pricing.DefaultTable()}
	handler := &catalog.Handler{Svc: svc, Validate: validator.New()}
	r := chi.NewRouter()
	r.Post("/api/v1/quote", handler.Quote)
	r.Get("/api/v1/options", handler.Options)
	return r
}

func TestQuoteCircle(t *testing.T) {
	router := newRouter()
	body := `{"shape":"rond","support":"vinyle_blanc","diameterCm":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quote", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp quoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, pricing.Cents(353), resp.Data.UnitCents)

	var tier100 pricing.TierPrice
	for _, row := range resp.Data.Matrix {
		if row.Qty == 100 {
			tier100 = row
		}
	}
	require.Equal(t, pricing.Cents(289), tier100.Unit)
	require.Equal(t, pricing.Cents(28_900), tier100.LineTotal)
}

func TestQuoteIncompleteConfiguration(t *testing.T) {
	router := newRouter()
	body := `{"shape":"rond","support":"vinyle_blanc"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quote", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestOptionsListing(t *testing.T) {
	router := newRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/options", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp optionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Shapes, 4)
	require.Len(t, resp.Data.Supports, 4)
	require.NotEmpty(t, resp.Data.Tiers)

	prev := 0
	for _, tier := range resp.Data.Tiers {
		require.Greater(t, tier.Qty, prev)
		prev = tier.Qty
	}
}
