package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/noah-isme/backend-sticker/internal/obs"
	"github.com/noah-isme/backend-sticker/internal/pricing"
	"github.com/noah-isme/backend-sticker/internal/promo"
)

func countMutation(op string) {
	if obs.CartMutationsTotal != nil {
		obs.CartMutationsTotal.WithLabelValues(op).Inc()
	}
}

// ErrNotFound indicates the requested cart could not be located.
var ErrNotFound = errors.New("cart not found")

// ErrInvalidInput is returned when the provided payload is invalid.
var ErrInvalidInput = errors.New("invalid input")

// Service encapsulates cart domain operations. Prices are always recomputed
// server-side from the pricing table when a line enters the cart; the client
// never dictates a unit price.
type Service struct {
	Store  *Store
	Table  pricing.Table
	Promos *promo.Store
}

// View is the cart payload handed to the UI: the line list plus derived
// totals and the live discount preview for applied promotion codes.
type View struct {
	Cart          Cart              `json:"cart"`
	TotalItems    int               `json:"totalItems"`
	TotalCents    pricing.Cents     `json:"totalCents"`
	Promotions    []promo.Promotion `json:"promotions,omitempty"`
	DiscountCents pricing.Cents     `json:"discountCents"`
}

// Create allocates a fresh cart for the provided anonymous session id,
// generating one when absent.
func (s *Service) Create(ctx context.Context, anonID string) (Cart, error) {
	if s == nil || s.Store == nil {
		return Cart{}, errors.New("cart service not configured")
	}
	if anonID == "" {
		anonID = uuid.NewString()
	}
	c := Cart{ID: uuid.NewString(), AnonID: anonID}
	if err := s.Store.Save(ctx, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

// Get loads the cart and assembles its view. Promotion codes that no longer
// validate are shown without a discount rather than failing the whole view.
func (s *Service) Get(ctx context.Context, id string) (View, error) {
	if s == nil || s.Store == nil {
		return View{}, errors.New("cart service not configured")
	}
	c, err := s.Store.Load(ctx, id)
	if err != nil {
		return View{}, err
	}
	return s.view(ctx, c), nil
}

// AddItem prices the configuration and merges the resulting line into the
// cart. Incomplete configurations price at zero and are rejected here: a
// zero quote means "not sellable", never a free sticker.
func (s *Service) AddItem(ctx context.Context, cartID, productID string, cfg pricing.Configuration, qty int) (View, error) {
	if s == nil || s.Store == nil {
		return View{}, errors.New("cart service not configured")
	}
	if qty <= 0 {
		return View{}, fmt.Errorf("qty must be positive: %w", ErrInvalidInput)
	}
	if productID == "" {
		return View{}, fmt.Errorf("product id required: %w", ErrInvalidInput)
	}
	unit := s.Table.UnitPrice(cfg)
	if unit <= 0 {
		return View{}, fmt.Errorf("configuration is incomplete: %w", ErrInvalidInput)
	}
	c, err := s.Store.Load(ctx, cartID)
	if err != nil {
		return View{}, err
	}
	c.Add(Line{
		ProductID: productID,
		Config:    cfg,
		Qty:       qty,
		UnitPrice: unit,
		Subtotal:  unit * pricing.Cents(qty),
	})
	if err := s.Store.Save(ctx, c); err != nil {
		return View{}, err
	}
	countMutation("add_item")
	return s.view(ctx, c), nil
}

// RemoveItem drops the line at index. An out-of-range index leaves the cart
// untouched and still returns the current view.
func (s *Service) RemoveItem(ctx context.Context, cartID string, index int) (View, error) {
	if s == nil || s.Store == nil {
		return View{}, errors.New("cart service not configured")
	}
	c, err := s.Store.Load(ctx, cartID)
	if err != nil {
		return View{}, err
	}
	if c.Remove(index) {
		if err := s.Store.Save(ctx, c); err != nil {
			return View{}, err
		}
		countMutation("remove_item")
	}
	return s.view(ctx, c), nil
}

// ApplyPromo validates the code against the current subtotal and attaches it.
func (s *Service) ApplyPromo(ctx context.Context, cartID, code string) (View, error) {
	if s == nil || s.Store == nil {
		return View{}, errors.New("cart service not configured")
	}
	if code == "" {
		return View{}, fmt.Errorf("promotion code required: %w", ErrInvalidInput)
	}
	c, err := s.Store.Load(ctx, cartID)
	if err != nil {
		return View{}, err
	}
	if s.Promos == nil {
		return View{}, errors.New("promotion store not configured")
	}
	if _, err := s.Promos.Resolve(ctx, code, c.TotalCents()); err != nil {
		return View{}, err
	}
	c.ApplyPromo(code)
	if err := s.Store.Save(ctx, c); err != nil {
		return View{}, err
	}
	countMutation("apply_promo")
	return s.view(ctx, c), nil
}

// RemovePromo detaches a code from the cart.
func (s *Service) RemovePromo(ctx context.Context, cartID, code string) (View, error) {
	if s == nil || s.Store == nil {
		return View{}, errors.New("cart service not configured")
	}
	c, err := s.Store.Load(ctx, cartID)
	if err != nil {
		return View{}, err
	}
	c.RemovePromo(code)
	if err := s.Store.Save(ctx, c); err != nil {
		return View{}, err
	}
	countMutation("remove_promo")
	return s.view(ctx, c), nil
}

// Clear empties the cart after order completion.
func (s *Service) Clear(ctx context.Context, cartID string) error {
	if s == nil || s.Store == nil {
		return errors.New("cart service not configured")
	}
	c, err := s.Store.Load(ctx, cartID)
	if err != nil {
		return err
	}
	c.Clear()
	if err := s.Store.Save(ctx, c); err != nil {
		return err
	}
	countMutation("clear")
	return nil
}

// Promotions re-resolves the cart's applied codes against its current items
// subtotal. Codes that stopped validating are skipped, not errors: the
// checkout must stay reachable with a stale code on the cart.
func (s *Service) Promotions(ctx context.Context, c Cart) []promo.Promotion {
	if s == nil || s.Promos == nil || len(c.PromoCodes) == 0 {
		return nil
	}
	resolved := make([]promo.Promotion, 0, len(c.PromoCodes))
	for _, code := range c.PromoCodes {
		p, err := s.Promos.Resolve(ctx, code, c.TotalCents())
		if err != nil {
			continue
		}
		resolved = append(resolved, p)
	}
	return resolved
}

func (s *Service) view(ctx context.Context, c Cart) View {
	promos := s.Promotions(ctx, c)
	// Shipping is unknown until checkout, so the cart preview only shows
	// item-targeting discounts.
	discount := promo.Total(promos, c.TotalCents(), 0)
	return View{
		Cart:          c,
		TotalItems:    c.TotalItems(),
		TotalCents:    c.TotalCents(),
		Promotions:    promos,
		DiscountCents: discount,
	}
}
