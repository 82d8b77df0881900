package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-sticker/internal/cart"
	"github.com/noah-isme/backend-sticker/internal/notify"
	"github.com/noah-isme/backend-sticker/internal/obs"
	"github.com/noah-isme/backend-sticker/internal/order"
	"github.com/noah-isme/backend-sticker/internal/promo"
	"github.com/noah-isme/backend-sticker/internal/shipping"
)

// ErrEmptyCart is returned when checkout is attempted on a cart without lines.
var ErrEmptyCart = errors.New("cart is empty")

// Input is the checkout request: the cart to finalise, the chosen shipping
// method, and where to send the confirmation.
type Input struct {
	CartID         string `json:"cartId" validate:"required"`
	ShippingMethod string `json:"shippingMethod" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
}

// Output is the created order reference plus the breakdown the payment step
// consumes verbatim.
type Output struct {
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status"`
	Breakdown Breakdown `json:"breakdown"`
}

// Service finalises a cart into an order.
type Service struct {
	Pool     *pgxpool.Pool
	Orders   *order.Repo
	CartSvc  *cart.Service
	Shipping *shipping.Service
	Promos   *promo.Store
	TaxBps   int64
	Currency string
	Tasks    *asynq.Client
	Logger   *zerolog.Logger
	Now      func() time.Time
}

func (s *Service) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create loads the cart, re-resolves its promotions, assembles the final
// breakdown, persists the order transactionally, enqueues the confirmation
// task, and clears the cart. Promotion codes that stopped validating since
// they were applied are dropped silently; a stale code must not block a
// purchase.
func (s *Service) Create(ctx context.Context, in Input) (Output, error) {
	if s == nil || s.Pool == nil || s.Orders == nil || s.CartSvc == nil {
		return Output{}, errors.New("checkout service not configured")
	}
	view, err := s.CartSvc.Get(ctx, in.CartID)
	if err != nil {
		return Output{}, err
	}
	if len(view.Cart.Lines) == 0 {
		return Output{}, ErrEmptyCart
	}
	method, err := s.Shipping.Find(in.ShippingMethod)
	if err != nil {
		return Output{}, err
	}
	promos := s.CartSvc.Promotions(ctx, view.Cart)
	breakdown := Assemble(view.TotalCents, s.TaxBps, method.PriceCents(), promos)

	items := make([]order.Item, 0, len(view.Cart.Lines))
	for _, l := range view.Cart.Lines {
		items = append(items, order.Item{
			ProductID: l.ProductID,
			Config:    l.Config,
			Qty:       l.Qty,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}
	codes := make([]string, 0, len(promos))
	for _, p := range promos {
		codes = append(codes, p.Code)
	}
	o := order.Order{
		ID:             uuid.NewString(),
		Status:         "PENDING_PAYMENT",
		Currency:       s.Currency,
		Email:          strings.TrimSpace(in.Email),
		Subtotal:       breakdown.Subtotal,
		Tax:            breakdown.Tax,
		Shipping:       breakdown.Shipping,
		Discount:       breakdown.Discount,
		Total:          breakdown.Total,
		ShippingMethod: method.Code,
		PromoCodes:     codes,
		Items:          items,
		CreatedAt:      s.now().UTC(),
	}

	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Output{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	if err := s.Orders.Create(ctx, tx, o); err != nil {
		return Output{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return Output{}, fmt.Errorf("commit order: %w", err)
	}
	if obs.OrdersCreatedTotal != nil {
		obs.OrdersCreatedTotal.Inc()
	}
	if obs.OrderValueCents != nil {
		obs.OrderValueCents.Observe(float64(o.Total))
	}

	if s.Promos != nil && len(codes) > 0 {
		if err := s.Promos.MarkUsed(ctx, codes); err != nil && s.Logger != nil {
			s.Logger.Error().Err(err).Str("order_id", o.ID).Msg("count promotion usage")
		}
	}
	if err := s.CartSvc.Clear(ctx, in.CartID); err != nil && s.Logger != nil {
		s.Logger.Error().Err(err).Str("cart_id", in.CartID).Msg("clear cart after checkout")
	}
	if s.Tasks != nil {
		task, err := notify.NewOrderCreatedTask(o.ID, o.Email, int64(o.Total))
		if err == nil {
			_, err = s.Tasks.EnqueueContext(ctx, task)
		}
		if err != nil && s.Logger != nil {
			s.Logger.Error().Err(err).Str("order_id", o.ID).Msg("enqueue order confirmation")
		}
	}

	return Output{OrderID: o.ID, Status: o.Status, Breakdown: breakdown}, nil
}
