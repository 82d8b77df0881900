package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/noah-isme/backend-sticker/internal/pricing"
)

// ErrNotFound indicates the requested order does not exist.
var ErrNotFound = errors.New("order not found")

// Item is one frozen line of a completed order.
type Item struct {
	ProductID string                `json:"productId"`
	Config    pricing.Configuration `json:"config"`
	Qty       int                   `json:"qty"`
	UnitPrice pricing.Cents         `json:"unitPriceCents"`
	Subtotal  pricing.Cents         `json:"subtotalCents"`
}

// Order is a finalised checkout with its full pricing breakdown.
type Order struct {
	ID             string        `json:"id"`
	Status         string        `json:"status"`
	Currency       string        `json:"currency"`
	Email          string        `json:"email,omitempty"`
	Subtotal       pricing.Cents `json:"subtotalCents"`
	Tax            pricing.Cents `json:"taxCents"`
	Shipping       pricing.Cents `json:"shippingCents"`
	Discount       pricing.Cents `json:"discountCents"`
	Total          pricing.Cents `json:"totalCents"`
	ShippingMethod string        `json:"shippingMethod"`
	PromoCodes     []string      `json:"promoCodes,omitempty"`
	Items          []Item        `json:"items"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// Repo persists orders with plain SQL over pgx.
type Repo struct {
	Pool *pgxpool.Pool
}

// Create inserts the order and its items inside the provided transaction.
func (r *Repo) Create(ctx context.Context, tx pgx.Tx, o Order) error {
	if r == nil {
		return errors.New("order repo not configured")
	}
	const insertOrder = `
		INSERT INTO orders (id, status, currency, email, subtotal_cents, tax_cents, shipping_cents, discount_cents, total_cents, shipping_method, promo_codes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	if _, err := tx.Exec(ctx, insertOrder,
		o.ID, o.Status, o.Currency, o.Email,
		int64(o.Subtotal), int64(o.Tax), int64(o.Shipping), int64(o.Discount), int64(o.Total),
		o.ShippingMethod, o.PromoCodes, o.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	const insertItem = `
		INSERT INTO order_items (order_id, position, product_id, config, qty, unit_price_cents, subtotal_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, it := range o.Items {
		cfg, err := json.Marshal(it.Config)
		if err != nil {
			return fmt.Errorf("encode item config: %w", err)
		}
		if _, err := tx.Exec(ctx, insertItem,
			o.ID, i, it.ProductID, cfg, it.Qty, int64(it.UnitPrice), int64(it.Subtotal),
		); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// Get loads one order with its items.
func (r *Repo) Get(ctx context.Context, id string) (Order, error) {
	if r == nil || r.Pool == nil {
		return Order{}, errors.New("order repo not configured")
	}
	const selectOrder = `
		SELECT id, status, currency, email, subtotal_cents, tax_cents, shipping_cents, discount_cents, total_cents, shipping_method, promo_codes, created_at
		FROM orders WHERE id = $1`
	var o Order
	err := r.Pool.QueryRow(ctx, selectOrder, id).Scan(
		&o.ID, &o.Status, &o.Currency, &o.Email,
		&o.Subtotal, &o.Tax, &o.Shipping, &o.Discount, &o.Total,
		&o.ShippingMethod, &o.PromoCodes, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		return Order{}, fmt.Errorf("load order: %w", err)
	}
	const selectItems = `
		SELECT product_id, config, qty, unit_price_cents, subtotal_cents
		FROM order_items WHERE order_id = $1 ORDER BY position`
	rows, err := r.Pool.Query(ctx, selectItems, id)
	if err != nil {
		return Order{}, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it Item
		var cfg []byte
		if err := rows.Scan(&it.ProductID, &cfg, &it.Qty, &it.UnitPrice, &it.Subtotal); err != nil {
			return Order{}, fmt.Errorf("scan order item: %w", err)
		}
		if err := json.Unmarshal(cfg, &it.Config); err != nil {
			return Order{}, fmt.Errorf("decode item config: %w", err)
		}
		o.Items = append(o.Items, it)
	}
	if err := rows.Err(); err != nil {
		return Order{}, err
	}
	return o, nil
}
