package promo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/noah-isme/backend-sticker/internal/obs"
	"github.com/noah-isme/backend-sticker/internal/pricing"
)

var (
	// ErrNotFound is returned when no promotion carries the requested code.
	ErrNotFound = errors.New("promotion not found")
	// ErrInactive is returned when the promotion is disabled or not yet valid.
	ErrInactive = errors.New("promotion not active")
	// ErrExpired is returned when the promotion validity window has passed.
	ErrExpired = errors.New("promotion expired")
	// ErrUsageLimitReached indicates the promotion exhausted its redemption quota.
	ErrUsageLimitReached = errors.New("promotion usage limit reached")
	// ErrMinimumSpendUnmet indicates the items subtotal did not meet the promotion requirement.
	ErrMinimumSpendUnmet = errors.New("promotion minimum spend not met")
)

// Record is a promotion row as stored.
type Record struct {
	Code          string
	Kind          string
	Target        string
	Value         float64
	MinSpendCents int64
	UsageLimit    *int32
	UsedCount     int32
	Active        bool
	ValidFrom     *time.Time
	ValidTo       *time.Time
}

// Store resolves promotion codes from Postgres.
type Store struct {
	Pool *pgxpool.Pool
	Now  func() time.Time
}

func (s *Store) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// GetByCode loads the raw promotion record. Codes are matched case-insensitively.
func (s *Store) GetByCode(ctx context.Context, code string) (Record, error) {
	if s == nil || s.Pool == nil {
		return Record{}, errors.New("promo store not configured")
	}
	const q = `
		SELECT code, kind, target, value, min_spend_cents, usage_limit, used_count, active, valid_from, valid_to
		FROM promotions
		WHERE lower(code) = lower($1)`
	var rec Record
	err := s.Pool.QueryRow(ctx, q, strings.TrimSpace(code)).Scan(
		&rec.Code, &rec.Kind, &rec.Target, &rec.Value, &rec.MinSpendCents,
		&rec.UsageLimit, &rec.UsedCount, &rec.Active, &rec.ValidFrom, &rec.ValidTo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("load promotion: %w", err)
	}
	return rec, nil
}

// Resolve validates a code against the current items subtotal and returns the
// applied promotion. Validation failures are sentinel errors the handler maps
// to user-facing rejections; a code that validates here can still discount
// zero at assembly time if its data is malformed.
func (s *Store) Resolve(ctx context.Context, code string, itemsSubtotal pricing.Cents) (Promotion, error) {
	rec, err := s.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			countRejection("not_found")
		}
		return Promotion{}, err
	}
	now := s.now()
	if !rec.Active {
		countRejection("inactive")
		return Promotion{}, ErrInactive
	}
	if rec.ValidFrom != nil && now.Before(*rec.ValidFrom) {
		countRejection("inactive")
		return Promotion{}, ErrInactive
	}
	if rec.ValidTo != nil && now.After(*rec.ValidTo) {
		countRejection("expired")
		return Promotion{}, ErrExpired
	}
	if rec.UsageLimit != nil && *rec.UsageLimit >= 0 && rec.UsedCount >= *rec.UsageLimit {
		countRejection("usage_limit")
		return Promotion{}, ErrUsageLimitReached
	}
	if int64(itemsSubtotal) < rec.MinSpendCents {
		countRejection("min_spend")
		return Promotion{}, ErrMinimumSpendUnmet
	}
	return New(rec.Code, rec.Kind, rec.Target, rec.Value), nil
}

func countRejection(reason string) {
	if obs.PromotionRejectionsTotal != nil {
		obs.PromotionRejectionsTotal.WithLabelValues(reason).Inc()
	}
}

// MarkUsed increments redemption counters after a successful checkout. Best
// effort: counting never blocks order creation.
func (s *Store) MarkUsed(ctx context.Context, codes []string) error {
	if s == nil || s.Pool == nil || len(codes) == 0 {
		return nil
	}
	const q = `UPDATE promotions SET used_count = used_count + 1 WHERE lower(code) = ANY($1)`
	lowered := make([]string, 0, len(codes))
	for _, c := range codes {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(c)))
	}
	if _, err := s.Pool.Exec(ctx, q, lowered); err != nil {
		return fmt.Errorf("mark promotions used: %w", err)
	}
	return nil
}
