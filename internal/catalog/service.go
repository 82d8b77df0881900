package catalog

import (
	"context"
	"errors"
	"sort"

	"github.com/noah-isme/backend-sticker/internal/obs"
	"github.com/noah-isme/backend-sticker/internal/pricing"
)

// ErrIncompleteConfiguration is returned when a quote is requested for a
// configuration missing its shape-relevant dimensions.
var ErrIncompleteConfiguration = errors.New("configuration is incomplete")

// Quote is the priced view of one configuration: the full-price unit and the
// quantity tier matrix the product page renders as a tier selector.
type Quote struct {
	UnitCents pricing.Cents       `json:"unitCents"`
	Matrix    []pricing.TierPrice `json:"matrix"`
}

// Option describes one selectable shape or support with its price multiplier,
// for the configurator UI.
type Option struct {
	Code       string  `json:"code"`
	Multiplier float64 `json:"multiplier"`
}

// Options is the static configurator vocabulary.
type Options struct {
	Shapes   []Option       `json:"shapes"`
	Supports []Option       `json:"supports"`
	Tiers    []pricing.Tier `json:"tiers"`
}

// Service computes quotes against the pricing table, caching results.
type Service struct {
	Table pricing.Table
	Cache *Cache
}

// Quote prices a configuration. Incomplete configurations are rejected here,
// before pricing: a zero unit price must never reach the display layer as a
// sellable quote.
func (s *Service) Quote(ctx context.Context, cfg pricing.Configuration) (Quote, error) {
	if s == nil {
		return Quote{}, errors.New("catalog service not configured")
	}
	if !cfg.Complete() {
		countQuote("incomplete")
		return Quote{}, ErrIncompleteConfiguration
	}
	if q, ok := s.Cache.Get(ctx, cfg); ok {
		countQuote("cache_hit")
		return q, nil
	}
	unit := s.Table.UnitPrice(cfg)
	if unit <= 0 {
		countQuote("incomplete")
		return Quote{}, ErrIncompleteConfiguration
	}
	q := Quote{UnitCents: unit, Matrix: s.Table.Matrix(unit)}
	s.Cache.Set(ctx, cfg, q)
	countQuote("ok")
	return q, nil
}

func countQuote(result string) {
	if obs.QuoteRequestsTotal != nil {
		obs.QuoteRequestsTotal.WithLabelValues(result).Inc()
	}
}

// Options lists the configurator vocabulary in stable order.
func (s *Service) Options() Options {
	if s == nil {
		return Options{}
	}
	shapes := make([]Option, 0, len(s.Table.Shapes))
	for code, mult := range s.Table.Shapes {
		shapes = append(shapes, Option{Code: string(code), Multiplier: mult})
	}
	supports := make([]Option, 0, len(s.Table.Materials))
	for code, mult := range s.Table.Materials {
		supports = append(supports, Option{Code: string(code), Multiplier: mult})
	}
	sort.Slice(shapes, func(i, j int) bool { return shapes[i].Code < shapes[j].Code })
	sort.Slice(supports, func(i, j int) bool { return supports[i].Code < supports[j].Code })
	return Options{Shapes: shapes, Supports: supports, Tiers: s.Table.Tiers}
}
