package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/noah-isme/backend-sticker/internal/pricing"
)

// Cache stores computed quotes in Redis. Quotes are deterministic for a given
// configuration and pricing table, so the cache never needs invalidation
// beyond its TTL.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a quote cache. A nil client disables caching.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func quoteKey(cfg pricing.Configuration) string {
	return fmt.Sprintf("quote:%s:%s:%g:%g:%g", cfg.Shape, cfg.Support, cfg.WidthCm, cfg.HeightCm, cfg.DiameterCm)
}

// Get loads a cached quote for the configuration, reporting whether it existed.
func (c *Cache) Get(ctx context.Context, cfg pricing.Configuration) (Quote, bool) {
	if c == nil || c.client == nil || c.ttl <= 0 {
		return Quote{}, false
	}
	data, err := c.client.Get(ctx, quoteKey(cfg)).Bytes()
	if err != nil {
		return Quote{}, false
	}
	var q Quote
	if err := json.Unmarshal(data, &q); err != nil {
		return Quote{}, false
	}
	return q, true
}

// Set stores the quote with the configured TTL. Best effort.
func (c *Cache) Set(ctx context.Context, cfg pricing.Configuration, q Quote) {
	if c == nil || c.client == nil || c.ttl <= 0 {
		return
	}
	data, err := json.Marshal(q)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, quoteKey(cfg), data, c.ttl).Err()
}
