package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Store persists cart documents in Redis as JSON, one key per cart, rewritten
// after every mutation. The cart has no server authority until checkout is
// finalised, so a lost or corrupt document only costs the customer their
// session state.
type Store struct {
	Client *redis.Client
	TTL    time.Duration
	Logger *zerolog.Logger
}

func (s *Store) ttl() time.Duration {
	if s == nil || s.TTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return s.TTL
}

func key(id string) string {
	return "cart:" + id
}

// Load rehydrates a cart. A missing key or a corrupt payload degrades to an
// empty cart with the requested id, never an error: the customer simply
// starts over.
func (s *Store) Load(ctx context.Context, id string) (Cart, error) {
	empty := Cart{ID: id}
	if s == nil || s.Client == nil || id == "" {
		return empty, errors.New("cart store not configured")
	}
	data, err := s.Client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return empty, nil
		}
		return empty, err
	}
	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		if s.Logger != nil {
			s.Logger.Warn().Str("cart_id", id).Err(err).Msg("corrupt cart payload, rehydrating empty")
		}
		return empty, nil
	}
	c.ID = id
	return c, nil
}

// Save serialises the cart and refreshes its TTL.
func (s *Store) Save(ctx context.Context, c Cart) error {
	if s == nil || s.Client == nil || c.ID == "" {
		return errors.New("cart store not configured")
	}
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, key(c.ID), data, s.ttl()).Err()
}

// Delete removes the cart document entirely.
func (s *Store) Delete(ctx context.Context, id string) error {
	if s == nil || s.Client == nil || id == "" {
		return nil
	}
	return s.Client.Del(ctx, key(id)).Err()
}
