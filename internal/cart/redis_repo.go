package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sportshoplabs/sportshop-backend/pkg/redis"
)

// RedisRepository stores one JSON document per subject so carts survive
// process restarts when a Redis backend is configured.
type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository builds a cart repository on top of the shared client.
func NewRedisRepository(client *redis.Client) (*RedisRepository, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &RedisRepository{client: client}, nil
}

func (r *RedisRepository) Find(ctx context.Context, subjectID string) (*Cart, error) {
	raw, err := r.client.Get(ctx, r.client.CartKey(subjectID))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &cart, nil
}

func (r *RedisRepository) Save(ctx context.Context, cart *Cart) error {
	if cart == nil {
		return errors.New("cart is required")
	}
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	// Carts live until cleared; no TTL.
	return r.client.Set(ctx, r.client.CartKey(cart.SubjectID), payload, 0)
}
