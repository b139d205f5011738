package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/emmaus-center/RetreatBooker/internal/domain"
	"github.com/redis/go-redis/v9"
)

// CartStore keeps one cart per browsing session in redis. The TTL lets
// abandoned carts expire without a sweeper.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	return &CartStore{client: client, ttl: ttl}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (s *CartStore) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Cart{}, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	var cart domain.Cart
	if err = json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}

	return cart, nil
}

func (s *CartStore) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	if err = s.client.Set(ctx, cartKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}

	return nil
}

func (s *CartStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
