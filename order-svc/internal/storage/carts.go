package storage

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"foodcart/order-svc/internal/cart"
	"foodcart/order-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCartStore keeps each cart session as JSON under cart:<id>. Every save
// pushes the expiry forward by TTL.
type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: ttl}
}

func (s *RedisCartStore) key(cartID string) string {
	return "cart:" + cartID
}

func (s *RedisCartStore) Load(ctx context.Context, cartID string) (cart.State, error) {
	payload, err := s.Client.Get(ctx, s.key(cartID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.State{}, domain.ErrCartNotFound
	}
	if err != nil {
		return cart.State{}, err
	}

	state := cart.Empty()
	if err := json.Unmarshal(payload, &state); err != nil {
		return cart.State{}, err
	}
	return state, nil
}

func (s *RedisCartStore) Save(ctx context.Context, cartID string, state cart.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.key(cartID), payload, s.TTL).Err()
}

func (s *RedisCartStore) Delete(ctx context.Context, cartID string) error {
	return s.Client.Del(ctx, s.key(cartID)).Err()
}

// MemoryCartStore serves carts from process memory when Redis is not
// configured. Sessions do not expire.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]cart.State
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: map[string]cart.State{}}
}

func (s *MemoryCartStore) Load(ctx context.Context, cartID string) (cart.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.carts[cartID]
	if !ok {
		return cart.State{}, domain.ErrCartNotFound
	}
	return state, nil
}

func (s *MemoryCartStore) Save(ctx context.Context, cartID string, state cart.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cartID] = state
	return nil
}

func (s *MemoryCartStore) Delete(ctx context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, cartID)
	return nil
}
