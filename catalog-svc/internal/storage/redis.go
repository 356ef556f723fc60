package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"foodcart/catalog-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const restaurantsKey = "catalog:restaurants"

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) GetRestaurants(ctx context.Context) ([]domain.Restaurant, bool, error) {
	payload, err := c.Client.Get(ctx, restaurantsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var restaurants []domain.Restaurant
	if err := json.Unmarshal(payload, &restaurants); err != nil {
		return nil, false, err
	}
	return restaurants, true, nil
}

func (c *RedisCache) SetRestaurants(ctx context.Context, restaurants []domain.Restaurant) error {
	payload, err := json.Marshal(restaurants)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, restaurantsKey, payload, c.TTL).Err()
}
