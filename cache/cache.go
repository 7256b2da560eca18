package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"MedClinic/database"

	"github.com/go-redis/redis/v8"
)

// Cache is a Redis-backed read cache. A nil *Cache is valid and disables
// caching, so repositories work without a Redis connection (tests, tooling).
type Cache struct {
	client *redis.Client
}

// NewCache creates a new Cache instance, ensuring that RedisClient is not nil.
func NewCache() (*Cache, error) {
	if database.RedisClient == nil {
		return nil, errors.New("Redis client is not initialized")
	}
	return &Cache{client: database.RedisClient}, nil
}

func (c *Cache) enabled() bool {
	return c != nil && c.client != nil
}

// Get returns the raw value for key, or redis.Nil when the key is absent or
// caching is disabled.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	if !c.enabled() {
		return "", redis.Nil
	}
	return c.client.Get(ctx, key).Result()
}

// Set stores value under key with the given expiration.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if !c.enabled() {
		return nil
	}
	return c.client.Set(ctx, key, value, expiration).Err()
}

// GetJSON unmarshals the cached value for key into dest. Returns redis.Nil
// on a miss.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	val, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// SetJSON marshals value and stores it under key.
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if !c.enabled() {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, expiration).Err()
}

// Delete removes a single key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if !c.enabled() {
		return nil
	}
	return c.client.Del(ctx, key).Err()
}

// DeleteAll removes every key matching pattern.
func (c *Cache) DeleteAll(ctx context.Context, pattern string) error {
	if !c.enabled() {
		return nil
	}
	// Use SCAN for better efficiency on large datasets
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
