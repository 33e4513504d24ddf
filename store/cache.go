package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache memoizes solve outcomes by request hash.
type Cache interface {
	Get(ctx context.Context, itemHash string) (*SolveRecord, bool, error)
	Set(ctx context.Context, rec *SolveRecord, ttl time.Duration) error
}

// RedisCache is a Cache backed by a Redis server, JSON-encoding records
// under a namespaced key.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache dials addr lazily; the returned client is safe to use
// immediately, connecting on first command.
func NewRedisCache(addr string) *RedisCache {
	return &RedisCache{client: redis.NewClient(&redis.Options{Addr: addr})}
}

// Get looks up a cached record by its item hash.
func (c *RedisCache) Get(ctx context.Context, itemHash string) (*SolveRecord, bool, error) {
	raw, err := c.client.Get(ctx, cacheKey(itemHash)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var rec SolveRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, false, err
	}
	return &rec, true, nil
}

// Set stores rec under its item hash with the given expiry.
func (c *RedisCache) Set(ctx context.Context, rec *SolveRecord, ttl time.Duration) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(rec.ItemHash), raw, ttl).Err()
}

// Close releases the underlying Redis connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
