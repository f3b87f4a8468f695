// Package cache provides the catalog's optional read-through cache.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/storefront/pkg/metrics"
)

// Store is what services depend on. Get reports a hit; misses and backend
// errors both report false so callers fall through to the database.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Redis is a Store backed by go-redis.
type Redis struct {
	rdb *redis.Client
}

// Connect builds a Redis store and verifies it with a ping.
func Connect(ctx context.Context, addr, password string) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("cache: redis ping: %w", err)
	}
	return &Redis{rdb: rdb}, nil
}

// NewRedis wraps an existing client without pinging it.
func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func (c *Redis) Get(ctx context.Context, key string, dest interface{}) bool {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and transport errors both fall through to the database.
		metrics.CacheMisses.WithLabelValues("redis").Inc()
		return false
	}

	if err := json.Unmarshal(val, dest); err != nil {
		metrics.CacheMisses.WithLabelValues("redis").Inc()
		return false
	}

	metrics.CacheHits.WithLabelValues("redis").Inc()
	return true
}

func (c *Redis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, ttl).Err()
}

func (c *Redis) Del(ctx context.Context, keys ...string) error {
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *Redis) Close() error {
	return c.rdb.Close()
}

// Nop is the Store used when no cache is configured: every Get misses.
type Nop struct{}

func (Nop) Get(context.Context, string, interface{}) bool { return false }

func (Nop) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func (Nop) Del(context.Context, ...string) error { return nil }
