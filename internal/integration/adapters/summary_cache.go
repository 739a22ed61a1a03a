package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/strategic-planning/backend/internal/application/adapter"
)

const summaryGenerationKey = "plan-summary:generation"

// redisSummaryCache implements the adapter.SummaryCache interface on Redis.
type redisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSummaryCache creates a summary cache whose entries expire after ttl.
func NewRedisSummaryCache(client *redis.Client, ttl time.Duration) adapter.SummaryCache {
	return &redisSummaryCache{
		client: client,
		ttl:    ttl,
	}
}

// NewRedisClient opens a Redis client from a redis:// URL.
func NewRedisClient(url, password string, db int) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	if db != 0 {
		opts.DB = db
	}
	return redis.NewClient(opts), nil
}

// Get returns the cached value and whether it was found.
func (c *redisSummaryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read summary cache: %w", err)
	}
	return value, true, nil
}

// Set stores a value under the key.
func (c *redisSummaryCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write summary cache: %w", err)
	}
	return nil
}

// Generation returns the current cache generation, 0 before the first invalidation.
func (c *redisSummaryCache) Generation(ctx context.Context) (int64, error) {
	generation, err := c.client.Get(ctx, summaryGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read summary cache generation: %w", err)
	}
	return generation, nil
}

// Invalidate starts a new cache generation. Older entries expire on their own.
func (c *redisSummaryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, summaryGenerationKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate summary cache: %w", err)
	}
	return nil
}
