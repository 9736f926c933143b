package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCache is a Cache backed by Redis, for deployments where several
// application instances should share membership lookups.
type redisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache creates a Redis-backed membership cache. The prefix
// namespaces keys within a shared Redis instance; empty means "lorekit".
func NewRedisCache(client *redis.Client, prefix string) Cache {
	if prefix == "" {
		prefix = "lorekit"
	}
	return &redisCache{client: client, prefix: prefix}
}

func (c *redisCache) key(key string) string {
	return c.prefix + ":" + key
}

// Get treats any Redis failure as a cache miss: the membership store remains
// the source of truth and resolution must not fail because the cache is
// unavailable.
func (c *redisCache) Get(ctx context.Context, key string) (string, bool) {
	role, err := c.client.Get(ctx, c.key(key)).Result()
	if err != nil {
		return "", false
	}
	return role, true
}

func (c *redisCache) Set(ctx context.Context, key string, role string, ttl time.Duration) {
	_ = c.client.Set(ctx, c.key(key), role, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, key string) {
	_ = c.client.Del(ctx, c.key(key)).Err()
}

func (c *redisCache) Close() error {
	if err := c.client.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
		return err
	}
	return nil
}
