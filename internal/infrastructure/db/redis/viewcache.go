package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const viewTTL = 5 * time.Minute

// ViewCache stores rendered view payloads under namespaced keys so dependent
// views can be invalidated after mutations.
// Key format: view:<key>
type ViewCache struct {
	client *redis.Client
}

// NewViewCache creates a ViewCache wrapping the given Redis client.
func NewViewCache(client *redis.Client) *ViewCache {
	return &ViewCache{client: client}
}

// Get returns the cached payload for key, or ("", false) on miss.
func (c *ViewCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.key(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("view cache get: %w", err)
	}
	return val, true, nil
}

// Set stores a payload under key (expires after viewTTL).
func (c *ViewCache) Set(ctx context.Context, key, payload string) error {
	return c.client.Set(ctx, c.key(key), payload, viewTTL).Err()
}

// Invalidate drops the cached payloads for the given keys.
func (c *ViewCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.key(k)
	}
	return c.client.Del(ctx, full...).Err()
}

func (c *ViewCache) key(k string) string {
	return "view:" + k
}
