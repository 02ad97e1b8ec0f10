// README: Read-through caches for UI action items (in-process and redis-backed).
package uiconfig

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache holds a prepared item list for a bounded time. A miss simply means
// the caller refetches; two concurrent refreshes may both miss and both
// recompute, which is a benign race.
type Cache interface {
	Get(ctx context.Context) ([]ActionItem, bool)
	Set(ctx context.Context, items []ActionItem)
}

// MemoryCache is the explicit single-process cache value: the stored items
// plus the fetch timestamp and TTL that decide freshness.
type MemoryCache struct {
	mu        sync.Mutex
	items     []ActionItem
	fetchedAt time.Time
	ttl       time.Duration
}

// NewMemoryCache returns an empty cache with the given TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl}
}

func (c *MemoryCache) Get(_ context.Context) ([]ActionItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.items == nil || time.Since(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.items, true
}

func (c *MemoryCache) Set(_ context.Context, items []ActionItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.fetchedAt = time.Now()
}

const redisCacheKey = "uiconfig:actions"

// RedisCache shares one refresh cycle across replicas by storing the item
// list under a TTL'd key. Redis errors are treated as cache misses.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache returns a redis-backed cache with the given TTL.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context) ([]ActionItem, bool) {
	raw, err := c.client.Get(ctx, redisCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var items []ActionItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *RedisCache) Set(ctx context.Context, items []ActionItem) {
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	c.client.Set(ctx, redisCacheKey, raw, c.ttl)
}
