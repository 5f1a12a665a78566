package cache

import (
	"context"
	"encoding/json"
	"time"
)

const (
	TierlistCacheDuration = time.Hour
	TierlistKeyPrefix     = "tierlist:"
)

// RedisStore is the subset of the redis client the caches rely on.
type RedisStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)
}

// TierlistCache keeps the rendered tierlist responses.
// Keys always carry the resolved date, so a new import never collides with a cached day.
type TierlistCache interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context) (int, error)
}

type tierlistCache struct {
	redis RedisStore
	ttl   time.Duration
}

// NewTierlistCache creates the redis backed tierlist cache.
func NewTierlistCache(redis RedisStore) TierlistCache {
	return &tierlistCache{
		redis: redis,
		ttl:   TierlistCacheDuration,
	}
}

// Get decodes the cached value into dest, false on miss or undecodable data.
func (tc *tierlistCache) Get(ctx context.Context, key string, dest any) bool {
	cached, err := tc.redis.Get(ctx, key)
	if err != nil || cached == "" {
		return false
	}

	return json.Unmarshal([]byte(cached), dest) == nil
}

// Set stores the value as JSON.
func (tc *tierlistCache) Set(ctx context.Context, key string, value any) error {
	j, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return tc.redis.Set(ctx, key, string(j), tc.ttl)
}

// Invalidate drops every cached tierlist.
func (tc *tierlistCache) Invalidate(ctx context.Context) (int, error) {
	return tc.redis.DeleteByPrefix(ctx, TierlistKeyPrefix)
}
