package maps

import (
	"context"
	"strings"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// CachedProvider memoises SearchTop results. Routes carry live traffic
// data and are never cached.
type CachedProvider struct {
	Provider
	cache Cache
	ttl   time.Duration
}

func NewCachedProvider(provider Provider, cache Cache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{Provider: provider, cache: cache, ttl: ttl}
}

func (c *CachedProvider) SearchTop(ctx context.Context, query string) (*Place, error) {
	key := "geocode:" + strings.ToLower(strings.TrimSpace(query))

	var cached Place
	if err := c.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	place, err := c.Provider.SearchTop(ctx, query)
	if err != nil || place == nil {
		return place, err
	}

	_ = c.cache.Set(ctx, key, place, c.ttl)
	return place, nil
}
