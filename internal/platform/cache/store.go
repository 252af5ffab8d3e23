package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// Store is an in-process key/value cache where every entry carries its own
// expiry. Expired entries are never returned; they are dropped lazily.
type Store[V any] struct {
	cache *ttlcache.Cache[string, V]
}

// NewStore builds a Store whose entries default to defaultTTL when Set is
// called with a non-positive ttl.
func NewStore[V any](defaultTTL time.Duration) *Store[V] {
	if defaultTTL <= 0 {
		defaultTTL = ttlcache.NoTTL
	}

	return &Store[V]{
		cache: ttlcache.New[string, V](
			ttlcache.WithTTL[string, V](defaultTTL),
			ttlcache.WithDisableTouchOnHit[string, V](),
		),
	}
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	if key == "" {
		return zero, false
	}

	item := s.cache.Get(key)
	if item == nil || item.IsExpired() {
		return zero, false
	}

	return item.Value(), true
}

func (s *Store[V]) Set(_ context.Context, key string, value V, ttl time.Duration) {
	if key == "" {
		return
	}
	if ttl <= 0 {
		ttl = ttlcache.DefaultTTL
	}

	s.cache.Set(key, value, ttl)
}

// GetOrLoad returns the cached value for key or stores the loader result for
// ttl. Loader errors are returned and nothing is cached. Concurrent misses on
// the same key each invoke the loader.
func (s *Store[V]) GetOrLoad(ctx context.Context, key string, ttl time.Duration, loader func(context.Context) (V, error)) (V, error) {
	var zero V
	if loader == nil {
		return zero, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	loaded, err := loader(ctx)
	if err != nil {
		return zero, err
	}
	s.Set(ctx, key, loaded, ttl)

	return loaded, nil
}
