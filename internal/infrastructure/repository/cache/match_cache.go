package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-team-manager/internal/domain/match"
	basecache "github.com/riskibarqy/football-team-manager/internal/platform/cache"
)

// MatchCache keeps match lists in process memory. Slices are copied on the
// way in and out so callers cannot mutate cached entries.
type MatchCache struct {
	store *basecache.Store[[]match.Match]
}

func NewMatchCache(store *basecache.Store[[]match.Match]) *MatchCache {
	if store == nil {
		store = basecache.NewStore[[]match.Match](0)
	}
	return &MatchCache{store: store}
}

func (c *MatchCache) Get(ctx context.Context, key string) ([]match.Match, bool) {
	items, ok := c.store.Get(ctx, key)
	if !ok {
		return nil, false
	}
	return append([]match.Match{}, items...), true
}

func (c *MatchCache) Set(ctx context.Context, key string, items []match.Match, ttl time.Duration) {
	c.store.Set(ctx, key, append([]match.Match{}, items...), ttl)
}

func (c *MatchCache) GetOrLoad(ctx context.Context, key string, ttl time.Duration, loader match.Loader) ([]match.Match, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}

	items, err := c.store.GetOrLoad(ctx, key, ttl, func(ctx context.Context) ([]match.Match, error) {
		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		return append([]match.Match{}, loaded...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]match.Match{}, items...), nil
}
