package match

import (
	"context"
	"time"
)

// Provider fetches matches from the remote match-data API.
type Provider interface {
	ListTeamMatches(ctx context.Context, query Query) ([]Match, error)
}

// Loader computes a match list on a cache miss.
type Loader func(ctx context.Context) ([]Match, error)

// Cache stores ordered match lists under a string key until their expiry.
// GetOrLoad returns the live entry for key or stores the loader result for
// ttl. A loader error is returned as-is and leaves the key uncached.
type Cache interface {
	Get(ctx context.Context, key string) ([]Match, bool)
	Set(ctx context.Context, key string, items []Match, ttl time.Duration)
	GetOrLoad(ctx context.Context, key string, ttl time.Duration, loader Loader) ([]Match, error)
}
