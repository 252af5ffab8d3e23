package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/football-team-manager/internal/domain/match"
	"github.com/riskibarqy/football-team-manager/internal/platform/logging"
)

// MatchCache stores match lists in Redis so several API instances share one
// cache. Redis errors are logged and treated as a miss.
type MatchCache struct {
	client    *redis.Client
	keyPrefix string
	logger    *logging.Logger
}

func NewMatchCache(client *redis.Client, keyPrefix string, logger *logging.Logger) *MatchCache {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchCache{
		client:    client,
		keyPrefix: keyPrefix,
		logger:    logger,
	}
}

func (c *MatchCache) Get(ctx context.Context, key string) ([]match.Match, bool) {
	data, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "redis get match list failed", "cache_key", key, "error", err)
		}
		return nil, false
	}

	items, err := decodeMatches(data)
	if err != nil {
		c.logger.WarnContext(ctx, "decode cached match list failed", "cache_key", key, "error", err)
		return nil, false
	}

	return items, true
}

func (c *MatchCache) Set(ctx context.Context, key string, items []match.Match, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	data, err := encodeMatches(items)
	if err != nil {
		c.logger.WarnContext(ctx, "encode match list for cache failed", "cache_key", key, "error", err)
		return
	}

	if err := c.client.Set(ctx, c.keyPrefix+key, data, ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "redis set match list failed", "cache_key", key, "error", err)
	}
}

// GetOrLoad falls back to loader on a miss or a Redis error. The loaded list
// is written back on a best-effort basis.
func (c *MatchCache) GetOrLoad(ctx context.Context, key string, ttl time.Duration, loader match.Loader) ([]match.Match, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}

	if items, ok := c.Get(ctx, key); ok {
		return items, nil
	}

	items, err := loader(ctx)
	if err != nil {
		return nil, err
	}
	c.Set(ctx, key, items, ttl)

	return items, nil
}

type cachedMatch struct {
	ID           int64     `json:"id"`
	UTCDate      time.Time `json:"utcDate"`
	Status       string    `json:"status"`
	HomeTeamName string    `json:"homeTeamName"`
	AwayTeamName string    `json:"awayTeamName"`
	HomeScore    *int      `json:"homeScore"`
	AwayScore    *int      `json:"awayScore"`
}

func encodeMatches(items []match.Match) ([]byte, error) {
	out := make([]cachedMatch, 0, len(items))
	for _, item := range items {
		out = append(out, cachedMatch{
			ID:           item.ID,
			UTCDate:      item.UTCDate.UTC(),
			Status:       item.Status,
			HomeTeamName: item.HomeTeamName,
			AwayTeamName: item.AwayTeamName,
			HomeScore:    item.HomeScore,
			AwayScore:    item.AwayScore,
		})
	}
	return sonic.Marshal(out)
}

func decodeMatches(data []byte) ([]match.Match, error) {
	var cached []cachedMatch
	if err := sonic.Unmarshal(data, &cached); err != nil {
		return nil, err
	}

	out := make([]match.Match, 0, len(cached))
	for _, item := range cached {
		out = append(out, match.Match{
			ID:           item.ID,
			UTCDate:      item.UTCDate,
			Status:       item.Status,
			HomeTeamName: item.HomeTeamName,
			AwayTeamName: item.AwayTeamName,
			HomeScore:    item.HomeScore,
			AwayScore:    item.AwayScore,
		})
	}
	return out, nil
}
