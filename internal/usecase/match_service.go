package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/football-team-manager/internal/domain/match"
	"github.com/riskibarqy/football-team-manager/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

const (
	DefaultRecentResultsCount    = 10
	DefaultUpcomingFixturesCount = 5

	defaultResultsCacheTTL  = 30 * time.Minute
	defaultFixturesCacheTTL = 60 * time.Minute
	defaultMatchWindowDays  = 90
	defaultMatchTeamID      = 57
)

type MatchServiceConfig struct {
	TeamID      int64
	ResultsTTL  time.Duration
	FixturesTTL time.Duration
	WindowDays  int
}

func (c MatchServiceConfig) normalize() MatchServiceConfig {
	if c.TeamID <= 0 {
		c.TeamID = defaultMatchTeamID
	}
	if c.ResultsTTL <= 0 {
		c.ResultsTTL = defaultResultsCacheTTL
	}
	if c.FixturesTTL <= 0 {
		c.FixturesTTL = defaultFixturesCacheTTL
	}
	if c.WindowDays <= 0 {
		c.WindowDays = defaultMatchWindowDays
	}
	return c
}

// MatchOverview groups both match lists of the managed team.
type MatchOverview struct {
	RecentResults    []match.Match
	UpcomingFixtures []match.Match
}

// MatchService serves recent results and upcoming fixtures through a
// read-through cache. It never returns an error: provider failures are
// logged and surface as an empty list that is not cached.
type MatchService struct {
	provider match.Provider
	cache    match.Cache
	cfg      MatchServiceConfig
	logger   *logging.Logger
	now      func() time.Time
}

func NewMatchService(provider match.Provider, cache match.Cache, cfg MatchServiceConfig, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		provider: provider,
		cache:    cache,
		cfg:      cfg.normalize(),
		logger:   logger,
		now:      time.Now,
	}
}

func (s *MatchService) GetRecentResults(ctx context.Context, count int) []match.Match {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetRecentResults")
	defer span.End()

	if count <= 0 {
		count = DefaultRecentResultsCount
	}

	today := startOfDayUTC(s.now())
	query := match.Query{
		TeamID:   s.cfg.TeamID,
		Status:   match.StatusFinished,
		DateFrom: today.AddDate(0, 0, -s.cfg.WindowDays),
		DateTo:   today,
	}
	key := fmt.Sprintf("matches:%d:recent-results:%d", s.cfg.TeamID, count)

	return s.load(ctx, key, query, count, s.cfg.ResultsTTL, true)
}

func (s *MatchService) GetUpcomingFixtures(ctx context.Context, count int) []match.Match {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetUpcomingFixtures")
	defer span.End()

	if count <= 0 {
		count = DefaultUpcomingFixturesCount
	}

	today := startOfDayUTC(s.now())
	query := match.Query{
		TeamID:   s.cfg.TeamID,
		Status:   match.StatusScheduled,
		DateFrom: today,
		DateTo:   today.AddDate(0, 0, s.cfg.WindowDays),
	}
	key := fmt.Sprintf("matches:%d:upcoming-fixtures:%d", s.cfg.TeamID, count)

	return s.load(ctx, key, query, count, s.cfg.FixturesTTL, false)
}

func (s *MatchService) GetOverview(ctx context.Context, resultsCount, fixturesCount int) MatchOverview {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetOverview")
	defer span.End()

	var out MatchOverview
	var wg conc.WaitGroup
	wg.Go(func() {
		out.RecentResults = s.GetRecentResults(ctx, resultsCount)
	})
	wg.Go(func() {
		out.UpcomingFixtures = s.GetUpcomingFixtures(ctx, fixturesCount)
	})
	if recovered := wg.WaitAndRecover(); recovered != nil {
		s.logger.ErrorContext(ctx, "match overview load panicked", "error", recovered.AsError())
	}

	if out.RecentResults == nil {
		out.RecentResults = []match.Match{}
	}
	if out.UpcomingFixtures == nil {
		out.UpcomingFixtures = []match.Match{}
	}

	return out
}

func (s *MatchService) load(ctx context.Context, key string, query match.Query, count int, ttl time.Duration, newestFirst bool) []match.Match {
	if s.provider == nil {
		s.logger.WarnContext(ctx, "match provider is not configured", "cache_key", key)
		return []match.Match{}
	}

	loader := func(ctx context.Context) ([]match.Match, error) {
		items, err := s.provider.ListTeamMatches(ctx, query)
		if err != nil {
			return nil, err
		}
		return orderMatches(items, count, newestFirst), nil
	}

	var (
		items []match.Match
		err   error
	)
	if s.cache != nil {
		items, err = s.cache.GetOrLoad(ctx, key, ttl, loader)
	} else {
		items, err = loader(ctx)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "fetch team matches failed",
			"cache_key", key,
			"team_id", query.TeamID,
			"status", query.Status,
			"error", err,
		)
		return []match.Match{}
	}
	if items == nil {
		items = []match.Match{}
	}

	return items
}

func orderMatches(items []match.Match, count int, newestFirst bool) []match.Match {
	out := make([]match.Match, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if newestFirst {
			return out[i].UTCDate.After(out[j].UTCDate)
		}
		return out[i].UTCDate.Before(out[j].UTCDate)
	})
	if len(out) > count {
		out = out[:count]
	}
	return out
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
