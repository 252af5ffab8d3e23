package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/football-team-manager/external/footballdata"
	"github.com/riskibarqy/football-team-manager/internal/config"
	"github.com/riskibarqy/football-team-manager/internal/domain/match"
	"github.com/riskibarqy/football-team-manager/internal/domain/player"
	matchcache "github.com/riskibarqy/football-team-manager/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-team-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-team-manager/internal/infrastructure/repository/postgres"
	rediscache "github.com/riskibarqy/football-team-manager/internal/infrastructure/repository/redis"
	"github.com/riskibarqy/football-team-manager/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/football-team-manager/internal/platform/cache"
	"github.com/riskibarqy/football-team-manager/internal/platform/logging"
	"github.com/riskibarqy/football-team-manager/internal/platform/resilience"
	"github.com/riskibarqy/football-team-manager/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const redisPingTimeout = 2 * time.Second

// NewHTTPServer wires repositories, services and the router. The returned
// cleanup releases the database and redis connections.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	playerRepo, closeRepo, err := newPlayerRepository(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanups = append(cleanups, closeRepo)

	matchCache, closeCache := newMatchCache(ctx, cfg, logger)
	cleanups = append(cleanups, closeCache)

	playerSvc := usecase.NewPlayerService(playerRepo, logger)
	matchSvc := usecase.NewMatchService(
		newMatchProvider(cfg, logger),
		matchCache,
		usecase.MatchServiceConfig{
			TeamID:      cfg.FootballDataTeamID,
			ResultsTTL:  cfg.MatchResultsCacheTTL,
			FixturesTTL: cfg.MatchFixturesCacheTTL,
			WindowDays:  cfg.MatchWindowDays,
		},
		logger,
	)

	handler := httpapi.NewHandler(playerSvc, matchSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func newPlayerRepository(ctx context.Context, cfg config.Config, logger *logging.Logger) (player.Repository, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.WarnContext(ctx, "using in-memory player store", "reason", "STORE_DRIVER=memory")
		return memory.NewPlayerRepository(memory.SeedPlayers()), func() {}, nil
	}

	db, err := openDB(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	return postgres.NewPlayerRepository(db), func() {
		if err := db.Close(); err != nil {
			logger.Error("close postgres", "error", err)
		}
	}, nil
}

func newMatchCache(ctx context.Context, cfg config.Config, logger *logging.Logger) (match.Cache, func()) {
	if cfg.MatchCacheDriver != config.MatchCacheDriverRedis {
		store := basecache.NewStore[[]match.Match](cfg.MatchResultsCacheTTL)
		return matchcache.NewMatchCache(store), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.WarnContext(ctx, "redis unreachable, match lookups will miss until it recovers",
			"addr", cfg.RedisAddr,
			"error", err,
		)
	}

	return rediscache.NewMatchCache(client, cfg.ServiceName+":", logger), func() {
		if err := client.Close(); err != nil {
			logger.Error("close redis", "error", err)
		}
	}
}

func newMatchProvider(cfg config.Config, logger *logging.Logger) match.Provider {
	if !cfg.FootballDataEnabled {
		logger.Warn("football-data provider disabled", "reason", "FOOTBALL_DATA_ENABLED=false")
		return footballdata.DisabledProvider{}
	}

	return footballdata.NewClient(footballdata.ClientConfig{
		HTTPClient: &http.Client{
			Timeout:   cfg.FootballDataTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		BaseURL: cfg.FootballDataBaseURL,
		APIKey:  cfg.FootballDataAPIKey,
		Timeout: cfg.FootballDataTimeout,
		Logger:  logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FootballDataCircuitEnabled,
			FailureThreshold: cfg.FootballDataCircuitFailureCount,
			OpenTimeout:      cfg.FootballDataCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FootballDataCircuitHalfOpenMaxReq,
		},
	})
}
