package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/football-team-manager/internal/app"
	"github.com/riskibarqy/football-team-manager/internal/config"
	"github.com/riskibarqy/football-team-manager/internal/observability"
	"github.com/riskibarqy/football-team-manager/internal/platform/logging"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.IsDevelopment())
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("api stopped with error", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return fmt.Errorf("init uptrace: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("uptrace shutdown failed", "error", err)
		}
	}()

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		return fmt.Errorf("init pyroscope: %w", err)
	}
	defer func() {
		if err := stopProfiler(); err != nil {
			logger.Error("pyroscope stop failed", "error", err)
		}
	}()

	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("start pprof: %w", err)
	}
	defer func() {
		if err := observability.StopPprofServer(pprofSrv, logger, cfg.ShutdownTimeout); err != nil {
			logger.Error("pprof shutdown failed", "error", err)
		}
	}()

	srv, cleanup, err := app.NewHTTPServer(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	defer cleanup()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting",
			"addr", cfg.HTTPAddr,
			"env", cfg.AppEnv,
			"store_driver", cfg.StoreDriver,
			"match_cache_driver", cfg.MatchCacheDriver,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
