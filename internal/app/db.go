package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/football-team-manager/internal/config"
	"github.com/riskibarqy/football-team-manager/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-team-manager/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const dbPingTimeout = 5 * time.Second

func openDB(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBSSLMode)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if cfg.DBAutoMigrate {
		if err := postgres.Migrate(ctx, db, logger); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	if cfg.DBSeed {
		inserted, err := postgres.BootstrapSeed(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		if inserted > 0 {
			logger.InfoContext(ctx, "seeded players table", "inserted", inserted)
		}
	}

	logger.InfoContext(ctx, "postgres connected",
		"db_name", dbNameFromURL(dsn),
		"max_open_conns", cfg.DBMaxOpenConns,
		"auto_migrate", cfg.DBAutoMigrate,
	)

	return db, nil
}
