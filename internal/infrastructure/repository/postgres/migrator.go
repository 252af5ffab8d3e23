package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-team-manager/db"
	"github.com/riskibarqy/football-team-manager/internal/platform/logging"
)

// Migrate applies the embedded schema migrations on a dedicated connection.
func Migrate(ctx context.Context, conn *sqlx.DB, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Default()
	}

	sqlConn, err := conn.Conn(ctx)
	if err != nil {
		return fmt.Errorf("migrate: connect: %w", err)
	}
	defer sqlConn.Close()

	source, err := iofs.New(db.Migrations, db.MigrationsDir)
	if err != nil {
		return fmt.Errorf("migrate: open embedded migrations: %w", err)
	}

	driver, err := migratepg.WithConnection(ctx, sqlConn, &migratepg.Config{})
	if err != nil {
		_ = source.Close()
		return fmt.Errorf("migrate: create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = source.Close()
		return fmt.Errorf("migrate: create instance: %w", err)
	}
	defer m.Close()

	logger.InfoContext(ctx, "applying schema migrations")
	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate: up: %w", err)
		}
		logger.InfoContext(ctx, "schema already up to date")
		return nil
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("migrate: read version: %w", err)
	}
	logger.InfoContext(ctx, "schema migrations applied", "version", version, "dirty", dirty)

	return nil
}
