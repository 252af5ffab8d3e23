package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-team-manager/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the starter squad into an empty players table.
// Seeding is skipped once any player exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) (int, error) {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM players`); err != nil {
		return 0, fmt.Errorf("count players for bootstrap seed: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	inserted := 0
	for _, p := range memory.SeedPlayers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (name, position, jersey_number, goals_scored, created_at, updated_at)
VALUES (:name, :position, :jersey_number, :goals_scored, :created_at, :updated_at)
ON CONFLICT (jersey_number) DO NOTHING`, map[string]any{
			"name":          p.Name,
			"position":      string(p.Position),
			"jersey_number": p.JerseyNumber,
			"goals_scored":  p.GoalsScored,
			"created_at":    p.CreatedAt.UTC(),
			"updated_at":    p.UpdatedAt.UTC(),
		})
		if err != nil {
			return 0, fmt.Errorf("bind seed player %q query: %w", p.Name, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		res, err := tx.ExecContext(ctx, sqlQuery, args...)
		if err != nil {
			return 0, fmt.Errorf("seed player %q: %w", p.Name, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed tx: %w", err)
	}

	return inserted, nil
}
