package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-team-manager/internal/domain/player"
	qb "github.com/riskibarqy/football-team-manager/internal/platform/querybuilder"
)

const playersTable = "players"

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"name",
	"position",
	"jersey_number",
	"goals_scored",
	"created_at",
	"updated_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From(playersTable).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From(playersTable).
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player by id: %w", err)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Insert(ctx context.Context, p player.Player) (player.Player, error) {
	query, args, err := qb.InsertModel(playersTable, playerToRow(p), "RETURNING id")
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return player.Player{}, player.ErrJerseyNumberTaken
		}
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	p.ID = id
	return p, nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	query, args, err := qb.UpdateModel(playersTable, playerToRow(p), qb.Eq("id", p.ID))
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return player.ErrJerseyNumberTaken
		}
		return fmt.Errorf("update player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update player rows affected: %w", err)
	}
	if affected == 0 {
		return player.ErrPlayerNotFound
	}

	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom(playersTable).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete player query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete player rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *PlayerRepository) ExistsByJerseyNumber(ctx context.Context, number int, excludeID int64) (bool, error) {
	conditions := []qb.Condition{qb.Eq("jersey_number", number)}
	if excludeID > 0 {
		conditions = append(conditions, qb.NotEq("id", excludeID))
	}

	query, args, err := qb.Select("1").From(playersTable).Where(conditions...).ToExistsSQL()
	if err != nil {
		return false, fmt.Errorf("build jersey number exists query: %w", err)
	}

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("check jersey number exists: %w", err)
	}

	return exists, nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:           row.ID,
		Name:         row.Name,
		Position:     player.Position(row.Position),
		JerseyNumber: row.JerseyNumber,
		GoalsScored:  row.GoalsScored,
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}
}

func playerToRow(p player.Player) playerTableModel {
	return playerTableModel{
		ID:           p.ID,
		Name:         p.Name,
		Position:     string(p.Position),
		JerseyNumber: p.JerseyNumber,
		GoalsScored:  p.GoalsScored,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
