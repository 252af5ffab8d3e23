package postgres

import "time"

type playerTableModel struct {
	ID           int64     `db:"id,readonly"`
	Name         string    `db:"name"`
	Position     string    `db:"position"`
	JerseyNumber int       `db:"jersey_number"`
	GoalsScored  int       `db:"goals_scored"`
	CreatedAt    time.Time `db:"created_at,immutable"`
	UpdatedAt    time.Time `db:"updated_at"`
}
