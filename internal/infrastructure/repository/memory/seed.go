package memory

import (
	"time"

	"github.com/riskibarqy/football-team-manager/internal/domain/player"
)

// SeedPlayers returns the squad loaded when running with the memory store.
func SeedPlayers() []player.Player {
	created := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	squad := []struct {
		name     string
		position player.Position
		number   int
		goals    int
	}{
		{"David Raya", player.PositionGoalkeeper, 1, 0},
		{"William Saliba", player.PositionDefender, 2, 1},
		{"Gabriel Magalhaes", player.PositionDefender, 6, 3},
		{"Martin Odegaard", player.PositionMidfielder, 8, 4},
		{"Declan Rice", player.PositionMidfielder, 41, 5},
		{"Bukayo Saka", player.PositionForward, 7, 9},
	}

	out := make([]player.Player, 0, len(squad))
	for i, s := range squad {
		out = append(out, player.Player{
			ID:           int64(i + 1),
			Name:         s.name,
			Position:     s.position,
			JerseyNumber: s.number,
			GoalsScored:  s.goals,
			CreatedAt:    created,
			UpdatedAt:    created,
		})
	}
	return out
}
