package match

import "time"

const (
	StatusFinished  = "FINISHED"
	StatusScheduled = "SCHEDULED"
)

// Match is a normalized, read-only projection of a remote football match.
type Match struct {
	ID           int64
	UTCDate      time.Time
	Status       string
	HomeTeamName string
	AwayTeamName string
	HomeScore    *int
	AwayScore    *int
}

// Query filters a team's matches by status within an inclusive date range.
type Query struct {
	TeamID   int64
	Status   string
	DateFrom time.Time
	DateTo   time.Time
}
