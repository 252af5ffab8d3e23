package footballdata

type matchesEnvelope struct {
	Matches []matchDTO `json:"matches"`
}

type matchDTO struct {
	ID       int64    `json:"id"`
	UTCDate  string   `json:"utcDate"`
	Status   string   `json:"status"`
	HomeTeam teamDTO  `json:"homeTeam"`
	AwayTeam teamDTO  `json:"awayTeam"`
	Score    scoreDTO `json:"score"`
}

type teamDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type scoreDTO struct {
	FullTime scoreLineDTO `json:"fullTime"`
}

type scoreLineDTO struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}
