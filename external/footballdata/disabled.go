package footballdata

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-team-manager/internal/domain/match"
	"github.com/riskibarqy/football-team-manager/internal/usecase"
)

// DisabledProvider stands in when FOOTBALL_DATA_ENABLED is false. Every
// lookup fails, so match lists degrade to empty.
type DisabledProvider struct{}

func (DisabledProvider) ListTeamMatches(context.Context, match.Query) ([]match.Match, error) {
	return nil, fmt.Errorf("%w: football-data provider is disabled", usecase.ErrDependencyUnavailable)
}
