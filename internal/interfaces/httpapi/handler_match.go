package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-team-manager/internal/usecase"
)

const (
	minMatchCount = 1
	maxMatchCount = 50
)

func (h *Handler) GetRecentResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRecentResults")
	defer span.End()

	count, err := parseCount(r, "count", usecase.DefaultRecentResultsCount)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := h.matchService.GetRecentResults(ctx, count)
	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) GetUpcomingFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUpcomingFixtures")
	defer span.End()

	count, err := parseCount(r, "count", usecase.DefaultUpcomingFixturesCount)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := h.matchService.GetUpcomingFixtures(ctx, count)
	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) GetMatchOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchOverview")
	defer span.End()

	resultsCount, err := parseCount(r, "results", usecase.DefaultRecentResultsCount)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	fixturesCount, err := parseCount(r, "fixtures", usecase.DefaultUpcomingFixturesCount)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	overview := h.matchService.GetOverview(ctx, resultsCount, fixturesCount)
	writeSuccess(ctx, w, http.StatusOK, matchOverviewDTO{
		RecentResults:    matchesToDTO(overview.RecentResults),
		UpcomingFixtures: matchesToDTO(overview.UpcomingFixtures),
	})
}

func parseCount(r *http.Request, param string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(param))
	if raw == "" {
		return fallback, nil
	}

	count, err := strconv.Atoi(raw)
	if err != nil || count < minMatchCount || count > maxMatchCount {
		return 0, fmt.Errorf("%w: %s must be an integer between %d and %d", usecase.ErrInvalidInput, param, minMatchCount, maxMatchCount)
	}
	return count, nil
}
