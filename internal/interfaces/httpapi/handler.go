package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-team-manager/internal/domain/match"
	"github.com/riskibarqy/football-team-manager/internal/domain/player"
	"github.com/riskibarqy/football-team-manager/internal/platform/logging"
	"github.com/riskibarqy/football-team-manager/internal/usecase"
)

type Handler struct {
	playerService *usecase.PlayerService
	matchService  *usecase.MatchService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService: playerService,
		matchService:  matchService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.decodeRequest")
	defer span.End()

	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type createPlayerRequest struct {
	PlayerName   string `json:"playerName" validate:"required,max=100"`
	Position     string `json:"position" validate:"required,max=50"`
	JerseyNumber int    `json:"jerseyNumber" validate:"required,min=1,max=99"`
	GoalsScored  int    `json:"goalsScored" validate:"min=0"`
}

type patchPlayerRequest struct {
	PlayerName   *string `json:"playerName" validate:"omitempty,max=100"`
	Position     *string `json:"position" validate:"omitempty,max=50"`
	JerseyNumber *int    `json:"jerseyNumber" validate:"omitempty,min=1,max=99"`
	GoalsScored  *int    `json:"goalsScored" validate:"omitempty,min=0"`
}

type playerDTO struct {
	PlayerID     int64  `json:"playerId"`
	PlayerName   string `json:"playerName"`
	Position     string `json:"position"`
	JerseyNumber int    `json:"jerseyNumber"`
	GoalsScored  int    `json:"goalsScored"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

type matchDTO struct {
	ID           int64  `json:"id"`
	UTCDate      string `json:"utcDate"`
	Status       string `json:"status,omitempty"`
	HomeTeamName string `json:"homeTeamName"`
	AwayTeamName string `json:"awayTeamName"`
	HomeScore    *int   `json:"homeScore"`
	AwayScore    *int   `json:"awayScore"`
}

type matchOverviewDTO struct {
	RecentResults    []matchDTO `json:"recentResults"`
	UpcomingFixtures []matchDTO `json:"upcomingFixtures"`
}

type messageDTO struct {
	Message string `json:"message"`
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		PlayerID:     v.ID,
		PlayerName:   v.Name,
		Position:     string(v.Position),
		JerseyNumber: v.JerseyNumber,
		GoalsScored:  v.GoalsScored,
		CreatedAt:    v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, v := range items {
		out = append(out, matchDTO{
			ID:           v.ID,
			UTCDate:      v.UTCDate.UTC().Format(time.RFC3339),
			Status:       v.Status,
			HomeTeamName: v.HomeTeamName,
			AwayTeamName: v.AwayTeamName,
			HomeScore:    v.HomeScore,
			AwayScore:    v.AwayScore,
		})
	}
	return out
}
