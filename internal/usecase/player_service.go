package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-team-manager/internal/domain/player"
	"github.com/riskibarqy/football-team-manager/internal/platform/logging"
)

type CreatePlayerInput struct {
	Name         string
	Position     string
	JerseyNumber int
	GoalsScored  int
}

// PatchPlayerInput carries optional fields; nil means "leave unchanged".
type PatchPlayerInput struct {
	Name         *string
	Position     *string
	JerseyNumber *int
	GoalsScored  *int
}

type PlayerService struct {
	playerRepo player.Repository
	logger     *logging.Logger
	now        func() time.Time
}

func NewPlayerService(playerRepo player.Repository, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return players, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, id int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	item, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player with ID %d not found", ErrNotFound, id)
	}

	return item, nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	name := strings.TrimSpace(input.Name)
	if err := validateCreateFields(name, input.JerseyNumber, input.GoalsScored); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// A taken jersey wins over a bad position.
	taken, err := s.IsJerseyNumberTaken(ctx, input.JerseyNumber)
	if err != nil {
		return player.Player{}, err
	}
	if taken {
		return player.Player{}, fmt.Errorf("%w: jersey number %d is already taken", ErrConflict, input.JerseyNumber)
	}

	position, err := player.ParsePosition(input.Position)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.now().UTC()
	item := player.Player{
		Name:         name,
		Position:     position,
		JerseyNumber: input.JerseyNumber,
		GoalsScored:  input.GoalsScored,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.playerRepo.Insert(ctx, item)
	if err != nil {
		if errors.Is(err, player.ErrJerseyNumberTaken) {
			return player.Player{}, fmt.Errorf("%w: jersey number %d is already taken", ErrConflict, item.JerseyNumber)
		}
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	s.logger.InfoContext(ctx, "player created",
		"player_id", created.ID,
		"jersey_number", created.JerseyNumber,
		"position", string(created.Position),
	)

	return created, nil
}

// UpdatePlayer applies a partial update. The returned bool is false when every
// supplied field already matched the stored value; nothing is persisted then.
func (s *PlayerService) UpdatePlayer(ctx context.Context, id int64, input PatchPlayerInput) (player.Player, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	existing, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, false, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, false, fmt.Errorf("%w: player with ID %d not found", ErrNotFound, id)
	}

	staged := existing
	changed := false

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		name := strings.TrimSpace(*input.Name)
		if err := player.ValidateName(name); err != nil {
			return player.Player{}, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if name != existing.Name {
			staged.Name = name
			changed = true
		}
	}

	if input.Position != nil && strings.TrimSpace(*input.Position) != "" {
		position, err := player.ParsePosition(*input.Position)
		if err != nil {
			return player.Player{}, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if position != existing.Position {
			staged.Position = position
			changed = true
		}
	}

	if input.JerseyNumber != nil && *input.JerseyNumber != existing.JerseyNumber {
		number := *input.JerseyNumber
		if err := player.ValidateJerseyNumber(number); err != nil {
			return player.Player{}, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		taken, err := s.playerRepo.ExistsByJerseyNumber(ctx, number, existing.ID)
		if err != nil {
			return player.Player{}, false, fmt.Errorf("check jersey number: %w", err)
		}
		if taken {
			return player.Player{}, false, fmt.Errorf("%w: jersey number %d is already taken", ErrConflict, number)
		}
		staged.JerseyNumber = number
		changed = true
	}

	if input.GoalsScored != nil && *input.GoalsScored != existing.GoalsScored {
		if err := player.ValidateGoalsScored(*input.GoalsScored); err != nil {
			return player.Player{}, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		staged.GoalsScored = *input.GoalsScored
		changed = true
	}

	if !changed {
		return existing, false, nil
	}

	staged.UpdatedAt = s.now().UTC()
	if staged.UpdatedAt.Before(staged.CreatedAt) {
		staged.UpdatedAt = staged.CreatedAt
	}

	if err := s.playerRepo.Update(ctx, staged); err != nil {
		if errors.Is(err, player.ErrJerseyNumberTaken) {
			return player.Player{}, false, fmt.Errorf("%w: jersey number %d is already taken", ErrConflict, staged.JerseyNumber)
		}
		if errors.Is(err, player.ErrPlayerNotFound) {
			return player.Player{}, false, fmt.Errorf("%w: player with ID %d not found", ErrNotFound, id)
		}
		return player.Player{}, false, fmt.Errorf("update player: %w", err)
	}

	s.logger.InfoContext(ctx, "player updated", "player_id", staged.ID)

	return staged, true, nil
}

// DeletePlayer reports false when no player with id exists.
func (s *PlayerService) DeletePlayer(ctx context.Context, id int64) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	deleted, err := s.playerRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete player: %w", err)
	}
	if deleted {
		s.logger.InfoContext(ctx, "player deleted", "player_id", id)
	}

	return deleted, nil
}

func validateCreateFields(name string, jerseyNumber, goalsScored int) error {
	if err := player.ValidateName(name); err != nil {
		return err
	}
	if err := player.ValidateJerseyNumber(jerseyNumber); err != nil {
		return err
	}
	return player.ValidateGoalsScored(goalsScored)
}

func (s *PlayerService) IsJerseyNumberTaken(ctx context.Context, number int) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.IsJerseyNumberTaken")
	defer span.End()

	taken, err := s.playerRepo.ExistsByJerseyNumber(ctx, number, 0)
	if err != nil {
		return false, fmt.Errorf("check jersey number: %w", err)
	}

	return taken, nil
}
