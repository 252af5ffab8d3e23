package player

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Position represents the roster position of a player.
type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"
)

// AllPositions keeps declaration order so error messages are stable.
var AllPositions = []Position{
	PositionGoalkeeper,
	PositionDefender,
	PositionMidfielder,
	PositionForward,
}

const (
	MaxNameLength   = 100
	MinJerseyNumber = 1
	MaxJerseyNumber = 99
)

var (
	ErrInvalidPosition    = errors.New("invalid player position")
	ErrJerseyNumberTaken  = errors.New("jersey number is already taken")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrInvalidPlayerField = errors.New("invalid player field")
)

// ParsePosition matches raw against the known positions ignoring case.
func ParsePosition(raw string) (Position, error) {
	value := strings.TrimSpace(raw)
	for _, p := range AllPositions {
		if strings.EqualFold(value, string(p)) {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %s. Valid positions are: %s", ErrInvalidPosition, raw, PositionNames())
}

func PositionNames() string {
	names := make([]string, 0, len(AllPositions))
	for _, p := range AllPositions {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

func (p Position) Valid() bool {
	for _, candidate := range AllPositions {
		if p == candidate {
			return true
		}
	}
	return false
}

// Player is a squad member of the managed team.
type Player struct {
	ID           int64
	Name         string
	Position     Position
	JerseyNumber int
	GoalsScored  int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p Player) Validate() error {
	if err := ValidateName(p.Name); err != nil {
		return err
	}
	if !p.Position.Valid() {
		return fmt.Errorf("%w: %s. Valid positions are: %s", ErrInvalidPosition, p.Position, PositionNames())
	}
	if err := ValidateJerseyNumber(p.JerseyNumber); err != nil {
		return err
	}
	if err := ValidateGoalsScored(p.GoalsScored); err != nil {
		return err
	}
	if !p.CreatedAt.IsZero() && p.UpdatedAt.Before(p.CreatedAt) {
		return fmt.Errorf("%w: updated date is before created date", ErrInvalidPlayerField)
	}

	return nil
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: player name is required", ErrInvalidPlayerField)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Errorf("%w: player name cannot exceed %d characters", ErrInvalidPlayerField, MaxNameLength)
	}
	return nil
}

func ValidateJerseyNumber(number int) error {
	if number < MinJerseyNumber || number > MaxJerseyNumber {
		return fmt.Errorf("%w: jersey number must be between %d and %d", ErrInvalidPlayerField, MinJerseyNumber, MaxJerseyNumber)
	}
	return nil
}

func ValidateGoalsScored(goals int) error {
	if goals < 0 {
		return fmt.Errorf("%w: goals scored must be 0 or more", ErrInvalidPlayerField)
	}
	return nil
}
