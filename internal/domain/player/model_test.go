package player

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Position
		wantErr bool
	}{
		{name: "exact", in: "Forward", want: PositionForward},
		{name: "lower case", in: "goalkeeper", want: PositionGoalkeeper},
		{name: "upper case with spaces", in: "  MIDFIELDER ", want: PositionMidfielder},
		{name: "unknown", in: "Striker", wantErr: true},
		{name: "abbreviation", in: "DEF", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePosition(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPosition) {
					t.Fatalf("expected ErrInvalidPosition, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParsePosition(%q)=%q want=%q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePosition_ErrorListsValidPositions(t *testing.T) {
	_, err := ParsePosition("Winger")
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, p := range AllPositions {
		if !strings.Contains(err.Error(), string(p)) {
			t.Fatalf("expected %q in error message %q", p, err.Error())
		}
	}
	if !strings.Contains(err.Error(), "Winger") {
		t.Fatalf("expected invalid value in error message %q", err.Error())
	}
}

func TestPlayerValidate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	valid := Player{
		Name:         "Bukayo Saka",
		Position:     PositionForward,
		JerseyNumber: 7,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid player, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(p *Player)
	}{
		{name: "blank name", mutate: func(p *Player) { p.Name = "   " }},
		{name: "long name", mutate: func(p *Player) { p.Name = strings.Repeat("a", MaxNameLength+1) }},
		{name: "bad position", mutate: func(p *Player) { p.Position = "Sweeper" }},
		{name: "jersey zero", mutate: func(p *Player) { p.JerseyNumber = 0 }},
		{name: "jersey hundred", mutate: func(p *Player) { p.JerseyNumber = 100 }},
		{name: "negative goals", mutate: func(p *Player) { p.GoalsScored = -1 }},
		{name: "updated before created", mutate: func(p *Player) { p.UpdatedAt = now.Add(-time.Second) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestValidateName_CountsRunes(t *testing.T) {
	name := strings.Repeat("é", MaxNameLength)
	if err := ValidateName(name); err != nil {
		t.Fatalf("expected %d multibyte runes to be accepted, got %v", MaxNameLength, err)
	}
}
