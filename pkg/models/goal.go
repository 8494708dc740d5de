package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target.
type Goal struct {
	ID string `json:"id" example:"5d1e0a4c-3c71-4a5b-93a8-43c50f0c1d6a"`
	GoalCreate
	Saved decimal.Decimal `json:"saved" example:"120"`
}

type GoalCreate struct {
	Name             string          `json:"name" example:"New bike"`
	TargetAmount     decimal.Decimal `json:"targetAmount" example:"750"` // The target for the goal
	TargetDate       *time.Time      `json:"targetDate,omitempty" example:"2024-06-01T00:00:00Z"`
	LinkedEnvelopeID string          `json:"linkedEnvelopeId,omitempty" example:"savings"` // Envelope contributions are taken from
}

// GoalUpdate is a partial update. Nil fields are left untouched.
type GoalUpdate struct {
	Name             *string          `json:"name,omitempty"`
	TargetAmount     *decimal.Decimal `json:"targetAmount,omitempty"`
	TargetDate       *time.Time       `json:"targetDate,omitempty"`
	LinkedEnvelopeID *string          `json:"linkedEnvelopeId,omitempty"`
}

// Trim removes surrounding whitespace from the string fields.
func (g *GoalCreate) Trim() {
	g.Name = strings.TrimSpace(g.Name)
}

// Reached reports whether the saved amount is at or above the target.
func (g Goal) Reached() bool {
	return g.Saved.GreaterThanOrEqual(g.TargetAmount)
}
