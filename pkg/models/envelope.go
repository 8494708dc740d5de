package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Envelope is a named budget bucket with its own balance and monthly allocation.
type Envelope struct {
	ID string `json:"id" example:"groceries"`
	EnvelopeCreate
	Balance decimal.Decimal `json:"balance" example:"173.12"` // Never negative
}

type EnvelopeCreate struct {
	Name          string          `json:"name" example:"Groceries"`
	Color         string          `json:"color" example:"#4caf50"`
	MonthlyBudget decimal.Decimal `json:"monthlyBudget" example:"400"` // Zero means the envelope is not configured yet
	CarryOver     bool            `json:"carryOver" example:"true"`    // Whether the balance counts towards safe-to-spend
}

// EnvelopeUpdate is a partial update. Nil fields are left untouched.
type EnvelopeUpdate struct {
	Name          *string          `json:"name,omitempty"`
	Color         *string          `json:"color,omitempty"`
	MonthlyBudget *decimal.Decimal `json:"monthlyBudget,omitempty"`
	CarryOver     *bool            `json:"carryOver,omitempty"`
}

// Trim removes surrounding whitespace from the string fields.
func (e *EnvelopeCreate) Trim() {
	e.Name = strings.TrimSpace(e.Name)
	e.Color = strings.TrimSpace(e.Color)
}

// Configured reports whether the envelope has a positive monthly budget.
func (e Envelope) Configured() bool {
	return e.MonthlyBudget.IsPositive()
}
