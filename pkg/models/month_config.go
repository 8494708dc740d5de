package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Frequency is how often a recurring income source pays out.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

var frequencyMultipliers = map[Frequency]decimal.Decimal{
	FrequencyWeekly:   decimal.RequireFromString("4.33"),
	FrequencyBiweekly: decimal.RequireFromString("2.17"),
	FrequencyMonthly:  decimal.NewFromInt(1),
}

// Multiplier returns the factor converting one payout into a monthly amount.
func (f Frequency) Multiplier() (decimal.Decimal, error) {
	m, ok := frequencyMultipliers[f]
	if !ok {
		return decimal.Zero, ErrUnknownFrequency
	}
	return m, nil
}

// MonthlyBudgetConfig is a recurring income source that funds the budget.
type MonthlyBudgetConfig struct {
	ID string `json:"id" example:"8c8d3a4b-0a57-4b4e-9a0c-73d5c2d1f1aa"`
	MonthlyBudgetCreate
}

type MonthlyBudgetCreate struct {
	Amount    decimal.Decimal `json:"amount" example:"1200"`
	Source    string          `json:"source" example:"Salary"`
	Frequency Frequency       `json:"frequency" example:"biweekly"`
	Label     string          `json:"label,omitempty" example:"Day job"`
	Enabled   bool            `json:"enabled" example:"true"`
}

// MonthlyBudgetUpdate is a partial update. Nil fields are left untouched.
type MonthlyBudgetUpdate struct {
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Source    *string          `json:"source,omitempty"`
	Frequency *Frequency       `json:"frequency,omitempty"`
	Label     *string          `json:"label,omitempty"`
	Enabled   *bool            `json:"enabled,omitempty"`
}

// Trim removes surrounding whitespace from the string fields.
func (m *MonthlyBudgetCreate) Trim() {
	m.Source = strings.TrimSpace(m.Source)
	m.Label = strings.TrimSpace(m.Label)
}

// MonthlyAmount returns the amount this source contributes per month.
// Disabled sources and unknown frequencies contribute nothing.
func (m MonthlyBudgetConfig) MonthlyAmount() decimal.Decimal {
	if !m.Enabled {
		return decimal.Zero
	}

	multiplier, err := m.Frequency.Multiplier()
	if err != nil {
		return decimal.Zero
	}

	return m.Amount.Mul(multiplier)
}
