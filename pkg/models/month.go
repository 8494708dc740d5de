package models

import (
	"github.com/envelope-zero/questbook/internal/types"
	"github.com/shopspring/decimal"
)

// MonthlyData is the archived state of one month.
type MonthlyData struct {
	MonthKey         types.Month                `json:"monthKey" example:"2024-01"`
	Transactions     []Transaction              `json:"transactions"`
	EnvelopeBalances map[string]decimal.Decimal `json:"envelopeBalances"`          // Envelope ID to balance
	AccountBalances  map[string]decimal.Decimal `json:"accountBalances,omitempty"` // Account ID to balance
}
