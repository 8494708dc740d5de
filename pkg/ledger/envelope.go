package ledger

import (
	"github.com/envelope-zero/questbook/internal/uuid"
	"github.com/envelope-zero/questbook/pkg/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// AddEnvelope creates an envelope. Its balance starts at the monthly budget.
func AddEnvelope(s *models.BudgetState, create models.EnvelopeCreate) models.Envelope {
	create.Trim()
	e := models.Envelope{
		ID:             uuid.New(),
		EnvelopeCreate: create,
		Balance:        decimal.Max(decimal.Zero, create.MonthlyBudget),
	}

	s.Envelopes = append(s.Envelopes, e)
	return e
}

// UpdateEnvelope applies a partial update to an envelope.
//
// Changing the monthly budget leaves the balance alone, except for the first
// funding: when an envelope without a budget gets a positive one, its
// balance is set to the new budget.
func UpdateEnvelope(s *models.BudgetState, id string, update models.EnvelopeUpdate) bool {
	e := s.Envelope(id)
	if e == nil {
		return false
	}

	if update.Name != nil {
		e.Name = *update.Name
	}
	if update.Color != nil {
		e.Color = *update.Color
	}
	if update.CarryOver != nil {
		e.CarryOver = *update.CarryOver
	}
	if update.MonthlyBudget != nil {
		unconfigured := !e.Configured()
		e.MonthlyBudget = *update.MonthlyBudget

		if unconfigured && e.Configured() {
			e.Balance = e.MonthlyBudget
		}
	}

	e.Trim()
	return true
}

// DeleteEnvelope removes an envelope. Transactions referencing it are kept as they are.
func DeleteEnvelope(s *models.BudgetState, id string) bool {
	before := len(s.Envelopes)
	s.Envelopes = slices.DeleteFunc(s.Envelopes, func(e models.Envelope) bool { return e.ID == id })
	return len(s.Envelopes) != before
}

// AllocateEnvelope moves money into (positive delta) or out of (negative
// delta) an envelope. The balance never drops below zero.
func AllocateEnvelope(s *models.BudgetState, id string, delta decimal.Decimal) bool {
	e := s.Envelope(id)
	if e == nil {
		return false
	}

	e.Balance = decimal.Max(decimal.Zero, e.Balance.Add(delta))
	return true
}
