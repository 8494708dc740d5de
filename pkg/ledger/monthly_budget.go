package ledger

import (
	"github.com/envelope-zero/questbook/internal/uuid"
	"github.com/envelope-zero/questbook/pkg/models"
	"golang.org/x/exp/slices"
)

// AddMonthlyBudget creates a recurring income source.
func AddMonthlyBudget(s *models.BudgetState, create models.MonthlyBudgetCreate) models.MonthlyBudgetConfig {
	create.Trim()
	m := models.MonthlyBudgetConfig{ID: uuid.New(), MonthlyBudgetCreate: create}
	s.MonthlyBudgets = append(s.MonthlyBudgets, m)
	return m
}

// UpdateMonthlyBudget applies a partial update to an income source.
func UpdateMonthlyBudget(s *models.BudgetState, id string, update models.MonthlyBudgetUpdate) bool {
	m := s.MonthlyBudget(id)
	if m == nil {
		return false
	}

	if update.Amount != nil {
		m.Amount = *update.Amount
	}
	if update.Source != nil {
		m.Source = *update.Source
	}
	if update.Frequency != nil {
		m.Frequency = *update.Frequency
	}
	if update.Label != nil {
		m.Label = *update.Label
	}
	if update.Enabled != nil {
		m.Enabled = *update.Enabled
	}

	m.Trim()
	return true
}

// DeleteMonthlyBudget removes an income source.
func DeleteMonthlyBudget(s *models.BudgetState, id string) bool {
	before := len(s.MonthlyBudgets)
	s.MonthlyBudgets = slices.DeleteFunc(s.MonthlyBudgets, func(m models.MonthlyBudgetConfig) bool { return m.ID == id })
	return len(s.MonthlyBudgets) != before
}
