// Package period switches a budget between months.
//
// Exactly one month is active at a time. Its transactions and balances live
// directly in the budget state, every other month is archived as a
// snapshot in the monthly history. Gamification is not tied to a month and
// is never archived.
package period

import (
	"github.com/envelope-zero/questbook/internal/types"
	"github.com/envelope-zero/questbook/pkg/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Snapshot returns the archive entry for the active month of s.
func Snapshot(s *models.BudgetState) models.MonthlyData {
	envelopes := make(map[string]decimal.Decimal, len(s.Envelopes))
	for _, e := range s.Envelopes {
		envelopes[e.ID] = e.Balance
	}

	accounts := make(map[string]decimal.Decimal, len(s.Accounts))
	for _, a := range s.Accounts {
		accounts[a.ID] = a.Balance
	}

	return models.MonthlyData{
		MonthKey:         s.CurrentMonth,
		Transactions:     s.Transactions,
		EnvelopeBalances: envelopes,
		AccountBalances:  accounts,
	}.Clone()
}

// Lookup returns the index of the archived snapshot of month in history,
// or -1 if there is none.
func Lookup(history []models.MonthlyData, month types.Month) int {
	return slices.IndexFunc(history, func(m models.MonthlyData) bool { return m.MonthKey.Equal(month) })
}

// SwitchToMonth makes month the active month and reports whether anything changed.
//
// The active month is archived, replacing an older snapshot of the same
// month. The target month is restored from its snapshot. Envelopes the
// snapshot does not know start at their monthly budget, accounts it does
// not know start at zero. A month without a
// snapshot starts fresh: no transactions, envelopes at their monthly budget,
// accounts at zero.
func SwitchToMonth(s *models.BudgetState, month types.Month) bool {
	if month.IsZero() || s.CurrentMonth.Equal(month) {
		return false
	}

	history := s.MonthlyHistory
	if !s.CurrentMonth.IsZero() {
		history = archive(history, Snapshot(s))
	}

	var transactions []models.Transaction
	envelopes := slices.Clone(s.Envelopes)
	accounts := slices.Clone(s.Accounts)

	if i := Lookup(history, month); i >= 0 {
		target := history[i].Clone()
		transactions = target.Transactions

		for j := range envelopes {
			balance, ok := target.EnvelopeBalances[envelopes[j].ID]
			if !ok {
				balance = decimal.Max(decimal.Zero, envelopes[j].MonthlyBudget)
			}
			envelopes[j].Balance = balance
		}

		for j := range accounts {
			balance, ok := target.AccountBalances[accounts[j].ID]
			if !ok {
				balance = decimal.Zero
			}
			accounts[j].Balance = balance
		}
	} else {
		for j := range envelopes {
			envelopes[j].Balance = decimal.Max(decimal.Zero, envelopes[j].MonthlyBudget)
		}

		for j := range accounts {
			accounts[j].Balance = decimal.Zero
		}
	}

	if transactions == nil {
		transactions = []models.Transaction{}
	}

	s.MonthlyHistory = history
	s.Transactions = transactions
	s.Envelopes = envelopes
	s.Accounts = accounts
	s.CurrentMonth = month

	return true
}

// archive upserts the snapshot into a copy of history.
func archive(history []models.MonthlyData, snapshot models.MonthlyData) []models.MonthlyData {
	updated := slices.Clone(history)
	if updated == nil {
		updated = []models.MonthlyData{}
	}

	if i := Lookup(updated, snapshot.MonthKey); i >= 0 {
		updated[i] = snapshot
		return updated
	}

	return append(updated, snapshot)
}
