// Package ledger applies mutations to the envelopes, transactions, bills,
// goals, accounts and income sources of a budget.
//
// Invalid input never fails: unknown IDs are ignored and balances are
// clamped at zero. Mutations that earn rewards call into the gamification
// package on the same state.
package ledger

import (
	"math/rand/v2"
	"time"

	"github.com/envelope-zero/questbook/internal/types"
	"github.com/envelope-zero/questbook/pkg/gamification"
	"github.com/envelope-zero/questbook/pkg/models"
	"github.com/shopspring/decimal"
)

// NewState returns a freshly seeded budget for the month now falls on.
//
// When r is nil, daily quests are sampled from the global random source.
func NewState(now time.Time, r *rand.Rand) *models.BudgetState {
	s := &models.BudgetState{
		Prefs:          models.DefaultPrefs(),
		Accounts:       models.DefaultAccounts(),
		Envelopes:      models.DefaultEnvelopes(),
		Goals:          []models.Goal{},
		Transactions:   []models.Transaction{},
		Recurring:      models.DefaultBills(now),
		Game:           models.NewGamification(),
		MonthlyBudgets: []models.MonthlyBudgetConfig{},
		CurrentMonth:   types.MonthOf(now),
		MonthlyHistory: []models.MonthlyData{},
		ImportRules:    []models.ImportRule{},
	}

	gamification.SeedAchievements(&s.Game)
	gamification.SeedBadges(&s.Game)
	gamification.RefreshDailyQuests(&s.Game, r, now)

	return s
}

// withdraw lowers a balance, never below zero.
func withdraw(balance, amount decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, balance.Sub(amount))
}

// prepend adds transactions in front of the existing ones, keeping the
// newest first order.
func prepend(s *models.BudgetState, transactions ...models.Transaction) {
	merged := make([]models.Transaction, 0, len(transactions)+len(s.Transactions))
	merged = append(merged, transactions...)
	s.Transactions = append(merged, s.Transactions...)
}

// countToday counts the transactions on the calendar day of now that match.
func countToday(s *models.BudgetState, now time.Time, match func(models.Transaction) bool) int {
	count := 0
	for _, t := range s.Transactions {
		if types.SameDay(t.Date, now) && match(t) {
			count++
		}
	}
	return count
}

// defaultAccountID returns the account synthesized transactions are booked on
// when nothing else is known.
func defaultAccountID(s *models.BudgetState) string {
	if s.Account(models.DefaultAccountID) != nil || len(s.Accounts) == 0 {
		return models.DefaultAccountID
	}
	return s.Accounts[0].ID
}
