package ledger

import (
	"time"

	"github.com/envelope-zero/questbook/internal/uuid"
	"github.com/envelope-zero/questbook/pkg/gamification"
	"github.com/envelope-zero/questbook/pkg/models"
)

// AddTransaction records a transaction and applies it.
//
// Expenses lower the envelope balance down to zero at most, income raises it
// and transfers leave it untouched. The sign of the amount is ignored. If
// the envelope does not exist, the transaction is recorded anyway.
//
// Logging earns XP depending on the type and on how many transactions of
// that type were logged today. Expenses count towards the lifetime expenses.
func AddTransaction(s *models.BudgetState, t models.Transaction, now time.Time) models.Transaction {
	t.Trim()
	if t.ID == "" {
		t.ID = uuid.New()
	}
	if t.Date.IsZero() {
		t.Date = now
	}

	apply(s, t)
	prepend(s, t)

	if !t.Type.Valid() {
		return t
	}

	g := &s.Game
	sameDay := countToday(s, now, func(o models.Transaction) bool {
		return o.Type == t.Type && !synthesized(o)
	})

	gamification.AwardXP(g, gamification.TransactionXP(t.Type, sameDay))
	if t.Type == models.Expense {
		g.LifetimeExpenses++
	}

	if category, ok := gamification.CategoryForTransaction(t.Type); ok {
		gamification.UpdateQuestProgress(g, category, sameDay, now)
	}

	return t
}

// apply moves money for a transaction of the user.
func apply(s *models.BudgetState, t models.Transaction) {
	amount := t.Amount.Abs()
	envelope := s.Envelope(t.EnvelopeID)
	account := s.Account(t.AccountID)

	switch t.Type {
	case models.Expense:
		if envelope != nil {
			envelope.Balance = withdraw(envelope.Balance, amount)
		}
		if account != nil {
			account.Balance = account.Balance.Sub(amount)
		}
	case models.Income:
		if envelope != nil {
			envelope.Balance = envelope.Balance.Add(amount)
		}
		if account != nil {
			account.Balance = account.Balance.Add(amount)
		}
	}
}

// synthesized reports whether the transaction was created by the engine
// for a bill payment or a goal contribution.
func synthesized(t models.Transaction) bool {
	return t.HasTag(models.TagBillPayment) || t.HasTag(models.TagGoalContribution)
}
