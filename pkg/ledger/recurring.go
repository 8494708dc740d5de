package ledger

import (
	"time"

	"github.com/envelope-zero/questbook/internal/uuid"
	"github.com/envelope-zero/questbook/pkg/gamification"
	"github.com/envelope-zero/questbook/pkg/models"
	"golang.org/x/exp/slices"
)

// AddRecurring creates a bill. Bills without a type are expenses.
func AddRecurring(s *models.BudgetState, create models.RecurringCreate) models.RecurringRule {
	create.Trim()
	if create.Type == "" {
		create.Type = models.Expense
	}
	create.IsDefault = false

	r := models.RecurringRule{ID: uuid.New(), RecurringCreate: create}
	s.Recurring = append(s.Recurring, r)
	return r
}

// UpdateRecurring applies a partial update to a bill.
func UpdateRecurring(s *models.BudgetState, id string, update models.RecurringUpdate) bool {
	r := s.Bill(id)
	if r == nil {
		return false
	}

	if update.Label != nil {
		r.Label = *update.Label
	}
	if update.Amount != nil {
		r.Amount = *update.Amount
	}
	if update.Interval != nil {
		r.Interval = *update.Interval
	}
	if update.NextRun != nil {
		r.NextRun = *update.NextRun
	}
	if update.EnvelopeID != nil {
		r.EnvelopeID = *update.EnvelopeID
	}
	if update.AccountID != nil {
		r.AccountID = *update.AccountID
	}
	if update.Type != nil {
		r.Type = *update.Type
	}

	r.Trim()
	return true
}

// DeleteRecurring removes a bill.
func DeleteRecurring(s *models.BudgetState, id string) bool {
	before := len(s.Recurring)
	s.Recurring = slices.DeleteFunc(s.Recurring, func(r models.RecurringRule) bool { return r.ID == id })
	return len(s.Recurring) != before
}

// MarkBillPaid pays a bill.
//
// The next run moves forward by one interval, an expense tagged as bill
// payment is recorded and taken from the bound envelope (down to zero at
// most). Paying earns XP, progresses bill quests with the number of bills
// paid today and counts towards the lifetime bill payments.
//
// Unknown bills and bills with an unknown interval are ignored.
func MarkBillPaid(s *models.BudgetState, id string, now time.Time) (models.Transaction, bool) {
	bill := s.Bill(id)
	if bill == nil {
		return models.Transaction{}, false
	}

	next, err := bill.Interval.Next(bill.NextRun)
	if err != nil {
		return models.Transaction{}, false
	}
	bill.NextRun = next

	accountID := bill.AccountID
	if accountID == "" {
		accountID = defaultAccountID(s)
	}

	t := models.Transaction{
		ID:         uuid.New(),
		Date:       now,
		Amount:     bill.Amount.Abs(),
		Type:       models.Expense,
		EnvelopeID: bill.EnvelopeID,
		AccountID:  accountID,
		Merchant:   bill.Label,
		Note:       "Bill payment",
		Tags:       []string{models.TagBillPayment},
	}

	apply(s, t)
	prepend(s, t)

	g := &s.Game
	gamification.AwardXP(g, gamification.XPBillPayment)
	g.LifetimeBillPayments++

	paidToday := countToday(s, now, func(o models.Transaction) bool { return o.HasTag(models.TagBillPayment) })
	gamification.UpdateQuestProgress(g, models.CategoryBill, paidToday, now)

	return t, true
}

// RestoreDefaultBills adds every seeded bill that has been deleted and
// returns how many were restored. Existing bills are not changed.
func RestoreDefaultBills(s *models.BudgetState, now time.Time) int {
	restored := 0
	for _, bill := range models.DefaultBills(now) {
		if s.Bill(bill.ID) != nil {
			continue
		}

		s.Recurring = append(s.Recurring, bill)
		restored++
	}
	return restored
}
