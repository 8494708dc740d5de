package models

import (
	"time"

	"github.com/envelope-zero/questbook/internal/types"
	"github.com/shopspring/decimal"
)

// IDs of seeded resources.
const (
	DefaultAccountID   = "checking"
	SavingsEnvelopeID  = "savings"
	BillsEnvelopeID    = "bills"
	GroceryEnvelopeID  = "groceries"
	FunEnvelopeID      = "fun"
	DefaultRentBillID  = "default-rent"
	DefaultPhoneBillID = "default-phone"
	DefaultNetBillID   = "default-internet"
	DefaultMediaBillID = "default-streaming"
)

// DefaultAccounts returns the accounts of a new budget.
func DefaultAccounts() []Account {
	return []Account{
		{ID: DefaultAccountID, AccountCreate: AccountCreate{Name: "Checking", Kind: AccountChecking}},
	}
}

// DefaultEnvelopes returns the envelopes of a new budget. Their balances
// start at the monthly budget.
func DefaultEnvelopes() []Envelope {
	envelopes := []Envelope{
		{ID: GroceryEnvelopeID, EnvelopeCreate: EnvelopeCreate{Name: "Groceries", Color: "#4caf50", MonthlyBudget: decimal.NewFromInt(400), CarryOver: true}},
		{ID: FunEnvelopeID, EnvelopeCreate: EnvelopeCreate{Name: "Fun", Color: "#ff9800", MonthlyBudget: decimal.NewFromInt(150), CarryOver: true}},
		{ID: BillsEnvelopeID, EnvelopeCreate: EnvelopeCreate{Name: "Bills", Color: "#2196f3", MonthlyBudget: decimal.NewFromInt(1200)}},
		{ID: SavingsEnvelopeID, EnvelopeCreate: EnvelopeCreate{Name: "Savings", Color: "#9c27b0", MonthlyBudget: decimal.NewFromInt(200)}},
	}

	for i := range envelopes {
		envelopes[i].Balance = envelopes[i].MonthlyBudget
	}
	return envelopes
}

// DefaultBills returns the seeded bills, with their first run in the month after now.
func DefaultBills(now time.Time) []RecurringRule {
	next := time.Time(types.MonthOf(now).AddDate(0, 1))

	bill := func(id, label string, amount int64, day int) RecurringRule {
		return RecurringRule{
			ID: id,
			RecurringCreate: RecurringCreate{
				Label:      label,
				Amount:     decimal.NewFromInt(amount),
				Interval:   Monthly,
				NextRun:    next.AddDate(0, 0, day-1),
				EnvelopeID: BillsEnvelopeID,
				AccountID:  DefaultAccountID,
				Type:       Expense,
				IsDefault:  true,
			},
		}
	}

	return []RecurringRule{
		bill(DefaultRentBillID, "Rent", 950, 1),
		bill(DefaultPhoneBillID, "Phone", 35, 5),
		bill(DefaultNetBillID, "Internet", 45, 12),
		bill(DefaultMediaBillID, "Streaming", 15, 20),
	}
}
