package ledger

import (
	"time"

	"github.com/envelope-zero/questbook/internal/types"
	"github.com/envelope-zero/questbook/pkg/models"
	"github.com/shopspring/decimal"
)

// BillHorizonDays is how far ahead bills are reserved for safe-to-spend.
const BillHorizonDays = 7

// SafeToSpend returns the money that can be spent freely: the balances of
// all carry-over envelopes minus the bills due within the next
// BillHorizonDays days, today included.
func SafeToSpend(s *models.BudgetState, now time.Time) decimal.Decimal {
	available := decimal.Zero
	for _, e := range s.Envelopes {
		if e.CarryOver {
			available = available.Add(e.Balance)
		}
	}

	return available.Sub(UpcomingBills(s, now))
}

// UpcomingBills returns the sum of all bills due within the next
// BillHorizonDays calendar days, today included.
func UpcomingBills(s *models.BudgetState, now time.Time) decimal.Decimal {
	reserved := decimal.Zero
	for _, r := range s.Recurring {
		days := types.DaysBetween(now, r.NextRun)
		if days >= 0 && days <= BillHorizonDays {
			reserved = reserved.Add(r.Amount)
		}
	}
	return reserved
}

// TotalMonthlyBudget returns the monthly income of all enabled income sources.
func TotalMonthlyBudget(s *models.BudgetState) decimal.Decimal {
	total := decimal.Zero
	for _, m := range s.MonthlyBudgets {
		total = total.Add(m.MonthlyAmount())
	}
	return total
}
