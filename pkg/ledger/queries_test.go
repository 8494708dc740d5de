package ledger_test

import (
	"time"

	"github.com/envelope-zero/questbook/pkg/ledger"
	"github.com/envelope-zero/questbook/pkg/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSafeToSpendDefaults() {
	// Groceries and fun carry over, the seeded bills are all due next month
	suite.assertDecimal(550, ledger.SafeToSpend(suite.state, suite.now))
}

func (suite *TestSuiteStandard) TestSafeToSpendBillHorizon() {
	today := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		nextRun time.Time
		want    float64
	}{
		{"due today", today, 450},
		{"due in 3 days", today.AddDate(0, 0, 3), 450},
		{"due in 7 days", today.AddDate(0, 0, 7).Add(23 * time.Hour), 450},
		{"due in 8 days", today.AddDate(0, 0, 8), 550},
		{"overdue", today.AddDate(0, 0, -1), 550},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			state := suite.state.Clone()
			ledger.AddRecurring(state, models.RecurringCreate{
				Label:    "Gym",
				Amount:   decimal.NewFromInt(100),
				Interval: models.Monthly,
				NextRun:  tt.nextRun,
			})

			suite.assertDecimal(tt.want, ledger.SafeToSpend(state, suite.now))
		})
	}
}

func (suite *TestSuiteStandard) TestSafeToSpendIgnoresNonCarryOver() {
	ledger.AllocateEnvelope(suite.state, models.BillsEnvelopeID, decimal.NewFromInt(1000))
	suite.assertDecimal(550, ledger.SafeToSpend(suite.state, suite.now))

	ledger.AllocateEnvelope(suite.state, models.FunEnvelopeID, decimal.NewFromInt(50))
	suite.assertDecimal(600, ledger.SafeToSpend(suite.state, suite.now))
}

func (suite *TestSuiteStandard) TestSafeToSpendIsPure() {
	before := suite.state.Clone()

	ledger.SafeToSpend(suite.state, suite.now)
	ledger.TotalMonthlyBudget(suite.state)

	suite.Assert().Equal(before, suite.state)
}

func (suite *TestSuiteStandard) TestTotalMonthlyBudget() {
	add := func(amount int64, frequency models.Frequency, enabled bool) models.MonthlyBudgetConfig {
		return ledger.AddMonthlyBudget(suite.state, models.MonthlyBudgetCreate{
			Amount:    decimal.NewFromInt(amount),
			Source:    "Employer",
			Frequency: frequency,
			Enabled:   enabled,
		})
	}

	add(100, models.FrequencyWeekly, true)
	add(1000, models.FrequencyBiweekly, true)
	add(500, models.FrequencyMonthly, true)
	disabled := add(10000, models.FrequencyMonthly, false)

	suite.assertDecimal(3103, ledger.TotalMonthlyBudget(suite.state))

	enabled := true
	suite.Require().True(ledger.UpdateMonthlyBudget(suite.state, disabled.ID, models.MonthlyBudgetUpdate{Enabled: &enabled}))
	suite.assertDecimal(13103, ledger.TotalMonthlyBudget(suite.state))

	suite.Require().True(ledger.DeleteMonthlyBudget(suite.state, disabled.ID))
	suite.assertDecimal(3103, ledger.TotalMonthlyBudget(suite.state))
}
