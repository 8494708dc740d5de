package store_test

import (
	"sync"
	"time"

	"github.com/envelope-zero/questbook/internal/types"
	"github.com/envelope-zero/questbook/pkg/gamification"
	"github.com/envelope-zero/questbook/pkg/importer"
	"github.com/envelope-zero/questbook/pkg/ledger"
	"github.com/envelope-zero/questbook/pkg/models"
	"github.com/shopspring/decimal"
)

const expensesAchievement = "achievement-expenses-50"

func expense(amount int64, envelopeID string) models.Transaction {
	return models.Transaction{
		Type:       models.Expense,
		Amount:     decimal.NewFromInt(amount),
		EnvelopeID: envelopeID,
		AccountID:  models.DefaultAccountID,
	}
}

// almostFiftyExpenses returns a store one expense away from the expenses achievement.
func (suite *TestSuiteStandard) almostFiftyExpenses() {
	state := ledger.NewState(suite.now, nil)
	state.Game.LifetimeExpenses = 49
	suite.store = suite.newStore(state)
}

func (suite *TestSuiteStandard) TestNewSeedsState() {
	s := suite.store.State()

	suite.Assert().Len(s.Envelopes, 4)
	suite.Assert().Len(s.Recurring, 4)
	suite.Assert().Len(s.Game.Badges, len(gamification.Badges))
	suite.Assert().Equal(types.NewMonth(2024, 1), s.CurrentMonth)
	suite.Assert().Equal(1, s.Game.Level)
}

func (suite *TestSuiteStandard) TestStateIsACopy() {
	s := suite.store.State()
	s.Envelopes[0].Balance = decimal.NewFromInt(-100)
	s.Transactions = append(s.Transactions, models.Transaction{ID: "injected"})

	fresh := suite.store.State()
	suite.Assert().True(fresh.Envelopes[0].Balance.IsPositive())
	suite.Assert().Empty(fresh.Transactions)
}

func (suite *TestSuiteStandard) TestReconciliationIsDeferred() {
	suite.almostFiftyExpenses()

	suite.store.AddTransaction(expense(5, models.FunEnvelopeID))
	suite.Assert().Equal(1, suite.store.Pending())

	saved := suite.saver.last()
	suite.Require().NotNil(saved)
	suite.Assert().Equal(50, saved.Game.LifetimeExpenses)
	suite.Assert().False(suite.quest(saved, expensesAchievement).Done, "achievements are not reconciled inside the action")

	s := suite.store.State()
	suite.Assert().Equal(0, suite.store.Pending())
	suite.Assert().True(suite.quest(s, expensesAchievement).Done)
	suite.Assert().True(suite.quest(suite.saver.last(), expensesAchievement).Done, "reconciled state is saved")
}

func (suite *TestSuiteStandard) TestReconciliationRunsBeforeNextAction() {
	suite.almostFiftyExpenses()

	suite.store.AddTransaction(expense(5, models.FunEnvelopeID))
	suite.store.AllocateEnvelope(models.FunEnvelopeID, decimal.NewFromInt(5))

	suite.Assert().Equal(0, suite.store.Pending())
	suite.Assert().True(suite.quest(suite.saver.last(), expensesAchievement).Done)
}

func (suite *TestSuiteStandard) TestActionsQueueReconciliation() {
	goal := suite.store.AddGoal(models.GoalCreate{Name: "Bike", TargetAmount: decimal.NewFromInt(10)})
	suite.Assert().Equal(0, suite.store.Pending())

	_, ok := suite.store.AddToGoal(goal.ID, decimal.NewFromInt(10))
	suite.Require().True(ok)
	suite.Assert().Equal(1, suite.store.Pending())

	_, ok = suite.store.MarkBillPaid(models.DefaultRentBillID)
	suite.Require().True(ok)
	suite.Assert().Equal(1, suite.store.Pending(), "events of the previous action are drained first")

	suite.store.Flush()
	s := suite.store.State()
	suite.Assert().True(suite.quest(s, "achievement-goal-1").Done)
	suite.Assert().Equal(1, s.Game.LifetimeBillPayments)

	suite.store.ImportTransactions([]importer.Row{{Amount: decimal.NewFromInt(3), Type: models.Expense}})
	suite.Assert().Equal(1, suite.store.Pending())
}

func (suite *TestSuiteStandard) TestIgnoredActionsDoNotSave() {
	saves := suite.saver.count()

	suite.Assert().False(suite.store.AllocateEnvelope("unknown", decimal.NewFromInt(1)))
	suite.Assert().False(suite.store.DeleteGoal("unknown"))
	suite.Assert().Empty(suite.store.ImportTransactions(nil))
	suite.Assert().False(suite.store.TrackSectionView(models.Section("settings")))
	_, ok := suite.store.AddToGoal("unknown", decimal.NewFromInt(1))
	suite.Assert().False(ok)

	suite.Assert().Equal(saves, suite.saver.count())
	suite.Assert().Equal(0, suite.store.Pending())
}

func (suite *TestSuiteStandard) TestBadgesAreAwardedOnce() {
	suite.store.AddTransaction(expense(5, models.FunEnvelopeID))

	unlocked := suite.store.CheckAndAwardBadges()
	suite.Require().NotEmpty(unlocked)
	suite.Assert().Equal("first-steps", unlocked[0].ID)

	first := suite.store.State()
	saves := suite.saver.count()

	for range 3 {
		suite.Assert().Empty(suite.store.CheckAndAwardBadges())
	}

	again := suite.store.State()
	suite.Assert().Equal(first.Game.Coins, again.Game.Coins)
	suite.Assert().Equal(first.Game.TotalCoinsEarned, again.Game.TotalCoinsEarned)
	suite.Assert().Equal(suite.badge(first, "first-steps").UnlockedAt, suite.badge(again, "first-steps").UnlockedAt)
	suite.Assert().Equal(saves, suite.saver.count())
}

func (suite *TestSuiteStandard) TestConcurrentTimerAndActions() {
	var wg sync.WaitGroup

	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				suite.store.AddTransaction(expense(1, models.GroceryEnvelopeID))
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 50 {
			suite.store.CheckAndAwardBadges()
		}
	}()

	wg.Wait()
	suite.store.CheckAndAwardBadges()

	s := suite.store.State()
	suite.Assert().Len(s.Transactions, 200)
	suite.Assert().Equal(200, s.Game.LifetimeExpenses)
	suite.assertDecimal(200, s.Envelope(models.GroceryEnvelopeID).Balance)
	suite.Assert().True(suite.badge(s, "bookkeeper").Unlocked())
	suite.Assert().True(suite.quest(s, expensesAchievement).Done)
}

func (suite *TestSuiteStandard) TestCheckStreak() {
	suite.Assert().True(suite.store.CheckStreak())
	saves := suite.saver.count()
	before := suite.store.State()

	suite.Assert().False(suite.store.CheckStreak())
	suite.Assert().Equal(before, suite.store.State())
	suite.Assert().Equal(saves, suite.saver.count())

	suite.advance(24 * time.Hour)
	suite.Assert().True(suite.store.CheckStreak())
	suite.Assert().Equal(2, suite.store.State().Game.Streak)
}

func (suite *TestSuiteStandard) TestRefreshDailyQuests() {
	before := suite.store.State()
	suite.Assert().False(suite.store.RefreshDailyQuests())

	suite.advance(24 * time.Hour)
	suite.Require().True(suite.store.RefreshDailyQuests())
	after := suite.store.State()

	ids := func(s *models.BudgetState, t models.QuestType) []string {
		var ids []string
		for _, q := range s.Game.Quests {
			if q.Type == t {
				ids = append(ids, q.ID)
			}
		}
		return ids
	}

	suite.Assert().Equal(ids(before, models.QuestAchievement), ids(after, models.QuestAchievement))
	for _, id := range ids(before, models.QuestDaily) {
		suite.Assert().NotContains(ids(after, models.QuestDaily), id)
	}
	suite.Assert().NotEmpty(ids(after, models.QuestDaily))
}

func (suite *TestSuiteStandard) TestCompleteQuest() {
	var daily models.Quest
	for _, q := range suite.store.State().Game.Quests {
		if q.Type == models.QuestDaily {
			daily = q
			break
		}
	}
	suite.Require().NotEmpty(daily.ID)

	suite.Assert().True(suite.store.CompleteQuest(daily.ID))
	suite.Assert().False(suite.store.CompleteQuest(daily.ID))
	suite.Assert().False(suite.store.CompleteQuest("unknown"))

	s := suite.store.State()
	suite.Assert().Equal(1, s.Game.QuestsCompleted)
	suite.Assert().Equal(daily.XP, s.Game.TotalXPEarned)
}

func (suite *TestSuiteStandard) TestUpdateAchievementQuests() {
	state := ledger.NewState(suite.now, nil)
	state.Game.LifetimeBillPayments = 12
	suite.store = suite.newStore(state)

	completed := suite.store.UpdateAchievementQuests()
	suite.Require().Len(completed, 1)
	suite.Assert().Equal("achievement-bills-12", completed[0].ID)
	suite.Assert().Empty(suite.store.UpdateAchievementQuests())
}

func (suite *TestSuiteStandard) TestUpdateQuestProgress() {
	s := suite.store.State()
	for _, q := range s.Game.Quests {
		if q.Type != models.QuestDaily {
			continue
		}

		suite.store.UpdateQuestProgress(q.Category, q.Target)
		suite.Assert().True(suite.quest(suite.store.State(), q.ID).Done, q.ID)
	}
}

func (suite *TestSuiteStandard) TestTrackSectionView() {
	suite.Assert().True(suite.store.TrackSectionView(models.SectionDashboard))
	suite.Assert().False(suite.store.TrackSectionView(models.SectionDashboard))
	suite.Assert().True(suite.store.TrackSectionView(models.SectionGoals))

	views := suite.store.State().Game.DailySectionViews
	suite.Require().NotNil(views)
	suite.Assert().Equal("2024-01-15", views.Date)
	suite.Assert().Len(views.Sections, 2)
}

func (suite *TestSuiteStandard) TestSafeToSpend() {
	suite.assertDecimal(550, suite.store.SafeToSpend())
	suite.Assert().True(suite.store.SafeToSpend().Equal(suite.store.SafeToSpend()))

	suite.store.AddTransaction(expense(50, models.FunEnvelopeID))
	suite.assertDecimal(500, suite.store.SafeToSpend())

	suite.store.AddRecurring(models.RecurringCreate{
		Label:    "Gym",
		Amount:   decimal.NewFromInt(30),
		Interval: models.Monthly,
		NextRun:  suite.now.AddDate(0, 0, 2),
	})
	suite.assertDecimal(470, suite.store.SafeToSpend())
}

func (suite *TestSuiteStandard) TestTotalMonthlyBudget() {
	suite.Assert().True(suite.store.TotalMonthlyBudget().IsZero())

	m := suite.store.AddMonthlyBudget(models.MonthlyBudgetCreate{
		Amount:    decimal.NewFromInt(1000),
		Source:    "Employer",
		Frequency: models.FrequencyBiweekly,
		Enabled:   true,
	})
	suite.assertDecimal(2170, suite.store.TotalMonthlyBudget())

	disabled := false
	suite.store.UpdateMonthlyBudget(m.ID, models.MonthlyBudgetUpdate{Enabled: &disabled})
	suite.Assert().True(suite.store.TotalMonthlyBudget().IsZero())
}

func (suite *TestSuiteStandard) TestSwitchToMonth() {
	suite.store.AddTransaction(expense(20, models.FunEnvelopeID))
	january := suite.store.State()

	suite.Assert().True(suite.store.SwitchToMonth(types.NewMonth(2024, 2)))
	suite.Assert().False(suite.store.SwitchToMonth(types.NewMonth(2024, 2)))
	suite.Assert().Empty(suite.store.State().Transactions)

	suite.store.SwitchToMonth(types.NewMonth(2024, 1))
	s := suite.store.State()
	suite.Assert().Equal(january.Transactions, s.Transactions)
	suite.Assert().Equal(january.Envelopes, s.Envelopes)
	suite.Assert().Equal(january.Game.LifetimeExpenses, s.Game.LifetimeExpenses)
}

func (suite *TestSuiteStandard) TestResetData() {
	suite.almostFiftyExpenses()
	suite.store.AddTransaction(expense(20, models.FunEnvelopeID))
	suite.store.AddGoal(models.GoalCreate{Name: "Bike"})

	suite.store.ResetData()

	suite.Assert().Equal(0, suite.store.Pending())
	s := suite.store.State()
	suite.Assert().Empty(s.Transactions)
	suite.Assert().Empty(s.Goals)
	suite.Assert().Equal(0, s.Game.LifetimeExpenses)
	suite.Assert().Equal(0, s.Game.TotalXPEarned)
	suite.Assert().False(suite.quest(s, expensesAchievement).Done)
}

func (suite *TestSuiteStandard) TestCrud() {
	e := suite.store.AddEnvelope(models.EnvelopeCreate{Name: "Travel", MonthlyBudget: decimal.NewFromInt(90)})
	name := "Holidays"
	suite.Assert().True(suite.store.UpdateEnvelope(e.ID, models.EnvelopeUpdate{Name: &name}))

	bill := suite.store.AddRecurring(models.RecurringCreate{Label: "Gym", Amount: decimal.NewFromInt(30), Interval: models.Weekly, NextRun: suite.now})
	amount := decimal.NewFromInt(35)
	suite.Assert().True(suite.store.UpdateRecurring(bill.ID, models.RecurringUpdate{Amount: &amount}))

	goal := suite.store.AddGoal(models.GoalCreate{Name: "Bike", TargetAmount: decimal.NewFromInt(500)})
	target := decimal.NewFromInt(600)
	suite.Assert().True(suite.store.UpdateGoal(goal.ID, models.GoalUpdate{TargetAmount: &target}))

	account := suite.store.AddAccount(models.AccountCreate{Name: "Wallet", Kind: models.AccountCash})
	kind := models.AccountSavings
	suite.Assert().True(suite.store.UpdateAccount(account.ID, models.AccountUpdate{Kind: &kind}))

	rule := suite.store.AddImportRule(models.ImportRule{Match: "Corner*", EnvelopeID: models.GroceryEnvelopeID})

	theme := "dark"
	suite.store.UpdatePrefs(models.PrefsUpdate{Theme: &theme})

	s := suite.store.State()
	suite.Assert().Equal("Holidays", s.Envelope(e.ID).Name)
	suite.assertDecimal(35, s.Bill(bill.ID).Amount)
	suite.assertDecimal(600, s.Goal(goal.ID).TargetAmount)
	suite.Assert().Equal(models.AccountSavings, s.Account(account.ID).Kind)
	suite.Assert().Len(s.ImportRules, 1)
	suite.Assert().Equal("dark", s.Prefs.Theme)

	suite.Assert().True(suite.store.DeleteEnvelope(e.ID))
	suite.Assert().True(suite.store.DeleteRecurring(bill.ID))
	suite.Assert().True(suite.store.DeleteGoal(goal.ID))
	suite.Assert().True(suite.store.DeleteAccount(account.ID))
	suite.Assert().True(suite.store.DeleteImportRule(rule.ID))

	suite.Assert().True(suite.store.DeleteRecurring(models.DefaultRentBillID))
	suite.Assert().Equal(1, suite.store.RestoreDefaultBills())
	suite.Assert().Equal(0, suite.store.RestoreDefaultBills())
}

func (suite *TestSuiteStandard) assertDecimal(expected float64, actual decimal.Decimal) {
	suite.Assert().True(decimal.NewFromFloat(expected).Equal(actual), "expected %v, got %v", expected, actual)
}
