package gamification

import "github.com/envelope-zero/questbook/pkg/models"

// counters extracts the value of every lifetime counter.
var counters = map[models.Counter]func(*models.Gamification) int{
	models.CounterExpenses:     func(g *models.Gamification) int { return g.LifetimeExpenses },
	models.CounterBillPayments: func(g *models.Gamification) int { return g.LifetimeBillPayments },
	models.CounterGoals:        func(g *models.Gamification) int { return g.LifetimeGoalsCompleted },
	models.CounterStreak:       func(g *models.Gamification) int { return g.Streak },
	models.CounterStreakRecord: func(g *models.Gamification) int { return g.StreakRecord },
	models.CounterLevel:        func(g *models.Gamification) int { return g.Level },
	models.CounterCoins:        func(g *models.Gamification) int { return g.TotalCoinsEarned },
}

// achievementCounters binds achievement quest categories to the counter
// that drives their progress.
var achievementCounters = map[models.QuestCategory]models.Counter{
	models.CategoryExpense: models.CounterExpenses,
	models.CategoryBill:    models.CounterBillPayments,
	models.CategoryGoal:    models.CounterGoals,
	models.CategoryStreak:  models.CounterStreak,
	models.CategoryLevel:   models.CounterLevel,
	models.CategoryCoins:   models.CounterCoins,
}

// CounterValue returns the current value of a lifetime counter.
func CounterValue(g *models.Gamification, c models.Counter) (int, bool) {
	f, ok := counters[c]
	if !ok {
		return 0, false
	}
	return f(g), true
}

// AchievementCounter returns the counter an achievement quest of the
// category is measured against.
func AchievementCounter(category models.QuestCategory) (models.Counter, bool) {
	c, ok := achievementCounters[category]
	return c, ok
}
