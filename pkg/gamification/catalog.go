package gamification

import (
	"golang.org/x/exp/slices"

	"github.com/envelope-zero/questbook/pkg/models"
)

// Template is a daily quest blueprint. Instances are created per calendar day.
type Template struct {
	ID         string
	Title      string
	Category   models.QuestCategory
	Target     int
	XP         int
	CoinReward int
}

// DailyTemplates is the catalog daily quests are sampled from.
var DailyTemplates = []Template{
	{ID: "log-expense", Title: "Log an expense", Category: models.CategoryExpense, Target: 1, XP: 15, CoinReward: 5},
	{ID: "log-three-expenses", Title: "Log 3 expenses", Category: models.CategoryExpense, Target: 3, XP: 40, CoinReward: 10},
	{ID: "log-income", Title: "Record some income", Category: models.CategoryIncome, Target: 1, XP: 15, CoinReward: 5},
	{ID: "pay-bill", Title: "Pay a bill", Category: models.CategoryBill, Target: 1, XP: 20, CoinReward: 5},
	{ID: "fund-goal", Title: "Put money towards a goal", Category: models.CategoryGoal, Target: 1, XP: 20, CoinReward: 5},
	{ID: "explore-sections", Title: "Visit 3 different sections", Category: models.CategoryExplore, Target: 3, XP: 15, CoinReward: 5},
	{ID: "check-in", Title: "Check in", Category: models.CategoryCheckIn, Target: 1, XP: 10, CoinReward: 2},
}

// Achievements are the permanent quests every user has.
var Achievements = []models.Quest{
	{ID: "achievement-expenses-50", Title: "Log 50 expenses", Category: models.CategoryExpense, Target: 50, XP: 150, CoinReward: 50},
	{ID: "achievement-expenses-500", Title: "Log 500 expenses", Category: models.CategoryExpense, Target: 500, XP: 600, CoinReward: 200},
	{ID: "achievement-streak-7", Title: "Keep a 7 day streak", Category: models.CategoryStreak, Target: 7, XP: 100, CoinReward: 30},
	{ID: "achievement-streak-30", Title: "Keep a 30 day streak", Category: models.CategoryStreak, Target: 30, XP: 400, CoinReward: 120},
	{ID: "achievement-goal-1", Title: "Complete a savings goal", Category: models.CategoryGoal, Target: 1, XP: 100, CoinReward: 40},
	{ID: "achievement-bills-12", Title: "Pay 12 bills", Category: models.CategoryBill, Target: 12, XP: 150, CoinReward: 50},
	{ID: "achievement-level-10", Title: "Reach level 10", Category: models.CategoryLevel, Target: 10, XP: 250, CoinReward: 100},
	{ID: "achievement-coins-1000", Title: "Earn 1000 coins", Category: models.CategoryCoins, Target: 1000, XP: 300, CoinReward: 0},
}

// Badges is the catalog of unlockable badges.
var Badges = []models.Badge{
	{ID: "first-steps", Title: "First Steps", Tier: models.TierBronze, Counter: models.CounterExpenses, Requirement: 1},
	{ID: "bookkeeper", Title: "Bookkeeper", Tier: models.TierSilver, Counter: models.CounterExpenses, Requirement: 100},
	{ID: "ledger-legend", Title: "Ledger Legend", Tier: models.TierGold, Counter: models.CounterExpenses, Requirement: 1000},
	{ID: "on-fire", Title: "On Fire", Tier: models.TierBronze, Counter: models.CounterStreakRecord, Requirement: 3},
	{ID: "week-warrior", Title: "Week Warrior", Tier: models.TierSilver, Counter: models.CounterStreakRecord, Requirement: 7},
	{ID: "unstoppable", Title: "Unstoppable", Tier: models.TierGold, Counter: models.CounterStreakRecord, Requirement: 30},
	{ID: "goal-getter", Title: "Goal Getter", Tier: models.TierSilver, Counter: models.CounterGoals, Requirement: 1},
	{ID: "dream-chaser", Title: "Dream Chaser", Tier: models.TierGold, Counter: models.CounterGoals, Requirement: 5},
	{ID: "bill-boss", Title: "Bill Boss", Tier: models.TierSilver, Counter: models.CounterBillPayments, Requirement: 10},
	{ID: "rising-star", Title: "Rising Star", Tier: models.TierSilver, Counter: models.CounterLevel, Requirement: 5},
	{ID: "coin-collector", Title: "Coin Collector", Tier: models.TierGold, Counter: models.CounterCoins, Requirement: 1000},
}

// SeedAchievements adds every catalog achievement the user does not have yet
// and returns how many were added. Existing quests keep their progress.
func SeedAchievements(g *models.Gamification) int {
	added := 0
	for _, a := range Achievements {
		if slices.ContainsFunc(g.Quests, func(q models.Quest) bool { return q.ID == a.ID }) {
			continue
		}

		a.Type = models.QuestAchievement
		g.Quests = append(g.Quests, a)
		added++
	}
	return added
}

// SeedBadges adds every catalog badge the user does not have yet and returns
// how many were added. Existing badges are left untouched.
func SeedBadges(g *models.Gamification) int {
	added := 0
	for _, b := range Badges {
		if slices.ContainsFunc(g.Badges, func(o models.Badge) bool { return o.ID == b.ID }) {
			continue
		}

		g.Badges = append(g.Badges, b)
		added++
	}
	return added
}
