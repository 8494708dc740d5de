package persistence

import (
	"time"

	"github.com/envelope-zero/questbook/internal/types"
	"github.com/envelope-zero/questbook/pkg/gamification"
	"github.com/envelope-zero/questbook/pkg/models"
	"github.com/shopspring/decimal"
)

// migrations[n] upgrades a state from version n to n+1.
var migrations = []func(s *models.BudgetState, now time.Time){
	migrateMonthlyBudgets,
	migrateSound,
	migrateGamification,
}

// Migrate upgrades a state stored with version from to CurrentVersion.
// Existing data is never discarded.
func Migrate(s *models.BudgetState, from int, now time.Time) {
	for v := max(from, 0); v < CurrentVersion && v < len(migrations); v++ {
		migrations[v](s, now)
	}
}

// Version 1 added income sources and the monthly archive.
func migrateMonthlyBudgets(s *models.BudgetState, now time.Time) {
	if s.MonthlyBudgets == nil {
		s.MonthlyBudgets = []models.MonthlyBudgetConfig{}
	}
	if s.MonthlyHistory == nil {
		s.MonthlyHistory = []models.MonthlyData{}
	}
	if s.CurrentMonth.IsZero() {
		s.CurrentMonth = types.MonthOf(now)
	}
}

// Version 2 added sound settings.
func migrateSound(s *models.BudgetState, _ time.Time) {
	if s.Prefs.Sound == nil {
		s.Prefs.Sound = models.DefaultSoundSettings()
	}
}

// Version 3 added achievements, badges and the lifetime counters.
func migrateGamification(s *models.BudgetState, _ time.Time) {
	g := &s.Game
	if g.Quests == nil {
		g.Quests = []models.Quest{}
	}
	if g.Badges == nil {
		g.Badges = []models.Badge{}
	}

	gamification.SeedAchievements(g)
	gamification.SeedBadges(g)

	// Expenses logged before the counters existed still count
	if g.LifetimeExpenses == 0 {
		for _, t := range s.Transactions {
			if t.Type == models.Expense && !t.HasTag(models.TagBillPayment) {
				g.LifetimeExpenses++
			}
		}
	}
	if g.StreakRecord < g.Streak {
		g.StreakRecord = g.Streak
	}
}

// Normalize fills in every container and setting that may be missing from
// a stored state, whatever its version.
func Normalize(s *models.BudgetState, now time.Time) {
	defaults := models.DefaultPrefs()
	if s.Prefs.Currency == "" {
		s.Prefs.Currency = defaults.Currency
	}
	if s.Prefs.Locale.IsRoot() {
		s.Prefs.Locale = defaults.Locale
	}
	if s.Prefs.Theme == "" {
		s.Prefs.Theme = defaults.Theme
	}
	if s.Prefs.Sound == nil {
		s.Prefs.Sound = models.DefaultSoundSettings()
	}

	if s.Accounts == nil {
		s.Accounts = models.DefaultAccounts()
	}
	if s.Envelopes == nil {
		s.Envelopes = []models.Envelope{}
	}
	for i := range s.Envelopes {
		s.Envelopes[i].Balance = decimal.Max(decimal.Zero, s.Envelopes[i].Balance)
	}
	if s.Goals == nil {
		s.Goals = []models.Goal{}
	}
	if s.Transactions == nil {
		s.Transactions = []models.Transaction{}
	}
	if s.Recurring == nil {
		s.Recurring = []models.RecurringRule{}
	}
	if s.ImportRules == nil {
		s.ImportRules = []models.ImportRule{}
	}

	migrateMonthlyBudgets(s, now)
	for i := range s.MonthlyHistory {
		if s.MonthlyHistory[i].Transactions == nil {
			s.MonthlyHistory[i].Transactions = []models.Transaction{}
		}
		if s.MonthlyHistory[i].EnvelopeBalances == nil {
			s.MonthlyHistory[i].EnvelopeBalances = map[string]decimal.Decimal{}
		}
	}

	g := &s.Game
	if g.Quests == nil {
		g.Quests = []models.Quest{}
	}
	if g.Badges == nil {
		g.Badges = []models.Badge{}
	}
	g.XP = min(max(g.XP, 0), gamification.MaxXP)
	g.Level = max(g.Level, gamification.LevelForXP(g.XP))
	if g.DailySectionViews != nil && g.DailySectionViews.Sections == nil {
		g.DailySectionViews.Sections = []models.Section{}
	}
}
