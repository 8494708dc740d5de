package models

import "time"

// QuestType separates quests that expire daily from permanent ones.
type QuestType string

const (
	QuestDaily       QuestType = "daily"
	QuestAchievement QuestType = "achievement"
)

// QuestCategory selects what drives the progress of a quest.
type QuestCategory string

const (
	CategoryExpense QuestCategory = "expense"
	CategoryIncome  QuestCategory = "income"
	CategoryBill    QuestCategory = "bill"
	CategoryGoal    QuestCategory = "goal"
	CategoryExplore QuestCategory = "explore"
	CategoryCheckIn QuestCategory = "checkin"
	CategoryStreak  QuestCategory = "streak"
	CategoryLevel   QuestCategory = "level"
	CategoryCoins   QuestCategory = "coins"
)

// Counter names a durable lifetime counter of the gamification state.
type Counter string

const (
	CounterExpenses     Counter = "lifetimeExpenses"
	CounterBillPayments Counter = "lifetimeBillPayments"
	CounterGoals        Counter = "lifetimeGoalsCompleted"
	CounterStreak       Counter = "streak"
	CounterStreakRecord Counter = "streakRecord"
	CounterLevel        Counter = "level"
	CounterCoins        Counter = "totalCoinsEarned"
)

// Tier is the rarity of a badge.
type Tier string

const (
	TierBronze Tier = "bronze"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)

// Section is an area of the application whose visits are tracked.
type Section string

const (
	SectionDashboard    Section = "dashboard"
	SectionEnvelopes    Section = "envelopes"
	SectionTransactions Section = "transactions"
	SectionBills        Section = "bills"
	SectionGoals        Section = "goals"
	SectionQuests       Section = "quests"
	SectionInsights     Section = "insights"
)

// Quest is a task with progress and a reward.
//
// Progress never exceeds Target and Done never goes back to false.
type Quest struct {
	ID         string        `json:"id" example:"log-expense-2024-01-15"`
	Title      string        `json:"title" example:"Log an expense"`
	Type       QuestType     `json:"type" example:"daily"`
	Category   QuestCategory `json:"category" example:"expense"`
	Progress   int           `json:"progress"`
	Target     int           `json:"target" example:"1"`
	Done       bool          `json:"done"`
	XP         int           `json:"xp" example:"15"`
	CoinReward int           `json:"coinReward" example:"5"`
	ExpiresAt  *time.Time    `json:"expiresAt,omitempty"` // Only set for daily quests
}

// Badge is a permanent milestone unlocked by a lifetime counter.
type Badge struct {
	ID          string     `json:"id" example:"week-warrior"`
	Title       string     `json:"title" example:"Week Warrior"`
	Tier        Tier       `json:"tier" example:"silver"`
	Counter     Counter    `json:"counter" example:"streakRecord"`
	Progress    int        `json:"progress"`
	Requirement int        `json:"requirement" example:"7"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"` // Never cleared once set
}

// Unlocked reports whether the badge has been unlocked.
func (b Badge) Unlocked() bool {
	return b.UnlockedAt != nil
}

// DailySectionViews are the distinct sections visited on one calendar day.
type DailySectionViews struct {
	Date     string    `json:"date" example:"2024-01-15"`
	Sections []Section `json:"sections"`
}

// Gamification is the process wide progress of the user. It is never part
// of a monthly snapshot.
type Gamification struct {
	XP                     int                `json:"xp"`
	Level                  int                `json:"level"`
	Streak                 int                `json:"streak"`
	StreakRecord           int                `json:"streakRecord"`
	LastActive             *time.Time         `json:"lastActive,omitempty"`
	Coins                  int                `json:"coins"`
	TotalXPEarned          int                `json:"totalXpEarned"`
	TotalCoinsEarned       int                `json:"totalCoinsEarned"`
	QuestsCompleted        int                `json:"questsCompleted"`
	Quests                 []Quest            `json:"quests"`
	Badges                 []Badge            `json:"badges"`
	LifetimeExpenses       int                `json:"lifetimeExpenses"`
	LifetimeBillPayments   int                `json:"lifetimeBillPayments"`
	LifetimeGoalsCompleted int                `json:"lifetimeGoalsCompleted"`
	DailySectionViews      *DailySectionViews `json:"dailySectionViews,omitempty"`
}

// NewGamification returns the starting progress of a new user.
func NewGamification() Gamification {
	return Gamification{
		Level:  1,
		Quests: []Quest{},
		Badges: []Badge{},
	}
}
