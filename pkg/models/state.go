package models

import (
	"time"

	"github.com/envelope-zero/questbook/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// BudgetState is the aggregate root holding everything a user has.
//
// Transactions and envelope balances always belong to CurrentMonth. Other
// months live in MonthlyHistory.
type BudgetState struct {
	Prefs          Prefs                 `json:"prefs"`
	Accounts       []Account             `json:"accounts"`
	Envelopes      []Envelope            `json:"envelopes"`
	Goals          []Goal                `json:"goals"`
	Transactions   []Transaction         `json:"transactions"` // Newest first
	Recurring      []RecurringRule       `json:"recurring"`
	Game           Gamification          `json:"game"`
	MonthlyBudgets []MonthlyBudgetConfig `json:"monthlyBudgets"`
	CurrentMonth   types.Month           `json:"currentMonth"`
	MonthlyHistory []MonthlyData         `json:"monthlyHistory"`
	ImportRules    []ImportRule          `json:"importRules"`
}

// Envelope returns the envelope with the given ID or nil.
func (s *BudgetState) Envelope(id string) *Envelope {
	if id == "" {
		return nil
	}
	i := slices.IndexFunc(s.Envelopes, func(e Envelope) bool { return e.ID == id })
	if i < 0 {
		return nil
	}
	return &s.Envelopes[i]
}

// Account returns the account with the given ID or nil.
func (s *BudgetState) Account(id string) *Account {
	if id == "" {
		return nil
	}
	i := slices.IndexFunc(s.Accounts, func(a Account) bool { return a.ID == id })
	if i < 0 {
		return nil
	}
	return &s.Accounts[i]
}

// Goal returns the goal with the given ID or nil.
func (s *BudgetState) Goal(id string) *Goal {
	i := slices.IndexFunc(s.Goals, func(g Goal) bool { return g.ID == id })
	if i < 0 {
		return nil
	}
	return &s.Goals[i]
}

// Bill returns the recurring rule with the given ID or nil.
func (s *BudgetState) Bill(id string) *RecurringRule {
	i := slices.IndexFunc(s.Recurring, func(r RecurringRule) bool { return r.ID == id })
	if i < 0 {
		return nil
	}
	return &s.Recurring[i]
}

// MonthlyBudget returns the income source with the given ID or nil.
func (s *BudgetState) MonthlyBudget(id string) *MonthlyBudgetConfig {
	i := slices.IndexFunc(s.MonthlyBudgets, func(m MonthlyBudgetConfig) bool { return m.ID == id })
	if i < 0 {
		return nil
	}
	return &s.MonthlyBudgets[i]
}

// Clone returns a deep copy of the state.
func (s *BudgetState) Clone() *BudgetState {
	c := *s

	c.Prefs.Sound = clonePtr(s.Prefs.Sound)
	c.Accounts = slices.Clone(s.Accounts)
	c.Envelopes = slices.Clone(s.Envelopes)
	c.Recurring = slices.Clone(s.Recurring)
	c.MonthlyBudgets = slices.Clone(s.MonthlyBudgets)
	c.ImportRules = slices.Clone(s.ImportRules)
	c.Transactions = cloneTransactions(s.Transactions)

	if s.Goals != nil {
		c.Goals = make([]Goal, len(s.Goals))
		for i, g := range s.Goals {
			g.TargetDate = clonePtr(g.TargetDate)
			c.Goals[i] = g
		}
	}

	if s.MonthlyHistory != nil {
		c.MonthlyHistory = make([]MonthlyData, len(s.MonthlyHistory))
		for i, m := range s.MonthlyHistory {
			c.MonthlyHistory[i] = m.Clone()
		}
	}

	c.Game = s.Game.Clone()
	return &c
}

// Clone returns a deep copy of the snapshot.
func (m MonthlyData) Clone() MonthlyData {
	return MonthlyData{
		MonthKey:         m.MonthKey,
		Transactions:     cloneTransactions(m.Transactions),
		EnvelopeBalances: cloneBalances(m.EnvelopeBalances),
		AccountBalances:  cloneBalances(m.AccountBalances),
	}
}

func cloneBalances(in map[string]decimal.Decimal) map[string]decimal.Decimal {
	if in == nil {
		return nil
	}

	out := make(map[string]decimal.Decimal, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Clone returns a deep copy of the gamification state.
func (g Gamification) Clone() Gamification {
	c := g
	c.LastActive = clonePtr(g.LastActive)

	if g.Quests != nil {
		c.Quests = make([]Quest, len(g.Quests))
		for i, q := range g.Quests {
			q.ExpiresAt = clonePtr(q.ExpiresAt)
			c.Quests[i] = q
		}
	}

	if g.Badges != nil {
		c.Badges = make([]Badge, len(g.Badges))
		for i, b := range g.Badges {
			b.UnlockedAt = clonePtr(b.UnlockedAt)
			c.Badges[i] = b
		}
	}

	if g.DailySectionViews != nil {
		views := *g.DailySectionViews
		views.Sections = slices.Clone(views.Sections)
		c.DailySectionViews = &views
	}

	return c
}

func cloneTransactions(in []Transaction) []Transaction {
	if in == nil {
		return nil
	}

	out := make([]Transaction, len(in))
	for i, t := range in {
		t.Tags = slices.Clone(t.Tags)
		out[i] = t
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// TimePtr returns a pointer to a copy of t.
func TimePtr(t time.Time) *time.Time {
	return &t
}
