package store

import (
	"time"

	"github.com/envelope-zero/questbook/internal/types"
	"github.com/envelope-zero/questbook/pkg/gamification"
	"github.com/envelope-zero/questbook/pkg/importer"
	"github.com/envelope-zero/questbook/pkg/ledger"
	"github.com/envelope-zero/questbook/pkg/models"
	"github.com/envelope-zero/questbook/pkg/period"
	"github.com/shopspring/decimal"
)

// AddTransaction records a transaction and returns it.
func (s *Store) AddTransaction(t models.Transaction) (created models.Transaction) {
	s.do("add_transaction", func(state *models.BudgetState, now time.Time) bool {
		created = ledger.AddTransaction(state, t, now)
		return true
	}, EventReconcileAchievements)
	return
}

// AllocateEnvelope moves delta into or out of an envelope.
func (s *Store) AllocateEnvelope(id string, delta decimal.Decimal) (ok bool) {
	s.do("allocate_envelope", func(state *models.BudgetState, _ time.Time) bool {
		ok = ledger.AllocateEnvelope(state, id, delta)
		return ok
	})
	return
}

// AddEnvelope creates an envelope funded with its monthly budget.
func (s *Store) AddEnvelope(create models.EnvelopeCreate) (created models.Envelope) {
	s.do("add_envelope", func(state *models.BudgetState, _ time.Time) bool {
		created = ledger.AddEnvelope(state, create)
		return true
	})
	return
}

// UpdateEnvelope applies a partial update to an envelope.
func (s *Store) UpdateEnvelope(id string, update models.EnvelopeUpdate) (ok bool) {
	s.do("update_envelope", func(state *models.BudgetState, _ time.Time) bool {
		ok = ledger.UpdateEnvelope(state, id, update)
		return ok
	})
	return
}

// DeleteEnvelope removes an envelope. Its transactions are kept.
func (s *Store) DeleteEnvelope(id string) (ok bool) {
	s.do("delete_envelope", func(state *models.BudgetState, _ time.Time) bool {
		ok = ledger.DeleteEnvelope(state, id)
		return ok
	})
	return
}

// AddRecurring creates a recurring bill.
func (s *Store) AddRecurring(create models.RecurringCreate) (created models.RecurringRule) {
	s.do("add_recurring", func(state *models.BudgetState, _ time.Time) bool {
		created = ledger.AddRecurring(state, create)
		return true
	})
	return
}

// UpdateRecurring applies a partial update to a recurring bill.
func (s *Store) UpdateRecurring(id string, update models.RecurringUpdate) (ok bool) {
	s.do("update_recurring", func(state *models.BudgetState, _ time.Time) bool {
		ok = ledger.UpdateRecurring(state, id, update)
		return ok
	})
	return
}

// DeleteRecurring removes a recurring bill.
func (s *Store) DeleteRecurring(id string) (ok bool) {
	s.do("delete_recurring", func(state *models.BudgetState, _ time.Time) bool {
		ok = ledger.DeleteRecurring(state, id)
		return ok
	})
	return
}

// MarkBillPaid pays a bill and returns the recorded payment.
func (s *Store) MarkBillPaid(id string) (payment models.Transaction, ok bool) {
	s.do("mark_bill_paid", func(state *models.BudgetState, now time.Time) bool {
		payment, ok = ledger.MarkBillPaid(state, id, now)
		return ok
	}, EventReconcileAchievements)
	return
}

// RestoreDefaultBills re-adds the default bills that were deleted and returns how many.
func (s *Store) RestoreDefaultBills() (restored int) {
	s.do("restore_default_bills", func(state *models.BudgetState, now time.Time) bool {
		restored = ledger.RestoreDefaultBills(state, now)
		return restored > 0
	})
	return
}

// AddGoal creates a savings goal.
func (s *Store) AddGoal(create models.GoalCreate) (created models.Goal) {
	s.do("add_goal", func(state *models.BudgetState, _ time.Time) bool {
		created = ledger.AddGoal(state, create)
		return true
	})
	return
}

// UpdateGoal applies a partial update to a goal.
func (s *Store) UpdateGoal(id string, update models.GoalUpdate) (ok bool) {
	s.do("update_goal", func(state *models.BudgetState, _ time.Time) bool {
		ok = ledger.UpdateGoal(state, id, update)
		return ok
	})
	return
}

// DeleteGoal removes a goal.
func (s *Store) DeleteGoal(id string) (ok bool) {
	s.do("delete_goal", func(state *models.BudgetState, _ time.Time) bool {
		ok = ledger.DeleteGoal(state, id)
		return ok
	})
	return
}

// AddToGoal contributes amount to a goal and returns the recorded contribution.
func (s *Store) AddToGoal(id string, amount decimal.Decimal) (contribution models.Transaction, ok bool) {
	s.do("add_to_goal", func(state *models.BudgetState, now time.Time) bool {
		contribution, ok = ledger.AddToGoal(state, id, amount, now)
		return ok
	}, EventReconcileAchievements)
	return
}

// AddMonthlyBudget creates an income source for the monthly budget.
func (s *Store) AddMonthlyBudget(create models.MonthlyBudgetCreate) (created models.MonthlyBudgetConfig) {
	s.do("add_monthly_budget", func(state *models.BudgetState, _ time.Time) bool {
		created = ledger.AddMonthlyBudget(state, create)
		return true
	})
	return
}

// UpdateMonthlyBudget applies a partial update to an income source.
func (s *Store) UpdateMonthlyBudget(id string, update models.MonthlyBudgetUpdate) (ok bool) {
	s.do("update_monthly_budget", func(state *models.BudgetState, _ time.Time) bool {
		ok = ledger.UpdateMonthlyBudget(state, id, update)
		return ok
	})
	return
}

// DeleteMonthlyBudget removes an income source.
func (s *Store) DeleteMonthlyBudget(id string) (ok bool) {
	s.do("delete_monthly_budget", func(state *models.BudgetState, _ time.Time) bool {
		ok = ledger.DeleteMonthlyBudget(state, id)
		return ok
	})
	return
}

// AddAccount creates an account.
func (s *Store) AddAccount(create models.AccountCreate) (created models.Account) {
	s.do("add_account", func(state *models.BudgetState, _ time.Time) bool {
		created = ledger.AddAccount(state, create)
		return true
	})
	return
}

// UpdateAccount applies a partial update to an account.
func (s *Store) UpdateAccount(id string, update models.AccountUpdate) (ok bool) {
	s.do("update_account", func(state *models.BudgetState, _ time.Time) bool {
		ok = ledger.UpdateAccount(state, id, update)
		return ok
	})
	return
}

// DeleteAccount removes an account.
func (s *Store) DeleteAccount(id string) (ok bool) {
	s.do("delete_account", func(state *models.BudgetState, _ time.Time) bool {
		ok = ledger.DeleteAccount(state, id)
		return ok
	})
	return
}

// UpdatePrefs applies a partial update to the preferences.
func (s *Store) UpdatePrefs(update models.PrefsUpdate) {
	s.do("update_prefs", func(state *models.BudgetState, _ time.Time) bool {
		ledger.UpdatePrefs(state, update)
		return true
	})
}

// ImportTransactions records a batch of parsed rows and returns the
// recorded transactions.
func (s *Store) ImportTransactions(rows []importer.Row) (imported []models.Transaction) {
	s.do("import_transactions", func(state *models.BudgetState, now time.Time) bool {
		imported = ledger.ImportTransactions(state, rows, now)
		return len(imported) > 0
	}, EventReconcileAchievements)
	return
}

// AddImportRule creates a rule that assigns imported transactions to an envelope.
func (s *Store) AddImportRule(rule models.ImportRule) (created models.ImportRule) {
	s.do("add_import_rule", func(state *models.BudgetState, _ time.Time) bool {
		created = ledger.AddImportRule(state, rule)
		return true
	})
	return
}

// DeleteImportRule removes an import rule.
func (s *Store) DeleteImportRule(id string) (ok bool) {
	s.do("delete_import_rule", func(state *models.BudgetState, _ time.Time) bool {
		ok = ledger.DeleteImportRule(state, id)
		return ok
	})
	return
}

// CompleteQuest completes a quest and grants its reward.
func (s *Store) CompleteQuest(id string) (ok bool) {
	s.do("complete_quest", func(state *models.BudgetState, _ time.Time) bool {
		ok = gamification.CompleteQuest(&state.Game, id)
		return ok
	})
	return
}

// RefreshDailyQuests replaces the daily quests once one of them has expired.
func (s *Store) RefreshDailyQuests() (refreshed bool) {
	s.do("refresh_daily_quests", func(state *models.BudgetState, now time.Time) bool {
		refreshed = gamification.RefreshDailyQuests(&state.Game, s.rand, now)
		return refreshed
	})
	return
}

// UpdateQuestProgress moves the daily quests of a category to observed and
// returns the quests it completed.
func (s *Store) UpdateQuestProgress(category models.QuestCategory, observed int) (completed []models.Quest) {
	s.do("update_quest_progress", func(state *models.BudgetState, now time.Time) bool {
		before := state.Game.Clone()
		completed = gamification.UpdateQuestProgress(&state.Game, category, observed, now)
		return len(completed) > 0 || questProgressChanged(before.Quests, state.Game.Quests)
	})
	return
}

// UpdateAchievementQuests reconciles the achievement quests with the
// lifetime counters and returns the quests it completed.
func (s *Store) UpdateAchievementQuests() (completed []models.Quest) {
	s.do("update_achievement_quests", func(state *models.BudgetState, _ time.Time) bool {
		before := state.Game.Clone()
		completed = gamification.UpdateAchievementQuests(&state.Game)
		return len(completed) > 0 || questProgressChanged(before.Quests, state.Game.Quests)
	})
	return
}

// CheckAndAwardBadges unlocks every badge whose requirement is met and
// returns the badges it unlocked. It is safe to call at any time.
func (s *Store) CheckAndAwardBadges() (unlocked []models.Badge) {
	s.do("check_badges", func(state *models.BudgetState, now time.Time) bool {
		before := state.Game.Clone()
		unlocked = gamification.CheckAndAwardBadges(&state.Game, now)
		for _, b := range unlocked {
			s.log.Info().Str("badge", b.ID).Str("tier", string(b.Tier)).Msg("badge unlocked")
		}
		return len(unlocked) > 0 || badgeProgressChanged(before.Badges, state.Game.Badges)
	})
	return
}

// CheckStreak updates the daily streak.
func (s *Store) CheckStreak() (updated bool) {
	s.do("check_streak", func(state *models.BudgetState, now time.Time) bool {
		before := state.Game.Clone()
		updated = gamification.CheckStreak(&state.Game, now)
		return updated || questProgressChanged(before.Quests, state.Game.Quests)
	})
	return
}

// TrackSectionView records a visit to a section of the app.
func (s *Store) TrackSectionView(section models.Section) (tracked bool) {
	s.do("track_section_view", func(state *models.BudgetState, now time.Time) bool {
		tracked = gamification.TrackSectionView(&state.Game, section, now)
		return tracked
	})
	return
}

// SwitchToMonth makes month the active month.
func (s *Store) SwitchToMonth(month types.Month) (switched bool) {
	s.do("switch_month", func(state *models.BudgetState, _ time.Time) bool {
		switched = period.SwitchToMonth(state, month)
		return switched
	})
	return
}

// ResetData throws the budget away and starts over with a new one.
func (s *Store) ResetData() {
	s.do("reset_data", func(state *models.BudgetState, now time.Time) bool {
		s.events = nil
		*state = *ledger.NewState(now, s.rand)
		return true
	})
}

func questProgressChanged(before, after []models.Quest) bool {
	if len(before) != len(after) {
		return true
	}
	for i := range before {
		if before[i].Progress != after[i].Progress || before[i].Done != after[i].Done {
			return true
		}
	}
	return false
}

func badgeProgressChanged(before, after []models.Badge) bool {
	for i := range before {
		if before[i].Progress != after[i].Progress {
			return true
		}
	}
	return false
}
