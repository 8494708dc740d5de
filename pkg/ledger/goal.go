package ledger

import (
	"time"

	"github.com/envelope-zero/questbook/internal/uuid"
	"github.com/envelope-zero/questbook/pkg/gamification"
	"github.com/envelope-zero/questbook/pkg/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// AddGoal creates a savings goal with nothing saved yet.
func AddGoal(s *models.BudgetState, create models.GoalCreate) models.Goal {
	create.Trim()
	g := models.Goal{ID: uuid.New(), GoalCreate: create, Saved: decimal.Zero}
	s.Goals = append(s.Goals, g)
	return g
}

// UpdateGoal applies a partial update to a goal. The saved amount can only
// change through contributions.
func UpdateGoal(s *models.BudgetState, id string, update models.GoalUpdate) bool {
	g := s.Goal(id)
	if g == nil {
		return false
	}

	if update.Name != nil {
		g.Name = *update.Name
	}
	if update.TargetAmount != nil {
		g.TargetAmount = *update.TargetAmount
	}
	if update.TargetDate != nil {
		g.TargetDate = models.TimePtr(*update.TargetDate)
	}
	if update.LinkedEnvelopeID != nil {
		g.LinkedEnvelopeID = *update.LinkedEnvelopeID
	}

	g.Trim()
	return true
}

// DeleteGoal removes a goal. Its contributions stay in the ledger.
func DeleteGoal(s *models.BudgetState, id string) bool {
	before := len(s.Goals)
	s.Goals = slices.DeleteFunc(s.Goals, func(g models.Goal) bool { return g.ID == id })
	return len(s.Goals) != before
}

// AddToGoal contributes to a goal.
//
// The amount is taken from the goal's linked envelope, or the savings
// envelope if none is linked, and recorded as an income transaction tagged
// as goal contribution. Contributing earns XP. The contribution that makes
// the goal reach its target counts towards the lifetime goals completed and
// earns a bonus; later contributions to a reached goal do not.
//
// Unknown goals and non-positive amounts are ignored.
func AddToGoal(s *models.BudgetState, id string, amount decimal.Decimal, now time.Time) (models.Transaction, bool) {
	goal := s.Goal(id)
	if goal == nil || !amount.IsPositive() {
		return models.Transaction{}, false
	}

	wasReached := goal.Reached()
	goal.Saved = goal.Saved.Add(amount)
	reached := !wasReached && goal.Reached()

	source := s.Envelope(goal.LinkedEnvelopeID)
	if source == nil {
		source = s.Envelope(models.SavingsEnvelopeID)
	}

	t := models.Transaction{
		ID:        uuid.New(),
		Date:      now,
		Amount:    amount,
		Type:      models.Income,
		AccountID: defaultAccountID(s),
		Merchant:  goal.Name,
		Note:      "Goal contribution",
		Tags:      []string{models.TagGoalContribution},
	}

	if source != nil {
		source.Balance = withdraw(source.Balance, amount)
		t.EnvelopeID = source.ID
	}

	prepend(s, t)

	g := &s.Game
	gamification.AwardXP(g, gamification.XPGoalContribution)
	if reached {
		g.LifetimeGoalsCompleted++
		gamification.AwardXP(g, gamification.XPGoalCompleted)
	}

	contributions := countToday(s, now, func(o models.Transaction) bool { return o.HasTag(models.TagGoalContribution) })
	gamification.UpdateQuestProgress(g, models.CategoryGoal, contributions, now)

	return t, true
}
