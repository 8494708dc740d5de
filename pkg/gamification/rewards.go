package gamification

import "github.com/envelope-zero/questbook/pkg/models"

// XP rewards for ledger activity.
const (
	XPExpense          = 10
	XPIncome           = 5
	XPTransfer         = 2
	XPBillPayment      = 15
	XPGoalContribution = 10
	XPGoalCompleted    = 50
	XPImportBonus      = 25

	// XPRepeated is awarded for every transaction of a type beyond
	// FullRewardsPerDay on the same calendar day.
	XPRepeated        = 1
	FullRewardsPerDay = 5

	// BadgeCoinBonus is granted when a badge unlocks.
	BadgeCoinBonus = 50
)

var transactionXP = map[models.TransactionType]int{
	models.Expense:  XPExpense,
	models.Income:   XPIncome,
	models.Transfer: XPTransfer,
}

// TransactionXP returns the XP for logging a transaction of type t when
// sameDayCount transactions of that type, including this one, have been
// logged on the same calendar day.
func TransactionXP(t models.TransactionType, sameDayCount int) int {
	xp, ok := transactionXP[t]
	if !ok {
		return 0
	}

	if sameDayCount > FullRewardsPerDay {
		return XPRepeated
	}
	return xp
}

// transactionCategories maps transaction types to the daily quest category
// they progress.
var transactionCategories = map[models.TransactionType]models.QuestCategory{
	models.Expense: models.CategoryExpense,
	models.Income:  models.CategoryIncome,
}

// CategoryForTransaction returns the daily quest category a transaction of
// type t progresses.
func CategoryForTransaction(t models.TransactionType) (models.QuestCategory, bool) {
	c, ok := transactionCategories[t]
	return c, ok
}
