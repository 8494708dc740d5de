package ledger

import (
	"github.com/envelope-zero/questbook/internal/uuid"
	"github.com/envelope-zero/questbook/pkg/models"
	"golang.org/x/exp/slices"
)

// AddAccount creates an account with a zero balance.
func AddAccount(s *models.BudgetState, create models.AccountCreate) models.Account {
	create.Trim()
	if create.Kind == "" {
		create.Kind = models.AccountChecking
	}

	a := models.Account{ID: uuid.New(), AccountCreate: create}
	s.Accounts = append(s.Accounts, a)
	return a
}

// UpdateAccount applies a partial update to an account.
func UpdateAccount(s *models.BudgetState, id string, update models.AccountUpdate) bool {
	a := s.Account(id)
	if a == nil {
		return false
	}

	if update.Name != nil {
		a.Name = *update.Name
	}
	if update.Kind != nil {
		a.Kind = *update.Kind
	}

	a.Trim()
	return true
}

// DeleteAccount removes an account. Transactions booked on it are kept.
func DeleteAccount(s *models.BudgetState, id string) bool {
	before := len(s.Accounts)
	s.Accounts = slices.DeleteFunc(s.Accounts, func(a models.Account) bool { return a.ID == id })
	return len(s.Accounts) != before
}

// UpdatePrefs applies a partial update to the preferences.
func UpdatePrefs(s *models.BudgetState, update models.PrefsUpdate) {
	if update.Currency != nil {
		s.Prefs.Currency = *update.Currency
	}
	if update.Locale != nil {
		s.Prefs.Locale = *update.Locale
	}
	if update.Theme != nil {
		s.Prefs.Theme = *update.Theme
	}
	if update.Sound != nil {
		sound := *update.Sound
		sound.Volume = min(max(sound.Volume, 0), 1)
		s.Prefs.Sound = &sound
	}
}
