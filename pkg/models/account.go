package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AccountKind describes what an account represents.
type AccountKind string

const (
	AccountChecking AccountKind = "checking"
	AccountSavings  AccountKind = "savings"
	AccountCash     AccountKind = "cash"
	AccountCredit   AccountKind = "credit"
)

// Account represents an asset account, e.g. a bank account.
type Account struct {
	ID string `json:"id" example:"checking"`
	AccountCreate
	Balance decimal.Decimal `json:"balance" example:"2735.17"` // Reset to zero when a new month starts
}

type AccountCreate struct {
	Name string      `json:"name" example:"Cash"`
	Kind AccountKind `json:"kind" example:"cash"`
}

// AccountUpdate is a partial update. Nil fields are left untouched.
type AccountUpdate struct {
	Name *string      `json:"name,omitempty"`
	Kind *AccountKind `json:"kind,omitempty"`
}

// Trim removes surrounding whitespace from the string fields.
func (a *AccountCreate) Trim() {
	a.Name = strings.TrimSpace(a.Name)
}
