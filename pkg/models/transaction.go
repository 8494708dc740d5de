package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// TransactionType is the kind of a transaction.
type TransactionType string

const (
	Expense  TransactionType = "expense"
	Income   TransactionType = "income"
	Transfer TransactionType = "transfer"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case Expense, Income, Transfer:
		return true
	}
	return false
}

// Tags set on transactions the engine synthesizes.
const (
	TagBillPayment      = "bill-payment"
	TagGoalContribution = "goal-contribution"
	TagImported         = "imported"
)

// Transaction is an entry in the ledger. Transactions are never changed
// after they have been recorded.
type Transaction struct {
	ID         string          `json:"id" example:"0f5c2a4e-8a47-4d7e-9b83-0ad5b4a6b1b9"`
	Date       time.Time       `json:"date" example:"2024-01-15T09:30:00Z"`
	Amount     decimal.Decimal `json:"amount" example:"14.99"`
	Type       TransactionType `json:"type" example:"expense"`
	EnvelopeID string          `json:"envelopeId,omitempty" example:"groceries"`
	AccountID  string          `json:"accountId" example:"checking"`
	Merchant   string          `json:"merchant,omitempty" example:"Corner Shop"`
	Note       string          `json:"note,omitempty" example:"Milk and bread"`
	Tags       []string        `json:"tags,omitempty"`
	ImportHash string          `json:"importHash,omitempty"` // The SHA256 hash of the imported row, used to spot duplicates
}

// Trim removes surrounding whitespace from the string fields.
func (t *Transaction) Trim() {
	t.Merchant = strings.TrimSpace(t.Merchant)
	t.Note = strings.TrimSpace(t.Note)
	t.EnvelopeID = strings.TrimSpace(t.EnvelopeID)
	t.AccountID = strings.TrimSpace(t.AccountID)
}

// HasTag reports whether the transaction carries the tag.
func (t Transaction) HasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}
