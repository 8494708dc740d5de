package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Interval is the recurrence of a bill.
type Interval string

const (
	Daily    Interval = "daily"
	Weekly   Interval = "weekly"
	Biweekly Interval = "biweekly"
	Monthly  Interval = "monthly"
)

// Next returns t advanced by one interval unit.
//
// Monthly steps use time.AddDate, so the 31st of a month followed by a
// shorter month rolls over into the month after.
func (i Interval) Next(t time.Time) (time.Time, error) {
	switch i {
	case Daily:
		return t.AddDate(0, 0, 1), nil
	case Weekly:
		return t.AddDate(0, 0, 7), nil
	case Biweekly:
		return t.AddDate(0, 0, 14), nil
	case Monthly:
		return t.AddDate(0, 1, 0), nil
	}

	return t, ErrUnknownInterval
}

// RecurringRule is a bill that is due regularly.
type RecurringRule struct {
	ID string `json:"id" example:"default-rent"`
	RecurringCreate
}

type RecurringCreate struct {
	Label      string          `json:"label" example:"Rent"`
	Amount     decimal.Decimal `json:"amount" example:"950"`
	Interval   Interval        `json:"interval" example:"monthly"`
	NextRun    time.Time       `json:"nextRun" example:"2024-01-15T00:00:00Z"`
	EnvelopeID string          `json:"envelopeId,omitempty" example:"bills"`
	AccountID  string          `json:"accountId" example:"checking"`
	Type       TransactionType `json:"type" example:"expense"`
	IsDefault  bool            `json:"isDefault,omitempty"` // Seeded bills that can be restored
}

// RecurringUpdate is a partial update. Nil fields are left untouched.
type RecurringUpdate struct {
	Label      *string          `json:"label,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Interval   *Interval        `json:"interval,omitempty"`
	NextRun    *time.Time       `json:"nextRun,omitempty"`
	EnvelopeID *string          `json:"envelopeId,omitempty"`
	AccountID  *string          `json:"accountId,omitempty"`
	Type       *TransactionType `json:"type,omitempty"`
}

// Trim removes surrounding whitespace from the string fields.
func (r *RecurringCreate) Trim() {
	r.Label = strings.TrimSpace(r.Label)
}
