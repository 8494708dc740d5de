// Package importer maps parsed import rows onto transactions.
//
// Parsing files is done by the caller. Rows handed to this package are
// trusted: they have already been filtered for malformed values.
package importer

import (
	"time"

	"github.com/envelope-zero/questbook/pkg/models"
	"github.com/shopspring/decimal"
)

// Row is one parsed line of an import.
type Row struct {
	Date       time.Time              `json:"date" example:"2024-01-15T00:00:00Z"`
	Amount     decimal.Decimal        `json:"amount" example:"23.40"`
	Type       models.TransactionType `json:"type" example:"expense"`
	EnvelopeID string                 `json:"envelopeId,omitempty" example:"groceries"`
	AccountID  string                 `json:"accountId" example:"checking"`
	Merchant   string                 `json:"merchant,omitempty" example:"Corner Shop"`
	Note       string                 `json:"note,omitempty"`
	Tags       []string               `json:"tags,omitempty"`
}

// Transaction returns the transaction the row maps to. The ID is left
// empty, the import hash is set.
func (r Row) Transaction() models.Transaction {
	t := models.Transaction{
		Date:       r.Date,
		Amount:     r.Amount,
		Type:       r.Type,
		EnvelopeID: r.EnvelopeID,
		AccountID:  r.AccountID,
		Merchant:   r.Merchant,
		Note:       r.Note,
		Tags:       append([]string{models.TagImported}, r.Tags...),
	}
	t.Trim()
	t.ImportHash = Hash(t)

	return t
}
