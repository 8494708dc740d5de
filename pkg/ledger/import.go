package ledger

import (
	"time"

	"github.com/envelope-zero/questbook/internal/uuid"
	"github.com/envelope-zero/questbook/pkg/gamification"
	"github.com/envelope-zero/questbook/pkg/importer"
	"github.com/envelope-zero/questbook/pkg/models"
	"golang.org/x/exp/slices"
)

// ImportTransactions prepends a batch of parsed rows to the ledger and
// returns the recorded transactions.
//
// Rows that were already imported before are skipped. Rows without an
// envelope are assigned one by the import rules. Imported transactions do
// not move envelope balances. A non-empty batch earns a flat XP bonus.
func ImportTransactions(s *models.BudgetState, rows []importer.Row, now time.Time) []models.Transaction {
	duplicates := importer.Duplicates(rows, s.Transactions)

	batch := make([]models.Transaction, 0, len(rows))
	for i, r := range rows {
		if slices.Contains(duplicates, i) {
			continue
		}

		t := r.Transaction()
		t.ID = uuid.New()
		if t.Date.IsZero() {
			t.Date = now
			t.ImportHash = importer.Hash(t)
		}
		batch = append(batch, t)
	}

	if len(batch) == 0 {
		return nil
	}

	importer.Apply(s.ImportRules, batch)
	prepend(s, batch...)

	gamification.AwardXP(&s.Game, gamification.XPImportBonus)
	return batch
}

// AddImportRule creates a rule that assigns imported transactions to an envelope.
func AddImportRule(s *models.BudgetState, rule models.ImportRule) models.ImportRule {
	rule.Trim()
	rule.ID = uuid.New()
	s.ImportRules = append(s.ImportRules, rule)
	return rule
}

// DeleteImportRule removes an import rule.
func DeleteImportRule(s *models.BudgetState, id string) bool {
	before := len(s.ImportRules)
	s.ImportRules = slices.DeleteFunc(s.ImportRules, func(r models.ImportRule) bool { return r.ID == id })
	return len(s.ImportRules) != before
}
