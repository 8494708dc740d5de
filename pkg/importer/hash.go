package importer

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/envelope-zero/questbook/internal/types"
	"github.com/envelope-zero/questbook/pkg/models"
)

// Sha256String calculates the SHA256 hash of a given string and returns its string representation.
func Sha256String(input string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(input)))
}

// Hash returns the import hash of a transaction. Two imports of the same
// bank line yield the same hash.
func Hash(t models.Transaction) string {
	return Sha256String(strings.Join([]string{
		t.Date.UTC().Format(types.DateLayout),
		t.Amount.String(),
		string(t.Type),
		t.AccountID,
		strings.ToLower(t.Merchant),
		t.Note,
	}, "|"))
}

// Duplicates returns the indices of rows whose import hash already exists
// in the given transactions.
func Duplicates(rows []Row, existing []models.Transaction) []int {
	known := make(map[string]bool, len(existing))
	for _, t := range existing {
		if t.ImportHash != "" {
			known[t.ImportHash] = true
		}
	}

	var duplicates []int
	for i, r := range rows {
		if known[r.Transaction().ImportHash] {
			duplicates = append(duplicates, i)
		}
	}
	return duplicates
}
