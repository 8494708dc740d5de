// Package persistence stores budgets as versioned JSON documents.
//
// A document wraps the budget state with the schema version it was written
// with. Older documents are migrated on load, newer ones are rejected.
package persistence

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/envelope-zero/questbook/pkg/models"
)

// CurrentVersion is the schema version written by Encode.
const CurrentVersion = 3

var (
	ErrNotFound           = errors.New("no document stored")
	ErrCorruptDocument    = errors.New("document is corrupt")
	ErrUnsupportedVersion = errors.New("document was written by a newer version")
	ErrBackend            = errors.New("storage backend failure")
)

// Document is the persisted representation of a budget.
type Document struct {
	Version int             `json:"version"`
	State   json.RawMessage `json:"state"`
}

// Encode serializes the state as a document of the current version.
func Encode(s *models.BudgetState) ([]byte, error) {
	state, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding state: %w", err)
	}

	return json.Marshal(Document{Version: CurrentVersion, State: state})
}

// Decode parses a document, migrates it to the current version and
// normalizes it. It returns the version the document was stored with.
func Decode(data []byte, now time.Time) (*models.BudgetState, int, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrCorruptDocument, err)
	}

	if doc.Version < 0 {
		return nil, doc.Version, fmt.Errorf("%w: negative version %d", ErrCorruptDocument, doc.Version)
	}

	if doc.Version > CurrentVersion {
		return nil, doc.Version, fmt.Errorf("%w: version %d, supported up to %d", ErrUnsupportedVersion, doc.Version, CurrentVersion)
	}

	if len(doc.State) == 0 || bytes.Equal(doc.State, []byte("null")) {
		return nil, doc.Version, fmt.Errorf("%w: no state", ErrCorruptDocument)
	}

	var s models.BudgetState
	if err := json.Unmarshal(doc.State, &s); err != nil {
		return nil, doc.Version, fmt.Errorf("%w: %w", ErrCorruptDocument, err)
	}

	Migrate(&s, doc.Version, now)
	Normalize(&s, now)

	return &s, doc.Version, nil
}
