package models

import "strings"

// ImportRule assigns imported transactions to an envelope when their
// merchant matches the glob pattern in Match.
type ImportRule struct {
	ID         string `json:"id"`
	Priority   uint   `json:"priority" example:"3"`          // Rules are evaluated in ascending priority
	Match      string `json:"match" example:"*Supermarket*"` // Glob pattern, * is the only wildcard
	EnvelopeID string `json:"envelopeId" example:"groceries"`
}

// Trim removes surrounding whitespace from the string fields.
func (r *ImportRule) Trim() {
	r.Match = strings.TrimSpace(r.Match)
}
