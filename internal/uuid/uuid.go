// Package uuid generates the identifiers used for budget resources.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// New returns a new random identifier.
func New() string {
	return google_uuid.NewString()
}
