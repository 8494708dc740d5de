package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/envelope-zero/questbook/pkg/models"
)

// Backend stores a single document.
type Backend interface {
	// Read returns the stored document or ErrNotFound.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the stored document.
	Write(ctx context.Context, data []byte) error
}

// Load reads and decodes the document stored in b.
func Load(ctx context.Context, b Backend, now time.Time) (*models.BudgetState, int, error) {
	data, err := b.Read(ctx)
	if err != nil {
		return nil, 0, err
	}

	if len(data) == 0 {
		return nil, 0, ErrNotFound
	}

	return Decode(data, now)
}

// Save encodes s and writes it to b.
func Save(ctx context.Context, b Backend, s *models.BudgetState) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}

	if err := b.Write(ctx, data); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}
