package persistence

import (
	"context"
	"sync"

	"golang.org/x/exp/slices"
)

// Memory keeps the document in memory. The zero value is an empty backend.
type Memory struct {
	mu     sync.Mutex
	data   []byte
	writes int
}

func (m *Memory) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		return nil, ErrNotFound
	}
	return slices.Clone(m.data), nil
}

func (m *Memory) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = slices.Clone(data)
	m.writes++
	return nil
}

// Writes returns how often the document has been written.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
