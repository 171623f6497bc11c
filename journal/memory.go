package journal

import (
	"context"
	"sync"

	"github.com/tarantool/go-txflow/txn"
)

// Memory is an in-memory journal. Entries do not survive the process.
type Memory struct {
	mu      sync.Mutex
	entries map[txn.Handle]Entry
}

var _ Journal = &Memory{} //nolint:exhaustruct

// NewMemory returns an empty in-memory journal.
func NewMemory() *Memory {
	return &Memory{
		mu:      sync.Mutex{},
		entries: make(map[txn.Handle]Entry),
	}
}

// Record implements Journal.
func (m *Memory) Record(ctx context.Context, entry Entry) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[entry.Handle] = entry

	return nil
}

// Retire implements Journal.
func (m *Memory) Retire(ctx context.Context, handle txn.Handle) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, handle)

	return nil
}

// Pending implements Journal.
func (m *Memory) Pending(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	m.mu.Lock()
	entries := make([]Entry, 0, len(m.entries))

	for _, entry := range m.entries {
		entries = append(entries, entry)
	}
	m.mu.Unlock()

	SortEntries(entries)

	return entries, nil
}
