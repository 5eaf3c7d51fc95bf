package utils

import (
	"log/slog"
	"sync"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

// MockJournal keeps entries in memory.
type MockJournal struct {
	mu      sync.Mutex
	pending []types.JournalEntry
	Flushed []types.JournalEntry
	Closed  bool
}

var _ types.Journal = (*MockJournal)(nil)

func (m *MockJournal) Log(entry types.JournalEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, entry)
	return nil
}

func (m *MockJournal) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Flushed = append(m.Flushed, m.pending...)
	m.pending = nil
	return nil
}

func (m *MockJournal) Close() error {
	if err := m.Flush(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

func (m *MockJournal) Size() (int64, error) { return 0, nil }

func (m *MockJournal) Reset() []types.JournalEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	dropped := m.pending
	m.pending = nil
	return dropped
}

// Entries returns everything flushed so far.
func (m *MockJournal) Entries() []types.JournalEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]types.JournalEntry(nil), m.Flushed...)
}

// MockUtils is a mock implementation of the types.Utils interface for testing.
type MockUtils struct{}

var _ types.Utils = (*MockUtils)(nil)

func (m *MockUtils) GetLogger() *slog.Logger {
	return nil // No logging in tests
}

func (m *MockUtils) GenNextJournalPath() (string, uint64, error) {
	return "", 0, nil
}
