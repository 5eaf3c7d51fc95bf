// Package stream forwards recorded journal entries to live observers.
package stream

import "github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"

// EntryStreamer receives every journal entry after it is recorded.
type EntryStreamer interface {
	// Stream should not block the caller for long.
	Stream(entry types.JournalEntry)
}

// NoOpStreamer is used when streaming is disabled.
type NoOpStreamer struct{}

func NewNoOpStreamer() *NoOpStreamer {
	return &NoOpStreamer{}
}

func (s *NoOpStreamer) Stream(types.JournalEntry) {}
