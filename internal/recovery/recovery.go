// Package recovery reads back the journal segments a previous run left
// behind.
package recovery

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/journal"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

// JournalLister lists journal segments in sequence order.
type JournalLister interface {
	GetJournalFiles() ([]string, error)
}

// State is everything recovered from a journal directory.
type State struct {
	Entries       []types.JournalEntry
	LastRequestID uint64
	LastPath      string
	Segments      int
	// OpenSegments counts segments that were never closed, i.e. the run
	// that wrote them did not stop cleanly.
	OpenSegments int
}

// RecoverJournal parses every segment so a new run can continue request ids
// where the last one stopped.
func RecoverJournal(lister JournalLister, format types.LogFormatter) (State, error) {
	var st State

	files, err := lister.GetJournalFiles()
	if err != nil {
		return st, fmt.Errorf("failed to get journal files: %w", err)
	}

	for _, path := range files {
		entries, hdr, err := journal.Parse(path, format)
		if err != nil {
			return st, fmt.Errorf("error parsing journal file %s: %w", path, err)
		}
		if hdr.Status != types.JournalStatusClosed {
			st.OpenSegments++
		}
		for _, e := range entries {
			st.LastRequestID = max(st.LastRequestID, e.RequestID)
		}
		st.Entries = append(st.Entries, entries...)
	}

	st.Segments = len(files)
	if len(files) > 0 {
		st.LastPath = files[len(files)-1]
	}
	return st, nil
}

// ByRun keeps the entries of one run.
func (s State) ByRun(runID string) []types.JournalEntry {
	return lo.Filter(s.Entries, func(e types.JournalEntry, _ int) bool { return e.RunID == runID })
}
