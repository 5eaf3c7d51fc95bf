package stream

import "github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"

// ChanStreamer hands entries to a channel and drops them when the reader
// falls behind.
type ChanStreamer struct {
	ch chan types.JournalEntry
}

func NewChanStreamer(size int) *ChanStreamer {
	return &ChanStreamer{ch: make(chan types.JournalEntry, size)}
}

func (s *ChanStreamer) Stream(e types.JournalEntry) {
	select {
	case s.ch <- e:
	default:
	}
}

func (s *ChanStreamer) C() <-chan types.JournalEntry {
	return s.ch
}
