package actor

import "github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"

// ComputeMessage asks the actor to run Fn on its goroutine.
type ComputeMessage struct {
	Fn           func() (any, error)
	ResponseChan chan ComputeResponse
}

// ComputeResponse carries the result and how long Fn ran.
type ComputeResponse struct {
	Value     any
	ComputeMs float64
	Err       error
}

// RecordMessage appends a journal entry; the actor assigns its request id.
type RecordMessage struct {
	Entry        types.JournalEntry
	ResponseChan chan RecordResponse
}

type RecordResponse struct {
	RequestID uint64
	Err       error
}

// FlushMessage is sent to the actor to manually trigger a journal flush.
type FlushMessage struct {
	ResponseChan chan error
}

// StatsMessage is sent to the actor to read its counters.
type StatsMessage struct {
	ResponseChan chan Stats
}

// Stats counts what the actor has done since start.
type Stats struct {
	Computes      uint64
	Recorded      uint64
	Flushes       uint64
	Rotations     uint64
	LastRequestID uint64
}
