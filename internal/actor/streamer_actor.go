package actor

import (
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/stream"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

// StreamingActor hands recorded entries to an EntryStreamer off the compute
// goroutine, so a slow observer never delays a query.
type StreamingActor struct {
	streamer stream.EntryStreamer
	mailbox  chan types.JournalEntry
}

func NewStreamingActor(streamer stream.EntryStreamer, mailboxSize int) *StreamingActor {
	return &StreamingActor{
		streamer: streamer,
		mailbox:  make(chan types.JournalEntry, mailboxSize),
	}
}

// Receive runs until the compute actor closes the mailbox.
func (a *StreamingActor) Receive() {
	for e := range a.mailbox {
		a.streamer.Stream(e)
	}
}
