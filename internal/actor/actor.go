package actor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

// JournalFactory opens the next journal segment when the current one is full.
type JournalFactory func(path string, seqNo uint64) (types.Journal, error)

// ComputeActor runs dataset generation and queries one at a time, in arrival
// order, and owns the journal. It is designed to be run in a single goroutine.
type ComputeActor struct {
	ctx            *types.Context
	mailbox        chan any
	done           chan struct{}
	flushAfterN    int
	pending        int
	requestID      uint64
	journalFactory JournalFactory
	streamChan     chan<- types.JournalEntry
	stats          Stats
}

func NewComputeActor(ctx *types.Context, mailboxSize, flushAfterN int, requestID uint64, factory JournalFactory) *ComputeActor {
	return &ComputeActor{
		ctx:            ctx,
		mailbox:        make(chan any, mailboxSize),
		done:           make(chan struct{}),
		flushAfterN:    flushAfterN,
		requestID:      requestID,
		journalFactory: factory,
	}
}

// Init checks that the journal, if any, is usable.
func (a *ComputeActor) Init() error {
	if a.ctx.Journal == nil {
		return nil
	}
	size, err := a.ctx.Journal.Size()
	if err != nil {
		return fmt.Errorf("could not determine journal size: %w", err)
	}
	if logger := a.ctx.Logger(); logger != nil {
		logger.Debug("[Actor] journal ready", "size", size, "last_request_id", a.requestID)
	}
	return nil
}

// SetStreamChannel forwards every recorded entry to ch. The actor closes ch
// when it shuts down.
func (a *ComputeActor) SetStreamChannel(ch chan<- types.JournalEntry) {
	a.streamChan = ch
}

// Receive starts the actor's message processing loop.
// This method is expected to be called in its own goroutine.
func (a *ComputeActor) Receive(ctx context.Context) {
	for {
		select {
		case msg := <-a.mailbox:
			a.handleMessage(msg)
		case <-ctx.Done():
			a.shutdown()
			return
		}
	}
}

func (a *ComputeActor) handleMessage(msg any) {
	switch m := msg.(type) {
	case ComputeMessage:
		m.ResponseChan <- a.handleCompute(m.Fn)
	case RecordMessage:
		m.ResponseChan <- a.handleRecord(m.Entry)
	case FlushMessage:
		m.ResponseChan <- a.flush()
	case StatsMessage:
		s := a.stats
		s.LastRequestID = a.requestID
		m.ResponseChan <- s
	}
}

func (a *ComputeActor) handleCompute(fn func() (any, error)) (resp ComputeResponse) {
	a.stats.Computes++
	start := time.Now()
	defer func() {
		resp.ComputeMs = float64(time.Since(start).Microseconds()) / 1000
		if r := recover(); r != nil {
			resp.Value = nil
			resp.Err = fmt.Errorf("compute panicked: %v", r)
			if logger := a.ctx.Logger(); logger != nil {
				logger.Error("[Actor] compute panicked", "panic", r)
			}
		}
	}()
	resp.Value, resp.Err = fn()
	return resp
}

func (a *ComputeActor) handleRecord(e types.JournalEntry) RecordResponse {
	a.requestID++
	e.RequestID = a.requestID
	a.stats.Recorded++

	var err error
	if a.ctx.Journal != nil {
		err = a.ctx.Journal.Log(e)
		a.pending++
		if a.pending >= a.flushAfterN {
			a.flush()
		}
	}
	if a.streamChan != nil {
		a.streamChan <- e
	}
	return RecordResponse{RequestID: e.RequestID, Err: err}
}

func (a *ComputeActor) flush() error {
	if a.ctx.Journal == nil || a.pending == 0 {
		return nil
	}

	err := a.ctx.Journal.Flush()
	if errors.Is(err, types.ErrJournalFull) {
		err = a.handleJournalFull()
	}
	if err != nil {
		if logger := a.ctx.Logger(); logger != nil {
			logger.Error("[Actor] journal flush failed", "error", err, "dropped", a.pending)
		}
		a.ctx.Journal.Reset()
		a.pending = 0
		return err
	}

	if logger := a.ctx.Logger(); logger != nil {
		logger.Debug(fmt.Sprintf("[Actor] journal flush - %d entries", a.pending))
	}
	a.stats.Flushes++
	a.pending = 0
	return nil
}

// handleJournalFull closes the full segment, opens the next one and moves
// the unflushed entries over.
func (a *ComputeActor) handleJournalFull() error {
	if a.journalFactory == nil || a.ctx.Utils == nil {
		return types.ErrJournalFull
	}
	if logger := a.ctx.Logger(); logger != nil {
		logger.Info("Journal is full. Rotating to the next segment.")
	}

	carry := a.ctx.Journal.Reset()
	if err := a.ctx.Journal.Close(); err != nil {
		if logger := a.ctx.Logger(); logger != nil {
			logger.Warn("Failed to close full journal segment.", "error", err)
		}
	}

	path, seqNo, err := a.ctx.Utils.GenNextJournalPath()
	if err != nil {
		return fmt.Errorf("failed to get next journal path: %w", err)
	}
	next, err := a.journalFactory(path, seqNo)
	if err != nil {
		return fmt.Errorf("failed to open journal %s: %w", path, err)
	}
	a.ctx.Journal = next
	a.stats.Rotations++

	for _, e := range carry {
		if err := next.Log(e); err != nil {
			return err
		}
	}
	// a batch that does not fit an empty segment never will
	return next.Flush()
}

func (a *ComputeActor) shutdown() {
	if logger := a.ctx.Logger(); logger != nil {
		logger.Debug("[Actor] Shutdown")
	}

	// Reject whatever is still queued.
	close(a.done)
drain:
	for {
		select {
		case msg := <-a.mailbox:
			a.reject(msg)
		default:
			break drain
		}
	}

	a.flush()
	if a.ctx.Journal != nil {
		if err := a.ctx.Journal.Close(); err != nil {
			if logger := a.ctx.Logger(); logger != nil {
				logger.Error("[Actor] journal close failed", "error", err)
			}
		}
	}
	if a.streamChan != nil {
		close(a.streamChan)
	}
}

func (a *ComputeActor) reject(msg any) {
	switch m := msg.(type) {
	case ComputeMessage:
		m.ResponseChan <- ComputeResponse{Err: types.ErrShuttingDown}
	case RecordMessage:
		m.ResponseChan <- RecordResponse{Err: types.ErrShuttingDown}
	case FlushMessage:
		m.ResponseChan <- types.ErrShuttingDown
	case StatsMessage:
		m.ResponseChan <- a.stats
	}
}
