package actor

import (
	"context"
	"fmt"
	"sync"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/stream"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

// System manages the lifecycle of the actors and provides a client-facing API.
type System struct {
	computeActor   *ComputeActor
	streamingActor *StreamingActor
	cancel         context.CancelFunc
	wg             sync.WaitGroup
	stopOnce       sync.Once
}

// SystemOptional provides optional parameters for creating a new System.
type SystemOptional struct {
	FlushAfterN       int
	RequestBufferSize int
	LastRequestID     uint64
	Streamer          stream.EntryStreamer
	JournalFactory    JournalFactory
}

// NewSystem creates, starts, and returns a new actor system. ctx.Journal may
// be nil, in which case calls are counted but not written anywhere.
func NewSystem(ctx *types.Context, opt *SystemOptional) (*System, error) {
	flushN := 10
	if opt != nil && opt.FlushAfterN > 0 {
		flushN = opt.FlushAfterN
	}
	bufSize := 100
	if opt != nil && opt.RequestBufferSize > 0 {
		bufSize = opt.RequestBufferSize
	}
	var lastRequestID uint64
	var factory JournalFactory
	if opt != nil {
		lastRequestID = opt.LastRequestID
		factory = opt.JournalFactory
	}

	computeActor := NewComputeActor(ctx, bufSize, flushN, lastRequestID, factory)
	if err := computeActor.Init(); err != nil {
		if ctx.Journal != nil {
			ctx.Journal.Close()
		}
		return nil, fmt.Errorf("actor initialization failed: %w", err)
	}

	var streamingActor *StreamingActor
	if opt != nil && opt.Streamer != nil {
		streamingActor = NewStreamingActor(opt.Streamer, bufSize)
		computeActor.SetStreamChannel(streamingActor.mailbox)
	}

	actorCtx, cancel := context.WithCancel(context.Background())
	sys := &System{
		computeActor:   computeActor,
		streamingActor: streamingActor,
		cancel:         cancel,
	}

	sys.wg.Add(1)
	go func() {
		defer sys.wg.Done()
		sys.computeActor.Receive(actorCtx)
	}()
	if streamingActor != nil {
		sys.wg.Add(1)
		go func() {
			defer sys.wg.Done()
			sys.streamingActor.Receive()
		}()
	}

	return sys, nil
}

func (s *System) send(ctx context.Context, msg any) error {
	select {
	case s.computeActor.mailbox <- msg:
		return nil
	case <-s.computeActor.done:
		return types.ErrShuttingDown
	case <-ctx.Done():
		return ctx.Err()
	}
}

// await waits for a reply. A reply that is already there wins over shutdown.
func await[T any](ctx context.Context, s *System, ch chan T, onShutdown T) (T, error) {
	select {
	case v := <-ch:
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case <-s.computeActor.done:
		select {
		case v := <-ch:
			return v, nil
		default:
			return onShutdown, types.ErrShuttingDown
		}
	}
}

// Compute runs fn on the compute actor and reports how long it ran.
func (s *System) Compute(ctx context.Context, fn func() (any, error)) (ComputeResponse, error) {
	respChan := make(chan ComputeResponse, 1)
	if err := s.send(ctx, ComputeMessage{Fn: fn, ResponseChan: respChan}); err != nil {
		return ComputeResponse{Err: err}, err
	}
	resp, err := await(ctx, s, respChan, ComputeResponse{Err: types.ErrShuttingDown})
	if err != nil {
		return ComputeResponse{Err: err}, err
	}
	return resp, resp.Err
}

// Compute is the typed form of (*System).Compute.
func Compute[T any](ctx context.Context, s *System, fn func() (T, error)) (T, float64, error) {
	resp, err := s.Compute(ctx, func() (any, error) { return fn() })
	if err != nil {
		var zero T
		return zero, resp.ComputeMs, err
	}
	v, _ := resp.Value.(T)
	return v, resp.ComputeMs, nil
}

// Record journals one call and returns the request id it was given.
func (s *System) Record(ctx context.Context, e types.JournalEntry) (uint64, error) {
	respChan := make(chan RecordResponse, 1)
	if err := s.send(ctx, RecordMessage{Entry: e, ResponseChan: respChan}); err != nil {
		return 0, err
	}
	resp, err := await(ctx, s, respChan, RecordResponse{})
	if err != nil {
		return 0, err
	}
	return resp.RequestID, resp.Err
}

// Flush manually triggers a journal flush.
func (s *System) Flush() error {
	respChan := make(chan error, 1)
	ctx := context.Background()
	if err := s.send(ctx, FlushMessage{ResponseChan: respChan}); err != nil {
		return err
	}
	err, werr := await[error](ctx, s, respChan, types.ErrShuttingDown)
	if werr != nil {
		return werr
	}
	return err
}

func (s *System) Stats() Stats {
	respChan := make(chan Stats, 1)
	ctx := context.Background()
	if err := s.send(ctx, StatsMessage{ResponseChan: respChan}); err != nil {
		return Stats{}
	}
	st, _ := await(ctx, s, respChan, Stats{})
	return st
}

// Stop gracefully shuts down the actor system. Pending entries are flushed
// and the journal is closed.
func (s *System) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		s.wg.Wait()
	})
}
