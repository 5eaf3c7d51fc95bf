// Package mockapi is the mock backend: every operation a benchmark page
// calls, with simulated latency and reproducible failures.
package mockapi

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/actor"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/cache"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/columns"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/dataset"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

// Seed mixes for operations that do not derive their generator from a key.
const submitSeedMix uint32 = 0x515041

// Failure rates.
const (
	treeFailureRate     = 0.02
	pickerFailureRate   = 0.05
	submitFailureRate   = 0.08
	exceptionActionRate = 0.03
)

type treeKey struct {
	seed     uint32
	parentID string
}

type ServiceOptional struct {
	// System runs compute and journals calls. When nil the service starts
	// its own, without a journal, and stops it on Close.
	System *actor.System
	// Sleeper defaults to RealSleeper.
	Sleeper Sleeper
	// Jitter is the latency noise source in [0,1).
	Jitter func() float64
	Now    func() time.Time
	RunID  string
}

type Service struct {
	ctx        *types.Context
	sys        *actor.System
	ownsSystem bool
	gen        *dataset.Generator
	sleeper    Sleeper
	jitter     func() float64
	now        func() time.Time
	runID      string
	tree       *cache.Memo[treeKey, []types.TreeNode]
}

func NewService(ctx *types.Context, opt *ServiceOptional) (*Service, error) {
	if opt == nil {
		opt = &ServiceOptional{}
	}
	if ctx == nil {
		ctx = &types.Context{}
	}
	s := &Service{
		ctx:     ctx,
		sys:     opt.System,
		sleeper: opt.Sleeper,
		jitter:  opt.Jitter,
		now:     opt.Now,
		runID:   opt.RunID,
		tree:    cache.NewMemo[treeKey, []types.TreeNode](),
	}
	if s.sleeper == nil {
		s.sleeper = RealSleeper{}
	}
	if s.jitter == nil {
		s.jitter = defaultJitter
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.runID == "" {
		s.runID = uuid.NewString()
	}
	if s.sys == nil {
		sys, err := actor.NewSystem(&types.Context{Utils: ctx.Utils}, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to start compute actor: %w", err)
		}
		s.sys = sys
		s.ownsSystem = true
	}
	s.gen = dataset.NewGenerator(dataset.GeneratorOptional{Now: s.now})
	return s, nil
}

func (s *Service) RunID() string {
	return s.runID
}

// Close stops the compute actor if the service started it.
func (s *Service) Close() {
	if s.ownsSystem {
		s.sys.Stop()
	}
}

// Clear drops every memoized dataset and expanded tree node.
func (s *Service) Clear() {
	s.gen.Clear()
	s.tree.Clear()
}

// InventoryColumns describes the grid for a column size.
func (s *Service) InventoryColumns(columnSize int) ([]columns.Column, error) {
	return columns.InventoryColumns(columnSize)
}

func (s *Service) logger() *slog.Logger {
	return s.ctx.Logger()
}

func (s *Service) sleepMs(ctx context.Context, ms float64) error {
	return s.sleeper.Sleep(ctx, msDuration(ms))
}

// record journals a finished call. It outlives the caller's context so a
// cancelled client does not lose entries for work already done.
func (s *Service) record(ctx context.Context, e types.JournalEntry) {
	e.RunID = s.runID
	if _, err := s.sys.Record(context.WithoutCancel(ctx), e); err != nil {
		if logger := s.logger(); logger != nil {
			logger.Warn("failed to journal mock call", "endpoint", e.Endpoint, "error", err)
		}
	}
}
