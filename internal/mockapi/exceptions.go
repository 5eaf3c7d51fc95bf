package mockapi

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/dataset"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/rng"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

const msgActionFailed = "action failed: please retry"

// ExceptionAction applies action to exception id. Unknown actions are a
// caller error; a simulated failure comes back as OK=false.
func (s *Service) ExceptionAction(ctx context.Context, seed uint32, action types.ExceptionActionKind, id string) (types.ActionResult, error) {
	if !action.Valid() {
		return types.ActionResult{}, fmt.Errorf("%w: %q", types.ErrUnknownAction, action)
	}

	start := time.Now()
	r := rng.Derive(seed, string(action)+id)
	if err := s.sleepMs(ctx, 120+r.Float64()*380); err != nil {
		return types.ActionResult{}, err
	}

	res := types.ActionResult{OK: true}
	if rng.Chance(r, exceptionActionRate) {
		res = types.ActionResult{OK: false, Message: msgActionFailed}
	}
	s.record(ctx, types.JournalEntry{
		Endpoint:  types.EndpointExceptionOp,
		Seed:      seed,
		Key:       string(action) + "/" + id,
		OK:        res.OK,
		Message:   res.Message,
		RequestMs: sinceMs(start),
	})
	return res, nil
}

// FetchExceptionTimeline lists 3 to 8 operation records, newest first, one
// hour apart.
func (s *Service) FetchExceptionTimeline(ctx context.Context, seed uint32, id string) ([]types.TimelineEntry, error) {
	start := time.Now()
	r := rng.Derive(seed, "timeline"+id)
	if err := s.sleepMs(ctx, 100+r.Float64()*260); err != nil {
		return nil, err
	}

	n := 3 + int(math.Floor(r.Float64()*6))
	now := s.now()
	out := make([]types.TimelineEntry, n)
	for i := range out {
		out[i] = types.TimelineEntry{
			At:   dataset.ToISO(now.Add(-time.Duration(i) * time.Hour)),
			Text: "Operation record " + strconv.Itoa(i+1),
		}
	}

	s.record(ctx, types.JournalEntry{
		Endpoint:  types.EndpointTimeline,
		Seed:      seed,
		Key:       id,
		OK:        true,
		RequestMs: sinceMs(start),
		Rows:      n,
		Total:     n,
	})
	return out, nil
}
