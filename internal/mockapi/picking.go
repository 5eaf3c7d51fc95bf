package mockapi

import (
	"context"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/rng"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

// MaxPickerResults caps a picker search.
const MaxPickerResults = 20

const (
	msgPickerInvalid = "picker is invalid or unavailable"
	msgSubmitFailed  = "submit failed: resource conflict"
)

// SearchPickers matches q against picker name or id, case-insensitively.
// A blank q lists the first pickers.
func (s *Service) SearchPickers(ctx context.Context, seed uint32, q string) ([]types.Picker, error) {
	start := time.Now()
	if err := s.sleepMs(ctx, 120+s.jitter()*180); err != nil {
		return nil, err
	}

	all := s.gen.Pickers(seed)
	needle := strings.ToLower(strings.TrimSpace(q))
	matched := all
	if needle != "" {
		matched = lo.Filter(all, func(p types.Picker, _ int) bool {
			return strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.ID), needle)
		})
	}
	out := make([]types.Picker, min(len(matched), MaxPickerResults))
	copy(out, matched)

	s.record(ctx, types.JournalEntry{
		Endpoint:  types.EndpointSearchPickers,
		Seed:      seed,
		Key:       q,
		OK:        true,
		RequestMs: sinceMs(start),
		Rows:      len(out),
		Total:     len(matched),
	})
	return out, nil
}

// ValidatePicker checks a picker assignment on one line. The outcome is a
// function of (seed, pickerID, lineID).
func (s *Service) ValidatePicker(ctx context.Context, seed uint32, pickerID, lineID string) (types.ActionResult, error) {
	start := time.Now()
	r := rng.Derive(seed, pickerID+lineID)
	if err := s.sleepMs(ctx, 150+r.Float64()*450); err != nil {
		return types.ActionResult{}, err
	}

	res := types.ActionResult{OK: true}
	if rng.Chance(r, pickerFailureRate) {
		res = types.ActionResult{OK: false, Message: msgPickerInvalid}
	}
	s.record(ctx, types.JournalEntry{
		Endpoint:  types.EndpointValidatePicker,
		Seed:      seed,
		Key:       pickerID + "/" + lineID,
		OK:        res.OK,
		Message:   res.Message,
		RequestMs: sinceMs(start),
	})
	return res, nil
}

// SubmitPicking submits ready lines. Each line fails independently; the
// per-line outcomes depend only on the seed and the line order.
func (s *Service) SubmitPicking(ctx context.Context, seed uint32, lines []types.SubmitLine) (types.SubmitResult, error) {
	start := time.Now()
	if err := s.sleepMs(ctx, 220+s.jitter()*600); err != nil {
		return types.SubmitResult{}, err
	}

	r := rng.New(seed ^ submitSeedMix)
	results := lo.Map(lines, func(l types.SubmitLine, _ int) types.SubmitLineResult {
		if rng.Chance(r, submitFailureRate) {
			return types.SubmitLineResult{LineID: l.LineID, OK: false, Message: msgSubmitFailed}
		}
		return types.SubmitLineResult{LineID: l.LineID, OK: true}
	})
	requestMs := sinceMs(start)

	failed := lo.CountBy(results, func(r types.SubmitLineResult) bool { return !r.OK })
	s.record(ctx, types.JournalEntry{
		Endpoint:  types.EndpointSubmitPicking,
		Seed:      seed,
		OK:        failed == 0,
		RequestMs: requestMs,
		Rows:      len(results) - failed,
		Total:     len(results),
	})
	return types.SubmitResult{Results: results, RequestMs: requestMs}, nil
}
