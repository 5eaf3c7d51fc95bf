package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/dataset"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/mockapi"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/perf"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

const helpText = `/inventory [page]          one page of inventory
/exceptions [page]         one page of exceptions
/roots                     warehouse tree roots
/expand <id>               children of a tree node
/pickers [query]           search pickers
/validate <picker> <line>  validate a picker on a line
/submit <n>                fill and submit the first n pick lines
/action <kind> <id>        process | assign | create-adjustment
/timeline <id>             exception timeline
/perf                      per-endpoint timings of this session`

// resultMsg carries the rendered output of a finished service call.
type resultMsg struct {
	command string
	lines   []string
	err     error
}

// Backend is the part of mockapi.Service the console drives.
type Backend interface {
	FetchInventory(ctx context.Context, p mockapi.InventoryParams) (mockapi.InventoryPage, error)
	FetchExceptions(ctx context.Context, p mockapi.ExceptionParams) (mockapi.ExceptionPage, error)
	FetchPickLines(ctx context.Context, p mockapi.InventoryParams) (mockapi.Page[types.PickLine], error)
	FetchTreeRoots(ctx context.Context, seed uint32) ([]types.TreeNode, error)
	FetchTreeChildren(ctx context.Context, seed uint32, parentID string) ([]types.TreeNode, error)
	SearchPickers(ctx context.Context, seed uint32, q string) ([]types.Picker, error)
	ValidatePicker(ctx context.Context, seed uint32, pickerID, lineID string) (types.ActionResult, error)
	SubmitPicking(ctx context.Context, seed uint32, lines []types.SubmitLine) (types.SubmitResult, error)
	ExceptionAction(ctx context.Context, seed uint32, action types.ExceptionActionKind, id string) (types.ActionResult, error)
	FetchExceptionTimeline(ctx context.Context, seed uint32, id string) ([]types.TimelineEntry, error)
}

var _ Backend = (*mockapi.Service)(nil)

// Session is the dataset the console browses.
type Session struct {
	Seed       uint32
	Size       int
	ColumnSize int
	Mode       types.DataMode
	PageSize   int
}

func (s Session) params(page int) mockapi.DatasetParams {
	return mockapi.DatasetParams{
		Query:      types.Query{Page: page, PageSize: s.PageSize},
		Seed:       s.Seed,
		Size:       s.Size,
		ColumnSize: s.ColumnSize,
		Mode:       s.Mode,
	}
}

// dispatch maps an input line to the command that runs it. ok is false for
// unknown commands.
func dispatch(b Backend, s Session, command string, args []string) (bubbletea.Cmd, bool) {
	run := func(fn func(ctx context.Context) ([]string, error)) bubbletea.Cmd {
		return func() bubbletea.Msg {
			lines, err := fn(context.Background())
			return resultMsg{command: command, lines: lines, err: err}
		}
	}
	arg := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}
	pageArg := func() int {
		if n, err := strconv.Atoi(arg(0)); err == nil && n > 0 {
			return n
		}
		return 1
	}

	switch command {
	case "/inventory":
		page := pageArg()
		return run(func(ctx context.Context) ([]string, error) {
			res, err := b.FetchInventory(ctx, s.params(page))
			if err != nil {
				return nil, err
			}
			out := []string{pageSummary(page, len(res.Rows), res.Total, res.RequestMs, res.ComputeMs)}
			for _, r := range res.Rows {
				out = append(out, fmt.Sprintf("%-10s %-6s %-4s %-12s %-8s %-10s avail=%-5d risk=%d exp=%s",
					r.ID, r.Warehouse, r.Zone, r.Bin, r.SKU, r.Batch, r.Available, r.RiskLevel, r.ExpireAt[:10]))
			}
			return out, nil
		}), true
	case "/exceptions":
		page := pageArg()
		return run(func(ctx context.Context) ([]string, error) {
			res, err := b.FetchExceptions(ctx, s.params(page))
			if err != nil {
				return nil, err
			}
			out := []string{pageSummary(page, len(res.Rows), res.Total, res.RequestMs, res.ComputeMs)}
			for _, r := range res.Rows {
				out = append(out, fmt.Sprintf("%-9s %-11s %-10s risk=%d %s", r.ID, r.Type, r.Status, r.RiskLevel, r.Message))
			}
			return out, nil
		}), true
	case "/roots":
		return run(func(ctx context.Context) ([]string, error) {
			nodes, err := b.FetchTreeRoots(ctx, s.Seed)
			return renderNodes(nodes), err
		}), true
	case "/expand":
		id := arg(0)
		if id == "" {
			return nil, false
		}
		return run(func(ctx context.Context) ([]string, error) {
			nodes, err := b.FetchTreeChildren(ctx, s.Seed, id)
			return renderNodes(nodes), err
		}), true
	case "/pickers":
		q := strings.Join(args, " ")
		return run(func(ctx context.Context) ([]string, error) {
			pickers, err := b.SearchPickers(ctx, s.Seed, q)
			return lo.Map(pickers, func(p types.Picker, _ int) string { return p.ID + "  " + p.Name }), err
		}), true
	case "/validate":
		picker, line := arg(0), arg(1)
		if picker == "" || line == "" {
			return nil, false
		}
		return run(func(ctx context.Context) ([]string, error) {
			res, err := b.ValidatePicker(ctx, s.Seed, picker, line)
			return []string{renderResult(res)}, err
		}), true
	case "/submit":
		n, err := strconv.Atoi(arg(0))
		if err != nil || n <= 0 {
			return nil, false
		}
		return run(func(ctx context.Context) ([]string, error) {
			return submitFirst(ctx, b, s, n)
		}), true
	case "/action":
		kind, id := types.ExceptionActionKind(arg(0)), arg(1)
		if id == "" {
			return nil, false
		}
		return run(func(ctx context.Context) ([]string, error) {
			res, err := b.ExceptionAction(ctx, s.Seed, kind, id)
			return []string{renderResult(res)}, err
		}), true
	case "/timeline":
		id := arg(0)
		if id == "" {
			return nil, false
		}
		return run(func(ctx context.Context) ([]string, error) {
			entries, err := b.FetchExceptionTimeline(ctx, s.Seed, id)
			return lo.Map(entries, func(e types.TimelineEntry, _ int) string { return e.At + "  " + e.Text }), err
		}), true
	}
	return nil, false
}

// submitFirst fills the first n pick lines with a picker and half their
// available quantity, then submits the ones that validate.
func submitFirst(ctx context.Context, b Backend, s Session, n int) ([]string, error) {
	page, err := b.FetchPickLines(ctx, s.params(1))
	if err != nil {
		return nil, err
	}
	pickers, err := b.SearchPickers(ctx, s.Seed, "")
	if err != nil {
		return nil, err
	}
	lines := page.Rows[:min(n, len(page.Rows))]
	for i := range lines {
		qty := lines[i].Available / 2
		lines[i].PickQty = &qty
		if len(pickers) > 0 {
			p := pickers[i%len(pickers)]
			lines[i].PickerID, lines[i].PickerName = &p.ID, &p.Name
		}
		dataset.ValidatePickLine(&lines[i])
	}

	out := []string{}
	for _, l := range lines {
		if l.RowStatus == types.LineError {
			out = append(out, fmt.Sprintf("%s  invalid: %s", l.LineID, l.Errors[0].Message))
		}
	}
	ready := dataset.ReadyLines(lines)
	res, err := b.SubmitPicking(ctx, s.Seed, ready)
	if err != nil {
		return nil, err
	}
	for _, r := range res.Results {
		if r.OK {
			out = append(out, r.LineID+"  submitted")
		} else {
			out = append(out, r.LineID+"  "+r.Message)
		}
	}
	out = append(out, fmt.Sprintf("submitted %d lines in %.1f ms", len(ready), res.RequestMs))
	return out, nil
}

func pageSummary(page, rows, total int, requestMs, computeMs float64) string {
	return fmt.Sprintf("page %d: %d of %d rows  request=%.1fms compute=%.2fms", page, rows, total, requestMs, computeMs)
}

func renderNodes(nodes []types.TreeNode) []string {
	return lo.Map(nodes, func(n types.TreeNode, _ int) string {
		line := strings.Repeat("  ", n.Level) + n.ID
		if n.AvailableSum != nil {
			line += fmt.Sprintf("  available=%d", *n.AvailableSum)
		}
		if n.ExpireAtMin != "" {
			line += "  expires=" + n.ExpireAtMin[:10]
		}
		return line
	})
}

func renderResult(res types.ActionResult) string {
	if res.OK {
		return "ok"
	}
	return "failed: " + res.Message
}

func renderPerf(entries []types.JournalEntry) []string {
	stats := perf.Summarize(entries)
	out := make([]string, 0, len(stats)+1)
	for _, s := range append(stats, perf.Total(stats)) {
		out = append(out, fmt.Sprintf("%-24s calls=%-5d fail=%5.1f%%  req avg=%7.1fms max=%7.1fms  cpu avg=%6.2fms",
			s.Endpoint, s.Count, s.FailureRate()*100, s.AvgRequestMs, s.MaxRequestMs, s.AvgComputeMs))
	}
	return out
}
