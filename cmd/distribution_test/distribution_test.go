package distributiontest

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/dataset"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/mockapi"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/utils"
)

var reportNow = time.Date(2026, 1, 8, 9, 30, 0, 0, time.UTC)

func newService(t *testing.T) *mockapi.Service {
	svc, err := mockapi.NewService(&types.Context{Utils: &utils.MockUtils{}}, &mockapi.ServiceOptional{
		Sleeper: mockapi.NoopSleeper{},
		Now:     func() time.Time { return reportNow },
	})
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	return svc
}

// within5Sigma bounds an observed rate around p for n trials.
func within5Sigma(t *testing.T, name string, p float64, failures, n int) {
	t.Helper()
	got := float64(failures) / float64(n)
	tol := 5 * math.Sqrt(p*(1-p)/float64(n))
	fmt.Printf("| %-18s | %7d | %6d | %.4f (expected %.4f ± %.4f) |\n", name, n, failures, got, p, tol)
	assert.InDelta(t, p, got, tol, "%s failure rate", name)
}

func TestFailureRateReport(t *testing.T) {
	const n = 20000
	const seed uint32 = 20260108
	svc := newService(t)
	ctx := context.Background()

	fmt.Println("\n--- Failure Rate Report ---")
	fmt.Println("| Operation          |  Trials | Failed | Rate |")
	fmt.Println("|--------------------|---------|--------|------|")

	failures := 0
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("TREE-%d-WH-A-Z01-B%05d", seed, i)
		if _, err := svc.FetchTreeChildren(ctx, seed, id); err != nil {
			require.ErrorIs(t, err, types.ErrLoadChildren)
			failures++
		}
	}
	within5Sigma(t, "fetchTreeChildren", 0.02, failures, n)

	failures = 0
	for i := 0; i < n; i++ {
		res, err := svc.ValidatePicker(ctx, seed, fmt.Sprintf("P%03d", i%120+1), fmt.Sprintf("PL-%d", i))
		require.NoError(t, err)
		if !res.OK {
			failures++
		}
	}
	within5Sigma(t, "validatePicker", 0.05, failures, n)

	failures = 0
	actions := []types.ExceptionActionKind{types.ActionProcess, types.ActionAssign, types.ActionCreateAdjustment}
	for i := 0; i < n; i++ {
		res, err := svc.ExceptionAction(ctx, seed, actions[i%len(actions)], fmt.Sprintf("EX-%05d", i))
		require.NoError(t, err)
		if !res.OK {
			failures++
		}
	}
	within5Sigma(t, "exceptionAction", 0.03, failures, n)

	lines := make([]types.SubmitLine, n)
	for i := range lines {
		lines[i] = types.SubmitLine{LineID: fmt.Sprintf("PL-%d", i)}
	}
	res, err := svc.SubmitPicking(ctx, seed, lines)
	require.NoError(t, err)
	failures = 0
	for _, r := range res.Results {
		if !r.OK {
			failures++
		}
	}
	within5Sigma(t, "submitPicking/line", 0.08, failures, n)
	fmt.Println("-------------------------------------------------")
}

func TestRiskLevelReport(t *testing.T) {
	rows := dataset.GenerateInventory(100000, 20260108, 30, reportNow)
	counts := make(map[int]int)
	for _, r := range rows {
		counts[r.RiskLevel]++
		require.Equal(t, max(0, r.OnHand-r.Reserved-r.Damaged-r.Frozen), r.Available, "row %s", r.ID)
	}

	fmt.Println("\n--- Risk Level Report (100k rows) ---")
	fmt.Println("| Level |  Count  | Proportion |")
	fmt.Println("|-------|---------|------------|")
	for level := 1; level <= 5; level++ {
		fmt.Printf("| %5d | %7d |   %.4f   |\n", level, counts[level], float64(counts[level])/float64(len(rows)))
		assert.Positive(t, counts[level], "risk level %d never generated", level)
	}
	fmt.Println("-------------------------------------")
}
