package dataset

import (
	"fmt"
	"time"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/rng"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

const exceptionSeedMix uint32 = 0x0e7710

// ExceptionInventoryCap bounds the inventory that feeds exception rows.
const ExceptionInventoryCap = 20000

// GenerateExceptions derives one exception per inventory row, up to size.
func GenerateExceptions(size int, seed uint32, inventory []types.InventoryRow, now time.Time) []types.ExceptionRow {
	r := rng.New(seed ^ exceptionSeedMix)
	createdAt := ToISO(normalizeNow(now))
	n := min(size, len(inventory))

	rows := make([]types.ExceptionRow, 0, n)
	for i := 0; i < n; i++ {
		inv := inventory[i]
		typ := exceptionType(r, inv)

		status := types.ExceptionDone
		if rng.Chance(r, 0.7) {
			status = types.ExceptionOpen
		} else if rng.Chance(r, 0.7) {
			status = types.ExceptionProcessing
		}

		var assignee *string
		if !rng.Chance(r, 0.6) {
			a := "P" + pad(rng.RandInt(r, 1, 20), 3)
			assignee = &a
		}

		rows = append(rows, types.ExceptionRow{
			ID:        fmt.Sprintf("EX-%d-%d", seed, i+1),
			Type:      typ,
			SKU:       inv.SKU,
			SKUName:   inv.SKUName,
			Bin:       inv.Bin,
			RiskLevel: inv.RiskLevel,
			CreatedAt: createdAt,
			Status:    status,
			Assignee:  assignee,
			Message:   fmt.Sprintf("Exception: %s (source %s/%s/%s)", typ, inv.Warehouse, inv.Zone, inv.Bin),
		})
	}
	return rows
}

// exceptionType only draws from r when the row itself does not decide.
func exceptionType(r *rng.Rng, inv types.InventoryRow) types.ExceptionType {
	switch {
	case inv.Available == 0 && inv.Reserved > 0:
		return types.ExceptionShort
	case inv.FreezeStatus == "FROZEN":
		return types.ExceptionFrozen
	case inv.RiskLevel >= 4:
		return types.ExceptionExpireRisk
	case rng.Chance(r, 0.03):
		return types.ExceptionCountDiff
	case rng.Chance(r, 0.02):
		return types.ExceptionShort
	}
	return types.ExceptionCountDiff
}
