package dataset

import (
	"github.com/samber/lo"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

// BuildPickLines turns inventory rows into clean, unassigned pick lines.
func BuildPickLines(rows []types.InventoryRow) []types.PickLine {
	return lo.Map(rows, func(r types.InventoryRow, _ int) types.PickLine {
		return types.PickLine{
			LineID:    "PL-" + r.ID,
			SourceID:  r.ID,
			SKU:       r.SKU,
			SKUName:   r.SKUName,
			Batch:     r.Batch,
			Bin:       r.Bin,
			Available: r.Available,
			Strategy:  types.StrategyFIFO,
			RowStatus: types.LineClean,
			Errors:    []types.PickLineError{},
		}
	})
}

// ValidatePickLine fills line.Errors and moves the line to ready or error.
// Submitted lines are left alone.
func ValidatePickLine(line *types.PickLine) bool {
	if line.RowStatus == types.LineSubmitted {
		return true
	}
	errs := []types.PickLineError{}
	switch {
	case line.PickQty == nil:
		errs = append(errs, types.PickLineError{Field: "pickQty", Message: "pick quantity is required"})
	case *line.PickQty <= 0:
		errs = append(errs, types.PickLineError{Field: "pickQty", Message: "pick quantity must be greater than 0"})
	case *line.PickQty > line.Available:
		errs = append(errs, types.PickLineError{Field: "pickQty", Message: "pick quantity exceeds available"})
	}
	if line.PickerID == nil || *line.PickerID == "" {
		errs = append(errs, types.PickLineError{Field: "pickerId", Message: "picker is required"})
	}
	line.Errors = errs
	if len(errs) > 0 {
		line.RowStatus = types.LineError
		return false
	}
	line.RowStatus = types.LineReady
	return true
}

// ReadyLines returns the submit payload for lines that passed validation.
func ReadyLines(lines []types.PickLine) []types.SubmitLine {
	ready := lo.Filter(lines, func(l types.PickLine, _ int) bool { return l.RowStatus == types.LineReady })
	return lo.Map(ready, func(l types.PickLine, _ int) types.SubmitLine { return types.SubmitLine{LineID: l.LineID} })
}
