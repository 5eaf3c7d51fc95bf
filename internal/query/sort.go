package query

import (
	"slices"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

// ApplySort returns a stably sorted copy of rows. Rules are applied in
// order; the first nonzero comparison wins. The input is never mutated.
func ApplySort[T Record](rows []T, rules []types.SortRule) []T {
	if len(rules) == 0 {
		return rows
	}
	col := NewCollator()
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b T) int {
		for _, rule := range rules {
			d := CompareValues(col, a.Field(rule.Field), b.Field(rule.Field))
			if d == 0 {
				continue
			}
			if rule.Order == types.SortDesc {
				return -d
			}
			return d
		}
		return 0
	})
	return sorted
}
