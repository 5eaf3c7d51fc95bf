package query

import (
	"strings"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

// ApplyFilters keeps the rows matching every rule. With no rules the input
// slice is returned as is.
func ApplyFilters[T Record](rows []T, filters []types.FilterRule) []T {
	if len(filters) == 0 {
		return rows
	}
	preds := make([]func(any) bool, 0, len(filters))
	fields := make([]string, 0, len(filters))
	for _, f := range filters {
		if p := compileFilter(f); p != nil {
			preds = append(preds, p)
			fields = append(fields, f.Field)
		}
	}
	if len(preds) == 0 {
		return rows
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		keep := true
		for i, p := range preds {
			if !p(row.Field(fields[i])) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, row)
		}
	}
	return out
}

// MatchAll reports whether a single row passes every rule.
func MatchAll(row Record, filters []types.FilterRule) bool {
	for _, f := range filters {
		if p := compileFilter(f); p != nil && !p(row.Field(f.Field)) {
			return false
		}
	}
	return true
}

// compileFilter returns nil for rules that cannot reject anything: blank
// text, empty sets, unknown operators.
func compileFilter(f types.FilterRule) func(any) bool {
	switch f.Op {
	case types.OpTextContains:
		q := ""
		if f.Value != nil {
			q = strings.TrimSpace(stringify(f.Value))
		}
		if q == "" {
			return nil
		}
		q = strings.ToLower(q)
		return func(v any) bool {
			return strings.Contains(strings.ToLower(stringify(v)), q)
		}

	case types.OpEnumIn:
		list, ok := toList(f.Value)
		if !ok || len(list) == 0 {
			return nil
		}
		set := make(map[any]struct{}, len(list))
		for _, item := range list {
			set[enumKey(item)] = struct{}{}
		}
		return func(v any) bool {
			_, hit := set[enumKey(v)]
			return hit
		}

	case types.OpNumberRange:
		lower, upper := bounds(f.Value)
		if lower == nil && upper == nil {
			return nil
		}
		var lo, hi float64
		if lower != nil {
			lo = toNumber(lower)
		}
		if upper != nil {
			hi = toNumber(upper)
		}
		return func(v any) bool {
			num := toNumber(v)
			if lower != nil && !(num >= lo) {
				return false
			}
			if upper != nil && !(num <= hi) {
				return false
			}
			return true
		}

	case types.OpDateRange:
		start, end := bounds(f.Value)
		start, end = blankToNil(start), blankToNil(end)
		if start == nil && end == nil {
			return nil
		}
		ts, tsOK := parseTime(start)
		te, teOK := parseTime(end)
		return func(v any) bool {
			t, ok := parseTime(v)
			if start != nil && !(ok && tsOK && !t.Before(ts)) {
				return false
			}
			if end != nil && !(ok && teOK && !t.After(te)) {
				return false
			}
			return true
		}

	case types.OpBoolean:
		want, ok := f.Value.(bool)
		if !ok {
			return nil
		}
		return func(v any) bool {
			return truthy(v) == want
		}
	}
	return nil
}

// bounds unpacks a [min, max] pair; anything else is unbounded.
func bounds(v any) (any, any) {
	list, ok := toList(v)
	if !ok {
		return nil, nil
	}
	var lower, upper any
	if len(list) > 0 {
		lower = list[0]
	}
	if len(list) > 1 {
		upper = list[1]
	}
	return lower, upper
}

func blankToNil(v any) any {
	if s, ok := v.(string); ok && s == "" {
		return nil
	}
	return v
}
