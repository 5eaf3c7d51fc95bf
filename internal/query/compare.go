package query

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Record is any row whose columns can be read by wire name.
type Record interface {
	Field(name string) any
}

// NewCollator returns a locale-aware string comparator. Collators are not
// safe for concurrent use; take one per sort.
func NewCollator() *collate.Collator {
	return collate.New(language.Und)
}

// CompareValues orders two cell values: nil first, numbers by difference,
// everything else by collated string form.
func CompareValues(col *collate.Collator, a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	na, aNum := asNumber(a)
	nb, bNum := asNumber(b)
	if aNum && bNum {
		switch d := na - nb; {
		case d < 0:
			return -1
		case d > 0:
			return 1
		}
		return 0
	}
	return col.CompareString(stringify(a), stringify(b))
}

// asNumber reports numeric kinds only; strings are not numbers here.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// toNumber is a numeric cast: blank strings are 0, unparseable input is NaN.
func toNumber(v any) float64 {
	if n, ok := asNumber(v); ok {
		return n
	}
	switch x := v.(type) {
	case nil:
		return math.NaN()
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	}
	return math.NaN()
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	}
	if n, ok := asNumber(v); ok {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	if n, ok := asNumber(v); ok {
		return n != 0 && !math.IsNaN(n)
	}
	return true
}

// enumKey normalizes a value for set membership so 3 and 3.0 match.
func enumKey(v any) any {
	if n, ok := asNumber(v); ok {
		return n
	}
	return v
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTime reads an ISO timestamp; ok is false for blank or junk input.
func parseTime(v any) (time.Time, bool) {
	s, isStr := v.(string)
	if !isStr {
		if t, isTime := v.(time.Time); isTime {
			return t, true
		}
		if v == nil {
			return time.Time{}, false
		}
		s = stringify(v)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// toList unpacks slice-shaped filter values.
func toList(v any) ([]any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case []any:
		return x, true
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		elem := rv.Index(i)
		if elem.Kind() == reflect.Pointer {
			if elem.IsNil() {
				continue
			}
			elem = elem.Elem()
		}
		out[i] = elem.Interface()
	}
	return out, true
}
