package types

import "fmt"

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type SortRule struct {
	Field string    `json:"field"`
	Order SortOrder `json:"order"`
}

// FilterOp is independent of any table library; it only fixes the
// parameter contract shared by local and server query paths.
type FilterOp string

const (
	OpTextContains FilterOp = "textContains"
	OpEnumIn       FilterOp = "enumIn"
	OpNumberRange  FilterOp = "numberRange"
	OpDateRange    FilterOp = "dateRange"
	OpBoolean      FilterOp = "boolean"
)

// FilterRule carries a JSON-shaped value: a string for textContains, a list
// for enumIn, a [min, max] pair (nil = unbounded) for the range ops and a
// bool for boolean.
type FilterRule struct {
	Field string   `json:"field"`
	Op    FilterOp `json:"op"`
	Value any      `json:"value"`
}

// Query is the page/sort/filter bundle sent to the mock backend.
// Sort rules are tie-breaks in listed order; filters are ANDed.
type Query struct {
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
	Sort     []SortRule   `json:"sort"`
	Filters  []FilterRule `json:"filters"`
}

// Validate rejects queries a real endpoint would refuse.
func (q Query) Validate() error {
	if q.Page < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, q.Page)
	}
	if q.PageSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, q.PageSize)
	}
	for _, s := range q.Sort {
		if s.Order != SortAsc && s.Order != SortDesc {
			return fmt.Errorf("%w: field %q has %q", ErrInvalidSortOrder, s.Field, s.Order)
		}
	}
	return nil
}

// Paged is one page of rows plus the filtered total.
type Paged[T any] struct {
	Rows  []T `json:"rows"`
	Total int `json:"total"`
}
