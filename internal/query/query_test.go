package query_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/query"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

type row map[string]any

func (r row) Field(name string) any { return r[name] }

func ids(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = fmt.Sprint(r["id"])
	}
	return out
}

func numbered(n int) []row {
	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{"id": fmt.Sprintf("r%02d", i+1), "n": i + 1}
	}
	return rows
}

func TestPaginate(t *testing.T) {
	rows := numbered(25)

	p := query.Paginate(rows, types.Query{Page: 2, PageSize: 10})
	assert.Equal(t, 25, p.Total)
	require.Len(t, p.Rows, 10)
	assert.Equal(t, "r11", p.Rows[0]["id"])
	assert.Equal(t, "r20", p.Rows[9]["id"])

	p = query.Paginate(rows, types.Query{Page: 3, PageSize: 10})
	assert.Equal(t, []string{"r21", "r22", "r23", "r24", "r25"}, ids(p.Rows))

	p = query.Paginate(rows, types.Query{Page: 10, PageSize: 10})
	assert.Equal(t, 25, p.Total)
	assert.NotNil(t, p.Rows)
	assert.Empty(t, p.Rows)

	p = query.Paginate(rows, types.Query{Page: 0, PageSize: 10})
	assert.Empty(t, p.Rows)
}

func TestApplyFilters_EnumIn(t *testing.T) {
	rows := []row{
		{"id": "a", "qualityStatus": "OK", "riskLevel": 1},
		{"id": "b", "qualityStatus": "HOLD", "riskLevel": 4},
		{"id": "c", "qualityStatus": "NG", "riskLevel": 5},
	}

	got := query.ApplyFilters(rows, []types.FilterRule{{Field: "qualityStatus", Op: types.OpEnumIn, Value: []any{}}})
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))

	got = query.ApplyFilters(rows, []types.FilterRule{{Field: "qualityStatus", Op: types.OpEnumIn, Value: []string{"OK", "NG"}}})
	assert.Equal(t, []string{"a", "c"}, ids(got))

	// JSON numbers arrive as float64 and still match int cells.
	got = query.ApplyFilters(rows, []types.FilterRule{{Field: "riskLevel", Op: types.OpEnumIn, Value: []any{4.0, 5.0}}})
	assert.Equal(t, []string{"b", "c"}, ids(got))
}

func TestApplyFilters_TextContains(t *testing.T) {
	rows := []row{
		{"id": "a", "sku": "SKU000123"},
		{"id": "b", "sku": "sku000999"},
		{"id": "c", "sku": nil},
	}

	got := query.ApplyFilters(rows, []types.FilterRule{{Field: "sku", Op: types.OpTextContains, Value: "Sku0001"}})
	assert.Equal(t, []string{"a"}, ids(got))

	got = query.ApplyFilters(rows, []types.FilterRule{{Field: "sku", Op: types.OpTextContains, Value: "   "}})
	assert.Len(t, got, 3)

	got = query.ApplyFilters(rows, []types.FilterRule{{Field: "sku", Op: types.OpTextContains, Value: nil}})
	assert.Len(t, got, 3)
}

func TestApplyFilters_NumberRange(t *testing.T) {
	rows := []row{
		{"id": "a", "onHand": 0},
		{"id": "b", "onHand": 50},
		{"id": "c", "onHand": "120"},
		{"id": "d", "onHand": "n/a"},
	}

	got := query.ApplyFilters(rows, []types.FilterRule{{Field: "onHand", Op: types.OpNumberRange, Value: []any{50.0, nil}}})
	assert.Equal(t, []string{"b", "c"}, ids(got))

	got = query.ApplyFilters(rows, []types.FilterRule{{Field: "onHand", Op: types.OpNumberRange, Value: []any{nil, 50.0}}})
	assert.Equal(t, []string{"a", "b"}, ids(got))

	got = query.ApplyFilters(rows, []types.FilterRule{{Field: "onHand", Op: types.OpNumberRange, Value: []any{0.0, 0.0}}})
	assert.Equal(t, []string{"a"}, ids(got))

	got = query.ApplyFilters(rows, []types.FilterRule{{Field: "onHand", Op: types.OpNumberRange, Value: []any{nil, nil}}})
	assert.Len(t, got, 4)
}

func TestApplyFilters_DateRange(t *testing.T) {
	rows := []row{
		{"id": "a", "expireAt": "2026-01-01T00:00:00.000Z"},
		{"id": "b", "expireAt": "2026-02-01T12:00:00.000Z"},
		{"id": "c", "expireAt": "2026-03-01T00:00:00.000Z"},
		{"id": "d", "expireAt": ""},
	}

	got := query.ApplyFilters(rows, []types.FilterRule{{
		Field: "expireAt", Op: types.OpDateRange,
		Value: []any{"2026-01-01T00:00:00.000Z", "2026-02-01T12:00:00.000Z"},
	}})
	assert.Equal(t, []string{"a", "b"}, ids(got))

	got = query.ApplyFilters(rows, []types.FilterRule{{Field: "expireAt", Op: types.OpDateRange, Value: []any{"2026-02-01", nil}}})
	assert.Equal(t, []string{"b", "c"}, ids(got))

	got = query.ApplyFilters(rows, []types.FilterRule{{Field: "expireAt", Op: types.OpDateRange, Value: []any{nil, ""}}})
	assert.Len(t, got, 4)
}

func TestApplyFilters_BooleanAndConjunction(t *testing.T) {
	rows := []row{
		{"id": "a", "hasChildren": true, "level": 0},
		{"id": "b", "hasChildren": false, "level": 1},
		{"id": "c", "hasChildren": true, "level": 2},
	}

	got := query.ApplyFilters(rows, []types.FilterRule{{Field: "hasChildren", Op: types.OpBoolean, Value: true}})
	assert.Equal(t, []string{"a", "c"}, ids(got))

	got = query.ApplyFilters(rows, []types.FilterRule{{Field: "hasChildren", Op: types.OpBoolean, Value: "yes"}})
	assert.Len(t, got, 3)

	got = query.ApplyFilters(rows, []types.FilterRule{
		{Field: "hasChildren", Op: types.OpBoolean, Value: true},
		{Field: "level", Op: types.OpNumberRange, Value: []any{1.0, nil}},
	})
	assert.Equal(t, []string{"c"}, ids(got))

	assert.True(t, query.MatchAll(rows[0], []types.FilterRule{{Field: "level", Op: "unknownOp", Value: 1}}))
}

func TestApplySort_StableMultiKey(t *testing.T) {
	rows := []row{
		{"id": "1", "zone": "Z02", "qty": 5},
		{"id": "2", "zone": "Z01", "qty": 5},
		{"id": "3", "zone": "Z02", "qty": 1},
		{"id": "4", "zone": "Z01", "qty": 5},
		{"id": "5", "zone": nil, "qty": 9},
	}
	before := ids(rows)

	got := query.ApplySort(rows, []types.SortRule{{Field: "qty", Order: types.SortDesc}})
	// Equal keys keep their input order.
	assert.Equal(t, []string{"5", "1", "2", "4", "3"}, ids(got))

	got = query.ApplySort(rows, []types.SortRule{
		{Field: "zone", Order: types.SortAsc},
		{Field: "qty", Order: types.SortAsc},
	})
	assert.Equal(t, []string{"5", "2", "4", "3", "1"}, ids(got))

	assert.Equal(t, before, ids(rows), "input must not be mutated")

	same := query.ApplySort(rows, nil)
	assert.Equal(t, before, ids(same))
}

func TestApplySort_NumbersCompareNumerically(t *testing.T) {
	rows := []row{{"id": "a", "n": 10}, {"id": "b", "n": 9}, {"id": "c", "n": 100}}
	got := query.ApplySort(rows, []types.SortRule{{Field: "n", Order: types.SortAsc}})
	assert.Equal(t, []string{"b", "a", "c"}, ids(got))
}

func TestRun(t *testing.T) {
	rows := numbered(25)
	p := query.Run(rows, types.Query{
		Page:     1,
		PageSize: 5,
		Sort:     []types.SortRule{{Field: "n", Order: types.SortDesc}},
		Filters:  []types.FilterRule{{Field: "n", Op: types.OpNumberRange, Value: []any{nil, 12.0}}},
	})
	assert.Equal(t, 12, p.Total)
	assert.Equal(t, []string{"r12", "r11", "r10", "r09", "r08"}, ids(p.Rows))
}

func TestQueryValidate(t *testing.T) {
	require.NoError(t, types.Query{Page: 1, PageSize: 10}.Validate())
	assert.ErrorIs(t, types.Query{Page: 0, PageSize: 10}.Validate(), types.ErrInvalidPage)
	assert.ErrorIs(t, types.Query{Page: 1, PageSize: 0}.Validate(), types.ErrInvalidPageSize)
	assert.ErrorIs(t, types.Query{Page: 1, PageSize: 1, Sort: []types.SortRule{{Field: "x", Order: "up"}}}.Validate(), types.ErrInvalidSortOrder)
}
