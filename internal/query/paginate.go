package query

import "github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"

// Paginate slices [(page-1)*pageSize, page*pageSize) out of rows. Pages past
// the end come back empty with the full total.
func Paginate[T any](rows []T, q types.Query) types.Paged[T] {
	total := len(rows)
	if q.Page < 1 || q.PageSize <= 0 {
		return types.Paged[T]{Rows: []T{}, Total: total}
	}
	start := (q.Page - 1) * q.PageSize
	if start >= total {
		return types.Paged[T]{Rows: []T{}, Total: total}
	}
	end := start + q.PageSize
	if end > total {
		end = total
	}
	page := make([]T, end-start)
	copy(page, rows[start:end])
	return types.Paged[T]{Rows: page, Total: total}
}

// Run is the full server-side pipeline: filter, sort, paginate.
func Run[T Record](rows []T, q types.Query) types.Paged[T] {
	filtered := ApplyFilters(rows, q.Filters)
	sorted := ApplySort(filtered, q.Sort)
	return Paginate(sorted, q)
}
