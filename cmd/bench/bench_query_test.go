package main

import (
	"runtime"
	"testing"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/dataset"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/query"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

func BenchmarkQueryRun(b *testing.B) {
	rows := dataset.GenerateInventory(10000, 20260108, 60, benchNow)
	cases := []struct {
		name string
		q    types.Query
	}{
		{"page-only", types.Query{Page: 5, PageSize: 50}},
		{"sort-text", types.Query{Page: 1, PageSize: 50, Sort: []types.SortRule{{Field: "skuName", Order: types.SortAsc}}}},
		{"filter-sort", types.Query{
			Page:     1,
			PageSize: 50,
			Sort: []types.SortRule{
				{Field: "riskLevel", Order: types.SortDesc},
				{Field: "expireAt", Order: types.SortAsc},
			},
			Filters: []types.FilterRule{
				{Field: "qualityStatus", Op: types.OpEnumIn, Value: []any{"OK", "HOLD"}},
				{Field: "onHand", Op: types.OpNumberRange, Value: []any{100, nil}},
			},
		}},
	}

	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			var memStatsStart, memStatsEnd runtime.MemStats
			b.ResetTimer()
			runtime.ReadMemStats(&memStatsStart)

			for i := 0; i < b.N; i++ {
				query.Run(rows, c.q)
			}

			runtime.ReadMemStats(&memStatsEnd)
			b.ReportMetric(float64(memStatsEnd.TotalAlloc-memStatsStart.TotalAlloc)/float64(b.N), "bytes/query")
		})
	}
}
