// Package perf aggregates journal entries into per-endpoint timings.
package perf

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

type EndpointStats struct {
	Endpoint     types.Endpoint `json:"endpoint"`
	Count        int            `json:"count"`
	Failures     int            `json:"failures"`
	AvgRequestMs float64        `json:"avgRequestMs"`
	MaxRequestMs float64        `json:"maxRequestMs"`
	AvgComputeMs float64        `json:"avgComputeMs"`
	MaxComputeMs float64        `json:"maxComputeMs"`
}

func (s EndpointStats) FailureRate() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Failures) / float64(s.Count)
}

// Summarize groups entries by endpoint, ordered by endpoint name.
func Summarize(entries []types.JournalEntry) []EndpointStats {
	groups := lo.GroupBy(entries, func(e types.JournalEntry) types.Endpoint { return e.Endpoint })
	out := make([]EndpointStats, 0, len(groups))
	for ep, list := range groups {
		s := EndpointStats{Endpoint: ep, Count: len(list)}
		for _, e := range list {
			if !e.OK {
				s.Failures++
			}
			s.AvgRequestMs += e.RequestMs
			s.AvgComputeMs += e.ComputeMs
			s.MaxRequestMs = max(s.MaxRequestMs, e.RequestMs)
			s.MaxComputeMs = max(s.MaxComputeMs, e.ComputeMs)
		}
		s.AvgRequestMs /= float64(s.Count)
		s.AvgComputeMs /= float64(s.Count)
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b EndpointStats) int {
		return strings.Compare(string(a.Endpoint), string(b.Endpoint))
	})
	return out
}

// Total folds per-endpoint stats into one line.
func Total(stats []EndpointStats) EndpointStats {
	t := EndpointStats{Endpoint: "total"}
	for _, s := range stats {
		t.AvgRequestMs += s.AvgRequestMs * float64(s.Count)
		t.AvgComputeMs += s.AvgComputeMs * float64(s.Count)
		t.Count += s.Count
		t.Failures += s.Failures
		t.MaxRequestMs = max(t.MaxRequestMs, s.MaxRequestMs)
		t.MaxComputeMs = max(t.MaxComputeMs, s.MaxComputeMs)
	}
	if t.Count > 0 {
		t.AvgRequestMs /= float64(t.Count)
		t.AvgComputeMs /= float64(t.Count)
	}
	return t
}
