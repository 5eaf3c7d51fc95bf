package stream

import (
	"log/slog"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

// LogStreamer writes each entry as a structured debug record.
type LogStreamer struct {
	logger *slog.Logger
}

func NewLogStreamer(logger *slog.Logger) *LogStreamer {
	return &LogStreamer{logger: logger}
}

func (s *LogStreamer) Stream(e types.JournalEntry) {
	s.logger.Debug("mock call",
		"request_id", e.RequestID,
		"endpoint", e.Endpoint,
		"key", e.Key,
		"ok", e.OK,
		"request_ms", e.RequestMs,
		"compute_ms", e.ComputeMs,
		"rows", e.Rows,
		"total", e.Total,
	)
}
