package main

import (
	"context"
	"testing"
	"time"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/actor"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/journal"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/utils"
)

func benchmarkRecord(b *testing.B, kind, format string) {
	dir := b.TempDir()
	u := utils.NewDefaultUtils(dir, utils.ParseLogLevel("error"), nil)
	f, err := journal.FormatterByName(format)
	if err != nil {
		b.Fatal(err)
	}
	opts := journal.StorageOptions{Kind: kind, MaxFileSize: 4 << 20}

	path, seq, err := u.GenNextJournalPath()
	if err != nil {
		b.Fatal(err)
	}
	j, err := journal.Open(path, seq, f, opts)
	if err != nil {
		b.Fatalf("failed to open journal: %v", err)
	}
	sys, err := actor.NewSystem(&types.Context{Journal: j, Utils: u}, &actor.SystemOptional{
		FlushAfterN:       256,
		RequestBufferSize: 1024,
		JournalFactory: func(path string, seqNo uint64) (types.Journal, error) {
			return journal.Open(path, seqNo, f, opts)
		},
	})
	if err != nil {
		b.Fatal(err)
	}

	entry := types.JournalEntry{
		RunID:     "bench",
		Endpoint:  types.EndpointInventory,
		Seed:      20260108,
		Key:       "10000|20260108|60",
		OK:        true,
		RequestMs: 412.5,
		ComputeMs: 3.25,
		Rows:      50,
		Total:     10000,
	}
	ctx := context.Background()

	b.ResetTimer()
	start := time.Now()
	for i := 0; i < b.N; i++ {
		if _, err := sys.Record(ctx, entry); err != nil {
			b.Fatal(err)
		}
	}
	sys.Stop()
	elapsed := time.Since(start)

	files, _ := u.GetJournalFiles()
	b.ReportMetric(float64(b.N)/elapsed.Seconds(), "entries/sec")
	b.ReportMetric(float64(len(files)), "segments")
}

func BenchmarkRecord_File_JSON(b *testing.B) { benchmarkRecord(b, "file", "json") }
func BenchmarkRecord_File_Line(b *testing.B) { benchmarkRecord(b, "file", "line") }
func BenchmarkRecord_Mmap_JSON(b *testing.B) { benchmarkRecord(b, "mmap", "json") }
func BenchmarkRecord_Mmap_Line(b *testing.B) { benchmarkRecord(b, "mmap", "line") }
