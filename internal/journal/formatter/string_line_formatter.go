package formatter

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

const lineFieldCount = 11

// StringLineFormatter writes pipe-separated records, one entry per line:
// run|request|endpoint|seed|key|ok|message|requestMs|computeMs|rows|total
type StringLineFormatter struct{}

var _ types.LogFormatter = (*StringLineFormatter)(nil)

func NewStringLineFormatter() *StringLineFormatter {
	return &StringLineFormatter{}
}

func (f *StringLineFormatter) Encode(items []types.JournalEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = '|'
	for _, e := range items {
		rec := []string{
			e.RunID,
			strconv.FormatUint(e.RequestID, 10),
			string(e.Endpoint),
			strconv.FormatUint(uint64(e.Seed), 10),
			e.Key,
			strconv.FormatBool(e.OK),
			e.Message,
			strconv.FormatFloat(e.RequestMs, 'f', 3, 64),
			strconv.FormatFloat(e.ComputeMs, 'f', 3, 64),
			strconv.Itoa(e.Rows),
			strconv.Itoa(e.Total),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func (f *StringLineFormatter) Decode(data []byte) ([]types.JournalEntry, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = '|'
	r.FieldsPerRecord = lineFieldCount

	var items []types.JournalEntry
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid journal line: %w", err)
		}
		e, err := parseLine(rec)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, nil
}

func parseLine(rec []string) (types.JournalEntry, error) {
	e := types.JournalEntry{
		RunID:    rec[0],
		Endpoint: types.Endpoint(rec[2]),
		Key:      rec[4],
		Message:  rec[6],
	}
	var err error
	if e.RequestID, err = strconv.ParseUint(rec[1], 10, 64); err != nil {
		return e, fmt.Errorf("invalid request id in journal: %s", rec[1])
	}
	seed, err := strconv.ParseUint(rec[3], 10, 32)
	if err != nil {
		return e, fmt.Errorf("invalid seed in journal: %s", rec[3])
	}
	e.Seed = uint32(seed)
	if e.OK, err = strconv.ParseBool(rec[5]); err != nil {
		return e, fmt.Errorf("invalid ok flag in journal: %s", rec[5])
	}
	if e.RequestMs, err = strconv.ParseFloat(rec[7], 64); err != nil {
		return e, fmt.Errorf("invalid requestMs in journal: %s", rec[7])
	}
	if e.ComputeMs, err = strconv.ParseFloat(rec[8], 64); err != nil {
		return e, fmt.Errorf("invalid computeMs in journal: %s", rec[8])
	}
	if e.Rows, err = strconv.Atoi(rec[9]); err != nil {
		return e, fmt.Errorf("invalid rows in journal: %s", rec[9])
	}
	if e.Total, err = strconv.Atoi(rec[10]); err != nil {
		return e, fmt.Errorf("invalid total in journal: %s", rec[10])
	}
	return e, nil
}
