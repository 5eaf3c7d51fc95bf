package formatter

import (
	"bufio"
	"bytes"
	"encoding/json"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

// JSONFormatter writes one JSON object per line (JSONL).
type JSONFormatter struct{}

var _ types.LogFormatter = (*JSONFormatter)(nil)

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) Encode(items []types.JournalEntry) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, item := range items {
		// Encode appends the trailing newline
		if err := enc.Encode(item); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func (f *JSONFormatter) Decode(data []byte) ([]types.JournalEntry, error) {
	var items []types.JournalEntry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var entry types.JournalEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, err
		}
		items = append(items, entry)
	}
	return items, scanner.Err()
}
