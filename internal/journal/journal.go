// Package journal records every mock API call so a benchmark run can be
// summarized afterwards. Entries are buffered and written in batches.
package journal

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/journal/formatter"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/journal/storage"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/table-bench-mock/internal/types"
)

type Journal struct {
	formatter types.LogFormatter
	storage   types.Storage
	buffer    []types.JournalEntry
}

var _ types.Journal = (*Journal)(nil)

// New opens a journal segment at path. A nil formatter means JSONL and a nil
// storage means an unbounded FileStorage.
func New(path string, seqNo uint64, format types.LogFormatter, store types.Storage) (*Journal, error) {
	if format == nil {
		format = formatter.NewJSONFormatter()
	}
	if store == nil {
		var err error
		store, err = storage.NewFileStorage(path, seqNo)
		if err != nil {
			return nil, err
		}
	}
	return &Journal{formatter: format, storage: store, buffer: make([]types.JournalEntry, 0, 256)}, nil
}

func (j *Journal) Log(entry types.JournalEntry) error {
	j.buffer = append(j.buffer, entry)
	return nil
}

// Flush writes the buffer as one batch. When the batch does not fit it
// returns ErrJournalFull and keeps the buffer so it can move to a new segment.
func (j *Journal) Flush() error {
	if len(j.buffer) == 0 {
		return nil
	}
	data, err := j.formatter.Encode(j.buffer)
	if err != nil {
		return err
	}
	if !j.storage.CanWrite(len(data)) {
		return types.ErrJournalFull
	}
	if err := j.storage.Write(data); err != nil {
		return err
	}
	j.buffer = j.buffer[:0]
	return j.storage.Flush()
}

// Close flushes what it can and finalizes the segment.
func (j *Journal) Close() error {
	ferr := j.Flush()
	return errors.Join(ferr, j.storage.Close())
}

func (j *Journal) Size() (int64, error) {
	return j.storage.Size()
}

func (j *Journal) Reset() []types.JournalEntry {
	dropped := append([]types.JournalEntry(nil), j.buffer...)
	j.buffer = j.buffer[:0]
	return dropped
}

// Pending is the number of buffered entries.
func (j *Journal) Pending() int {
	return len(j.buffer)
}

// Parse reads a journal segment back.
func Parse(path string, format types.LogFormatter) ([]types.JournalEntry, *types.JournalHeader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	hdr, err := storage.DecodeHeader(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	body := data[types.JournalHeaderSize:]
	if hdr.Status == types.JournalStatusClosed && hdr.DataLength <= uint64(len(body)) {
		body = body[:hdr.DataLength]
	} else {
		// mmap segments are zero padded
		body = bytes.TrimRight(body, "\x00")
	}
	entries, err := format.Decode(body)
	if err != nil {
		return nil, &hdr, err
	}
	return entries, &hdr, nil
}

// FormatterByName maps the configured formatter name to an implementation.
func FormatterByName(name string) (types.LogFormatter, error) {
	switch name {
	case "", "json":
		return formatter.NewJSONFormatter(), nil
	case "line":
		return formatter.NewStringLineFormatter(), nil
	}
	return nil, fmt.Errorf("unknown journal formatter %q", name)
}

// StorageOptions selects and sizes the segment storage.
type StorageOptions struct {
	Kind        string // "file" or "mmap"
	MaxFileSize int64
}

// Open creates a segment with the configured storage.
func Open(path string, seqNo uint64, format types.LogFormatter, opts StorageOptions) (*Journal, error) {
	var (
		store types.Storage
		err   error
	)
	switch opts.Kind {
	case "", "file":
		store, err = storage.NewFileStorage(path, seqNo, storage.FileStorageOps{MaxFileSizeInBytes: opts.MaxFileSize})
	case "mmap":
		store, err = storage.NewFileMMapStorage(path, seqNo, storage.FileMMapStorageOps{MMapFileSizeInBytes: opts.MaxFileSize})
	default:
		return nil, fmt.Errorf("unknown journal storage %q", opts.Kind)
	}
	if err != nil {
		return nil, err
	}
	return New(path, seqNo, format, store)
}
