package types

import "log/slog"

// DataMode selects where query work is assumed to happen.
type DataMode string

const (
	ModeLocal  DataMode = "local"
	ModeServer DataMode = "server"
)

// Supported dataset shapes.
var (
	DataSizes   = []int{100, 1000, 10000, 100000}
	ColumnSizes = []int{30, 60, 120}
)

// DefaultSeed is the seed used when none is configured.
const DefaultSeed uint32 = 20260108

// JournalBaseName is the file prefix of journal segments.
const JournalBaseName = "journal"

// Journal records mock API calls with buffered writes.
type Journal interface {
	// Log appends an entry to the buffer (does not write to storage immediately)
	Log(entry JournalEntry) error
	// Flush writes all buffered entries to storage
	Flush() error
	// Close finalizes the segment header and closes the storage
	Close() error
	// Size returns the number of bytes already written to storage
	Size() (int64, error)
	// Reset drops the unflushed buffer and returns what was dropped
	Reset() []JournalEntry
}

// LogFormatter encodes and decodes journal entries.
type LogFormatter interface {
	Encode(items []JournalEntry) ([]byte, error)
	Decode(data []byte) ([]JournalEntry, error)
}

// Storage is the byte sink under a journal segment.
type Storage interface {
	Write(data []byte) error
	CanWrite(size int) bool
	Size() (int64, error)
	Flush() error
	Close() error
}

// Utils provides shared infrastructure to components.
type Utils interface {
	GetLogger() *slog.Logger
	GenNextJournalPath() (string, uint64, error)
}

// Context for dependency injection
type Context struct {
	Journal Journal
	Utils   Utils
}

// Logger returns the context logger or nil.
func (c *Context) Logger() *slog.Logger {
	if c == nil || c.Utils == nil {
		return nil
	}
	return c.Utils.GetLogger()
}

// Error
type errString string

func (e errString) Error() string {
	return string(e)
}

const ErrLoadChildren = errString("mock: loadChildren failed")
const ErrInvalidPage = errString("query page must be >= 1")
const ErrInvalidPageSize = errString("query pageSize must be > 0")
const ErrInvalidSortOrder = errString("sort order must be asc or desc")
const ErrUnsupportedSize = errString("unsupported dataset size")
const ErrUnsupportedColumnSize = errString("unsupported column size")
const ErrUnsupportedMode = errString("unsupported data mode")
const ErrUnknownAction = errString("unknown exception action")
const ErrJournalFull = errString("journal segment is full")
const ErrJournalBufferNotEmpty = errString("journal buffer is not empty. Should Flush before rotate")
const ErrShuttingDown = errString("request cancelled: compute actor shutting down")
