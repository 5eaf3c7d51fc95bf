package types

// Endpoint names one mock API operation in the journal.
type Endpoint string

const (
	EndpointInventory      Endpoint = "fetchInventory"
	EndpointExceptions     Endpoint = "fetchExceptions"
	EndpointTreeRoots      Endpoint = "fetchTreeRoots"
	EndpointTreeChildren   Endpoint = "fetchTreeChildren"
	EndpointSearchPickers  Endpoint = "searchPickers"
	EndpointValidatePicker Endpoint = "validatePicker"
	EndpointSubmitPicking  Endpoint = "submitPicking"
	EndpointExceptionOp    Endpoint = "exceptionAction"
	EndpointTimeline       Endpoint = "fetchExceptionTimeline"
)

// JournalEntry is one recorded mock API call.
type JournalEntry struct {
	RunID     string   `json:"run_id"`
	RequestID uint64   `json:"request_id"`
	Endpoint  Endpoint `json:"endpoint"`
	Seed      uint32   `json:"seed"`
	Key       string   `json:"key,omitempty"`
	OK        bool     `json:"ok"`
	Message   string   `json:"message,omitempty"`
	RequestMs float64  `json:"request_ms"`
	ComputeMs float64  `json:"compute_ms"`
	Rows      int      `json:"rows"`
	Total     int      `json:"total"`
}

// JournalHeader is the fixed-size header at the start of every segment.
type JournalHeader struct {
	Magic      uint32
	Version    uint16
	Status     uint16
	SeqNo      uint64
	DataLength uint64
}

const (
	JournalMagic      uint32 = 0x4a524e4c // "JRNL"
	JournalVersion1   uint16 = 1
	JournalHeaderSize        = 24
)

const (
	JournalStatusOpen   uint16 = 1
	JournalStatusClosed uint16 = 2
)
