package types

// ActionResult is the transient-failure channel: callers read OK instead of
// unwinding on an error.
type ActionResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

type SubmitLine struct {
	LineID string `json:"lineId"`
}

type SubmitLineResult struct {
	LineID  string `json:"lineId"`
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

type SubmitResult struct {
	Results   []SubmitLineResult `json:"results"`
	RequestMs float64            `json:"requestMs"`
}

type TimelineEntry struct {
	At   string `json:"at"`
	Text string `json:"text"`
}

type ExceptionActionKind string

const (
	ActionProcess          ExceptionActionKind = "process"
	ActionAssign           ExceptionActionKind = "assign"
	ActionCreateAdjustment ExceptionActionKind = "create-adjustment"
)

// Valid reports whether the action is one the backend understands.
func (a ExceptionActionKind) Valid() bool {
	switch a {
	case ActionProcess, ActionAssign, ActionCreateAdjustment:
		return true
	}
	return false
}
