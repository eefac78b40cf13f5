package model

// Case is one scripted utterance sent to the workflow.
// Empty expectations are derived from the extractor at run time.
// ExpectedDate accepts an ISO date or a relative expression such as
// "tomorrow" or "next monday"; ExpectedTime is HH:MM.
type Case struct {
	Name         string `json:"name" yaml:"name"`
	Text         string `json:"text" yaml:"text"`
	ExpectedDate string `json:"expected_date,omitempty" yaml:"expected_date,omitempty"`
	ExpectedTime string `json:"expected_time,omitempty" yaml:"expected_time,omitempty"`
}

// Status classifies the outcome of one case.
type Status string

const (
	// StatusPassed means the workflow succeeded and date and time match.
	StatusPassed Status = "passed"
	// StatusMismatch means the workflow succeeded with a different date or time.
	StatusMismatch Status = "mismatch"
	// StatusFailed means the workflow answered success=false.
	StatusFailed Status = "failed"
	// StatusError means no usable answer: HTTP error, unreachable, bad payload.
	StatusError Status = "error"
)

// Slot is a calendar date and a wall clock, both as text.
// An empty field is unknown and is not compared.
type Slot struct {
	Date string `json:"date,omitempty" yaml:"date,omitempty"`
	Time string `json:"time,omitempty" yaml:"time,omitempty"`
}

// CalendarCheck records the optional lookup of the created event.
type CalendarCheck struct {
	Found   bool   `json:"found" yaml:"found"`
	Start   Slot   `json:"start,omitempty" yaml:"start,omitempty"`
	Matches bool   `json:"matches" yaml:"matches"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Outcome is the result of running one Case.
type Outcome struct {
	Case       Case           `json:"case" yaml:"case"`
	Status     Status         `json:"status" yaml:"status"`
	Expected   Slot           `json:"expected" yaml:"expected"`
	Actual     Slot           `json:"actual,omitempty" yaml:"actual,omitempty"`
	EventID    string         `json:"event_id,omitempty" yaml:"event_id,omitempty"`
	Summary    string         `json:"summary,omitempty" yaml:"summary,omitempty"`
	StartTime  string         `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	Message    string         `json:"message,omitempty" yaml:"message,omitempty"`
	HTTPStatus int            `json:"http_status,omitempty" yaml:"http_status,omitempty"`
	Detail     string         `json:"detail,omitempty" yaml:"detail,omitempty"`
	Calendar   *CalendarCheck `json:"calendar,omitempty" yaml:"calendar,omitempty"`
}
