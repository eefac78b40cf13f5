package gcalendar

import "time"

const (
	DefaultCalendarID = "primary"
	DefaultTokenFile  = "token.json"
)

// CreateEventRequest is the input for creating a calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Asia/Taipei"
}

// Event is the part of a Google Calendar event the harness inspects.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}
