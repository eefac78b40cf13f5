package model

import "time"

// EventSource tells where a scheduled event was stored.
type EventSource string

const (
	SourceGoogleCalendar EventSource = "google_calendar"
	SourceLocal          EventSource = "local"
)

// ScheduledEvent is an event created from a spoken request.
type ScheduledEvent struct {
	ID         string
	Summary    string
	Transcript string
	Start      time.Time
	End        time.Time
	Link       string
	Source     EventSource
	// DateDefaulted and TimeDefaulted are set when the phrase had no
	// usable date or time and today or 09:00 was used.
	DateDefaulted bool
	TimeDefaulted bool
}
