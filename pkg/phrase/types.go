package phrase

import (
	"time"

	"voicecal/pkg/datemath"
)

// Reference is the "current" day relative markers are resolved against.
// Weekday follows time.Weekday: 0 is Sunday, 6 is Saturday.
type Reference struct {
	Year    int
	Month   time.Month
	Day     int
	Weekday time.Weekday
}

// ReferenceFrom builds a Reference from the calendar day of t in t's location.
func ReferenceFrom(t time.Time) Reference {
	return ReferenceOf(datemath.DateOf(t))
}

// ReferenceOf builds a Reference for calendar day d.
func ReferenceOf(d datemath.Date) Reference {
	return Reference{Year: d.Year, Month: d.Month, Day: d.Day, Weekday: d.Weekday()}
}

// Date returns the calendar day of r.
func (r Reference) Date() datemath.Date {
	return datemath.Date{Year: r.Year, Month: r.Month, Day: r.Day}
}

// Extraction holds the literal markers found in one input. An empty field
// means the category did not occur.
type Extraction struct {
	DateMarker  string `json:"date_marker,omitempty" yaml:"date_marker,omitempty"`
	TimeMarker  string `json:"time_marker,omitempty" yaml:"time_marker,omitempty"`
	EventMarker string `json:"event_marker,omitempty" yaml:"event_marker,omitempty"`
}

// Empty reports whether no category matched.
func (e Extraction) Empty() bool {
	return e.DateMarker == "" && e.TimeMarker == "" && e.EventMarker == ""
}

// Resolution holds absolute values derived from markers. A nil field means
// the marker was absent or has no resolution rule.
type Resolution struct {
	Date *datemath.Date  `json:"resolved_date,omitempty" yaml:"resolved_date,omitempty"`
	Time *datemath.Clock `json:"resolved_time,omitempty" yaml:"resolved_time,omitempty"`
}

// Phrase is the extraction and resolution of one input.
type Phrase struct {
	Text       string `json:"text" yaml:"text"`
	Extraction `yaml:",inline"`
	Resolution `yaml:",inline"`
}
