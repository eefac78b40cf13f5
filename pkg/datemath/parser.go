package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrUnknownExpression = errors.New("unknown date expression")
	ErrUnknownWeekday    = errors.New("unknown weekday")
)

var inDurationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser turns date expressions into calendar days and anchors days and
// clocks to instants in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Taipei"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns the calendar day of base in the parser's timezone.
func (p *Parser) Today(base time.Time) Date {
	return DateOf(base.In(p.location))
}

// Parse converts a date expression to a calendar day relative to baseTime.
// Accepted: "today", "tomorrow", "yesterday", "in N days|weeks|months",
// "next <weekday>" and absolute YYYY-MM-DD.
func (p *Parser) Parse(expr string, baseTime time.Time) (Date, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	today := p.Today(baseTime)

	switch expr {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}

	if strings.HasPrefix(expr, "in ") {
		return p.parseInDuration(expr, today)
	}

	if strings.HasPrefix(expr, "next ") {
		return p.parseNextWeekday(expr, today)
	}

	if d, err := ParseDate(expr); err == nil {
		return d, nil
	}

	return Date{}, fmt.Errorf("%w: %q", ErrUnknownExpression, expr)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(expr string, today Date) (Date, error) {
	matches := inDurationPattern.FindStringSubmatch(expr)
	if len(matches) != 3 {
		return Date{}, fmt.Errorf("%w: invalid duration format %q", ErrUnknownExpression, expr)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return Date{}, fmt.Errorf("%w: invalid amount %q", ErrUnknownExpression, matches[1])
	}

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return today.AddDays(amount), nil
	case strings.HasPrefix(unit, "week"):
		return today.AddDays(amount * 7), nil
	default:
		return DateOf(today.In(time.UTC).AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(expr string, today Date) (Date, error) {
	dayName := strings.TrimPrefix(expr, "next ")
	target, ok := weekdays[dayName]
	if !ok {
		return Date{}, fmt.Errorf("%w: %q", ErrUnknownWeekday, dayName)
	}
	return NextWeekday(today, target), nil
}

// At returns the instant of clock c on day d in the parser's timezone.
func (p *Parser) At(d Date, c Clock) time.Time {
	return time.Date(d.Year, d.Month, d.Day, c.Hour, c.Minute, 0, 0, p.location)
}

// DaysUntil returns the number of days from a day falling on `from` to the
// next occurrence of target. The result is in 1..7: a target equal to
// `from` means one week later, never the same day.
func DaysUntil(from, target time.Weekday) int {
	days := (int(target) - int(from) + 7) % 7
	if days == 0 {
		days = 7
	}
	return days
}

// NextWeekday returns the next day strictly after d that falls on target.
func NextWeekday(d Date, target time.Weekday) Date {
	return d.AddDays(DaysUntil(d.Weekday(), target))
}
