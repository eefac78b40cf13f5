package datemath_test

import (
	"errors"
	"testing"
	"time"

	"voicecal/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Taipei")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	base := datemath.Date{Year: 2024, Month: time.May, Day: 1}

	tests := []struct {
		name    string
		expr    string
		want    datemath.Date
		wantErr error
	}{
		{name: "Today", expr: "today", want: base},
		{name: "Tomorrow", expr: "tomorrow", want: base.AddDays(1)},
		{name: "Yesterday", expr: "Yesterday", want: base.AddDays(-1)},
		{name: "In 3 days", expr: "in 3 days", want: base.AddDays(3)},
		{name: "In 2 weeks", expr: "in 2 weeks", want: base.AddDays(14)},
		{name: "In 1 month", expr: "in 1 month", want: datemath.Date{Year: 2024, Month: time.June, Day: 1}},
		{name: "Invalid duration pattern", expr: "in a few days", wantErr: datemath.ErrUnknownExpression},
		{name: "Next Monday (from Wed)", expr: "next monday", want: base.AddDays(5)},
		{name: "Next Wednesday (from Wed)", expr: "next wednesday", want: base.AddDays(7)},
		{name: "Absolute date", expr: "2024-12-31", want: datemath.Date{Year: 2024, Month: time.December, Day: 31}},
		{name: "Unknown expression", expr: "some random day", wantErr: datemath.ErrUnknownExpression},
		{name: "Invalid Next Weekday", expr: "next funday", wantErr: datemath.ErrUnknownWeekday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.expr, baseTime)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParse_UsesParserTimezone(t *testing.T) {
	parser, err := datemath.NewParser("Asia/Taipei")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 20:00 UTC on Apr 30 is already May 1 in Taipei (UTC+8).
	baseTime := time.Date(2024, 4, 30, 20, 0, 0, 0, time.UTC)
	got, err := parser.Parse("today", baseTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "2024-05-01" {
		t.Errorf("Parse(today) = %s, want 2024-05-01", got)
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		from   time.Weekday
		target time.Weekday
		want   int
	}{
		{time.Wednesday, time.Monday, 5},
		{time.Sunday, time.Monday, 1},
		{time.Monday, time.Monday, 7},
		{time.Saturday, time.Sunday, 1},
		{time.Monday, time.Sunday, 6},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.target.String(), func(t *testing.T) {
			if got := datemath.DaysUntil(tt.from, tt.target); got != tt.want {
				t.Errorf("DaysUntil() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDate_AddDaysRollover(t *testing.T) {
	tests := []struct {
		name string
		from datemath.Date
		n    int
		want string
	}{
		{"Year end", datemath.Date{Year: 2024, Month: time.December, Day: 31}, 1, "2025-01-01"},
		{"Leap day", datemath.Date{Year: 2024, Month: time.February, Day: 28}, 1, "2024-02-29"},
		{"After leap day", datemath.Date{Year: 2024, Month: time.February, Day: 29}, 1, "2024-03-01"},
		{"Non-leap year", datemath.Date{Year: 2023, Month: time.February, Day: 28}, 1, "2023-03-01"},
		{"Backwards", datemath.Date{Year: 2024, Month: time.January, Day: 1}, -1, "2023-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.AddDays(tt.n).String(); got != tt.want {
				t.Errorf("AddDays() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNewDate_RejectsImpossibleDays(t *testing.T) {
	if _, ok := datemath.NewDate(2024, time.February, 30); ok {
		t.Errorf("expected 2024-02-30 to be invalid")
	}
	if _, ok := datemath.NewDate(2023, time.February, 29); ok {
		t.Errorf("expected 2023-02-29 to be invalid")
	}
	if _, ok := datemath.NewDate(2024, 13, 1); ok {
		t.Errorf("expected month 13 to be invalid")
	}
	if _, ok := datemath.NewDate(2024, time.February, 29); !ok {
		t.Errorf("expected 2024-02-29 to be valid")
	}
}

func TestClock(t *testing.T) {
	c, err := datemath.ParseClock("09:05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Hour != 9 || c.Minute != 5 || c.String() != "09:05" {
		t.Errorf("unexpected clock: %+v", c)
	}

	if _, ok := datemath.NewClock(24, 0); ok {
		t.Errorf("expected 24:00 to be invalid")
	}
	if _, err := datemath.ParseClock("7pm"); err == nil {
		t.Errorf("expected parse error")
	}
}

func TestAt(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Taipei")
	got := parser.At(datemath.Date{Year: 2024, Month: time.May, Day: 2}, datemath.Clock{Hour: 15})

	if got.Format(time.RFC3339) != "2024-05-02T15:00:00+08:00" {
		t.Errorf("At() = %s", got.Format(time.RFC3339))
	}
}
