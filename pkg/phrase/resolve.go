package phrase

import (
	"strconv"
	"strings"
	"time"

	"voicecal/pkg/datemath"
)

// ResolveDate converts a date marker into a calendar day relative to ref.
//
//   - 今天, 明天, 後天: ref plus 0, 1 or 2 days.
//   - 下週: the next Monday after ref; 下週X: the next weekday X after ref.
//     The offset is 1..7 days, so it never lands on ref itself.
//   - M月D日: that day in ref's year; Y年M月D日: that day as written.
//
// Unknown markers, impossible days such as 2月30日 and unparsable numbers
// resolve to nothing.
func ResolveDate(marker string, ref Reference) (datemath.Date, bool) {
	today := ref.Date()

	switch marker {
	case MarkerToday:
		return today, true
	case MarkerTomorrow:
		return today.AddDays(1), true
	case MarkerDayAfterTomorrow:
		return today.AddDays(2), true
	}

	if rest, ok := strings.CutPrefix(marker, MarkerNextWeek); ok {
		target := defaultNextWeekTarget
		if rest != "" {
			wd, known := weekdayNames[rest]
			if !known {
				return datemath.Date{}, false
			}
			target = wd
		}
		return today.AddDays(datemath.DaysUntil(ref.Weekday, target)), true
	}

	if m := yearMonthDayPattern.FindStringSubmatch(marker); m != nil {
		return explicitDate(m[1], m[2], m[3])
	}

	if m := monthDayPattern.FindStringSubmatch(marker); m != nil {
		return explicitDate(strconv.Itoa(ref.Year), m[1], m[2])
	}

	return datemath.Date{}, false
}

func explicitDate(year, month, day string) (datemath.Date, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return datemath.Date{}, false
	}
	mo, err := strconv.Atoi(month)
	if err != nil {
		return datemath.Date{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return datemath.Date{}, false
	}
	return datemath.NewDate(y, time.Month(mo), d)
}

// ResolveTime converts a time marker into a 24-hour clock.
// 下午 and 晚上 move hours 1-11 into the afternoon; 上午 and 早上 keep the
// hour as written, so 上午12點 is noon. Minutes default to 0. Hours above 23
// and minutes above 59 resolve to nothing.
func ResolveTime(marker string) (datemath.Clock, bool) {
	m := timeMarkerPattern.FindStringSubmatch(marker)
	if m == nil {
		return datemath.Clock{}, false
	}
	period, hourText, minuteText := m[1], m[2], m[3]

	hour, err := strconv.Atoi(hourText)
	if err != nil {
		return datemath.Clock{}, false
	}

	minute := 0
	if minuteText != "" {
		if minute, err = strconv.Atoi(minuteText); err != nil {
			return datemath.Clock{}, false
		}
	}

	switch period {
	case PeriodAfternoon, PeriodEvening:
		if hour >= 1 && hour <= 11 {
			hour += 12
		}
	}

	return datemath.NewClock(hour, minute)
}

// Resolve converts both markers against ref. Empty markers stay unresolved.
func Resolve(dateMarker, timeMarker string, ref Reference) Resolution {
	var r Resolution
	if dateMarker != "" {
		if d, ok := ResolveDate(dateMarker, ref); ok {
			r.Date = &d
		}
	}
	if timeMarker != "" {
		if c, ok := ResolveTime(timeMarker); ok {
			r.Time = &c
		}
	}
	return r
}
