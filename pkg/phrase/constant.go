package phrase

import (
	"regexp"
	"strings"
	"time"
)

// Relative date markers.
const (
	MarkerToday            = "今天"
	MarkerTomorrow         = "明天"
	MarkerDayAfterTomorrow = "後天"
	MarkerNextWeek         = "下週"
)

// Period-of-day qualifiers.
const (
	PeriodMorning      = "上午"
	PeriodAfternoon    = "下午"
	PeriodEarlyMorning = "早上"
	PeriodEvening      = "晚上"
)

// eventKeywords is the closed event-type vocabulary.
var eventKeywords = []string{"會議", "開會", "約會", "聚餐", "運動", "健身", "上課", "工作", "面試"}

// Patterns. Go's regexp is leftmost-first for alternations, so for any start
// position the earlier alternative wins, same as the workflow's own parser.
var (
	datePattern  = regexp.MustCompile(`今天|明天|後天|下週[一二三四五六日]?|[0-9]{1,2}月[0-9]{1,2}日|[0-9]{4}年[0-9]{1,2}月[0-9]{1,2}日`)
	timePattern  = regexp.MustCompile(`(上午|下午|早上|晚上)?([0-9]{1,2})[:點]?([0-9]{1,2}分?)?`)
	eventPattern = regexp.MustCompile(strings.Join(eventKeywords, "|"))

	monthDayPattern     = regexp.MustCompile(`^([0-9]{1,2})月([0-9]{1,2})日$`)
	yearMonthDayPattern = regexp.MustCompile(`^([0-9]{4})年([0-9]{1,2})月([0-9]{1,2})日$`)
	timeMarkerPattern   = regexp.MustCompile(`^(上午|下午|早上|晚上)?([0-9]{1,2})[:點]?(?:([0-9]{1,2})分?)?$`)
)

// weekdayNames maps the character after 下週 to a weekday.
var weekdayNames = map[string]time.Weekday{
	"一": time.Monday,
	"二": time.Tuesday,
	"三": time.Wednesday,
	"四": time.Thursday,
	"五": time.Friday,
	"六": time.Saturday,
	"日": time.Sunday,
}

// defaultNextWeekTarget is the weekday a bare 下週 resolves to.
const defaultNextWeekTarget = time.Monday
