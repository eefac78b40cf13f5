// Package phrase extracts date, time and event markers from short
// Traditional Chinese scheduling phrases and resolves them against a
// caller-supplied reference day.
//
// Every function is pure and safe for concurrent use. A category that does
// not occur is reported as absent, never as an error.
package phrase

// ExtractDate returns the leftmost date marker in text: 今天, 明天, 後天,
// 下週 (optionally followed by a weekday), M月D日 or Y年M月D日.
func ExtractDate(text string) (string, bool) {
	m := datePattern.FindString(text)
	return m, m != ""
}

// ExtractTime returns the leftmost time marker in text: an optional period
// qualifier, a 1-2 digit hour, an optional 點 or ':' and an optional minute.
// A bare number matches, including digits that belong to a date.
func ExtractTime(text string) (string, bool) {
	m := timePattern.FindString(text)
	return m, m != ""
}

// ExtractEvent returns the leftmost event keyword in text.
func ExtractEvent(text string) (string, bool) {
	m := eventPattern.FindString(text)
	return m, m != ""
}

// ExtractAll scans text for all three categories. The time marker is the
// leftmost one that does not overlap the date marker, so the month in
// "3月15日下午2點" is not mistaken for an hour.
func ExtractAll(text string) Extraction {
	var e Extraction

	dateStart, dateEnd := -1, -1
	if loc := datePattern.FindStringIndex(text); loc != nil {
		dateStart, dateEnd = loc[0], loc[1]
		e.DateMarker = text[dateStart:dateEnd]
	}

	for _, loc := range timePattern.FindAllStringIndex(text, -1) {
		if loc[0] < dateEnd && loc[1] > dateStart {
			continue
		}
		e.TimeMarker = text[loc[0]:loc[1]]
		break
	}

	e.EventMarker, _ = ExtractEvent(text)
	return e
}

// Parse extracts all markers from text and resolves them against ref.
func Parse(text string, ref Reference) Phrase {
	e := ExtractAll(text)
	return Phrase{
		Text:       text,
		Extraction: e,
		Resolution: Resolve(e.DateMarker, e.TimeMarker, ref),
	}
}
