package domain

import "time"

// isoDate is the wire format for all trip dates. Lexicographic comparison of
// two isoDate strings coincides with chronological order, which the forecast
// windowing logic relies on.
const isoDate = "2006-01-02"

// dateLayouts are the accepted input formats, tried in order. Inputs with a
// time-of-day component are truncated to their calendar day.
var dateLayouts = []string{
	isoDate,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// parseDay parses s and normalizes it to midnight UTC, discarding any
// time-of-day component.
func parseDay(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// NormalizeISODate reduces s to its YYYY-MM-DD form.
// The second return value is false when s is not a parseable date.
func NormalizeISODate(s string) (string, bool) {
	t, ok := parseDay(s)
	if !ok {
		return "", false
	}
	return t.Format(isoDate), true
}

// CalculateDurationDays returns the inclusive day count between start and end.
// A same-day span counts as one day; otherwise the whole-day difference is
// widened by one in the direction of its sign, so a three-day span
// (start, middle, end) yields 3 and an end one day before start yields -2.
// Unparseable input on either side yields 0.
func CalculateDurationDays(start, end string) int {
	s, okStart := parseDay(start)
	e, okEnd := parseDay(end)
	if !okStart || !okEnd {
		return 0
	}
	days := int(e.Sub(s).Hours() / 24)
	switch {
	case days > 0:
		return days + 1
	case days < 0:
		return days - 1
	default:
		return 1
	}
}

// CalculateCountdownDays returns the number of full days between today and
// the departure date, excluding the departure day itself. Past departures
// yield a negative count; an invalid pair yields 0.
func CalculateCountdownDays(today, departureDate string) int {
	duration := CalculateDurationDays(today, departureDate)
	switch {
	case duration > 0:
		return duration - 1
	case duration < 0:
		return duration + 1
	default:
		return 0
	}
}
