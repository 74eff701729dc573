package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DurationLabel renders the span between two dates as a human-readable
// approximation: plain days under a week, weeks plus leftover days under
// 30 days, otherwise 30-day months plus leftover days. A non-positive
// span reports "0 days". This is display-oriented; it is not calendar
// math and callers must not schedule against it.
func DurationLabel(start, end time.Time) string {
	if !end.After(start) {
		return "0 days"
	}

	days := int(math.Ceil(end.Sub(start).Hours() / 24))

	switch {
	case days < 7:
		return pluralize(days, "day")
	case days < 30:
		weeks := days / 7
		remaining := days % 7
		if remaining == 0 {
			return pluralize(weeks, "week")
		}
		return pluralize(weeks, "week") + " " + pluralize(remaining, "day")
	default:
		months := days / 30
		remaining := days % 30
		if remaining == 0 {
			return pluralize(months, "month")
		}
		return pluralize(months, "month") + " " + pluralize(remaining, "day")
	}
}

func pluralize(n int, unit string) string {
	label := fmt.Sprintf("%d %s", n, unit)
	if n != 1 {
		label += "s"
	}
	return label
}

// DateLayout is the wire format for phase dates.
const DateLayout = "2006-01-02"

// ParseDate parses a phase date string. An empty or blank string yields
// nil, which clears the date.
func ParseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", value, err)
	}
	return &t, nil
}
