package models

import (
	"errors"
	"time"
)

// DateLayout is the calendar-date format accepted by every tool argument.
const DateLayout = "2006-01-02"

// ErrInvalidDateFormat covers missing arguments, unparsable text and
// calendar-invalid dates alike. Callers are not told which sub-case
// occurred.
var ErrInvalidDateFormat = errors.New("invalid date format: expected YYYY-MM-DD")

// ParseDateRange parses two YYYY-MM-DD dates into a TimeWindow whose
// endpoints are the start of each day in UTC. Both fields are required.
// The range is not ordered-checked; an inverted window is returned as-is.
func ParseDateRange(startText, endText string) (TimeWindow, error) {
	start, err := parseDate(startText)
	if err != nil {
		return TimeWindow{}, ErrInvalidDateFormat
	}
	end, err := parseDate(endText)
	if err != nil {
		return TimeWindow{}, ErrInvalidDateFormat
	}
	return TimeWindow{Start: start, End: end}, nil
}

func parseDate(text string) (time.Time, error) {
	// time.Parse validates against the real calendar, so 2024-02-30 and
	// 2024-13-01 are rejected here, not downstream.
	return time.ParseInLocation(DateLayout, text, time.UTC)
}
