package utils

import (
	"math"
	"time"

	"github.com/aarondl/null/v8"
)

// DateLayout is the wire format for calendar dates. Due dates, purchase
// dates and warranty dates carry no time-of-day semantics.
const DateLayout = "2006-01-02"

// ParseDate turns an ISO-8601 calendar date into a null.Time; the empty
// string maps to an invalid (NULL) value.
func ParseDate(s string) (null.Time, error) {
	if s == "" {
		return null.Time{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return null.Time{}, err
	}
	return null.TimeFrom(t), nil
}

// FormatDate renders a null.Time as an ISO-8601 calendar date, or ""
// when NULL.
func FormatDate(t null.Time) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(DateLayout)
}

// DateOnly strips the time-of-day portion.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Round2 rounds a currency amount to 2 fraction digits for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
