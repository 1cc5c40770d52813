package util

import (
	"fmt"
	"time"
)

// DateLayout is the ISO date form used for log keys and routes.
const DateLayout = "2006-01-02"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate validates an ISO date string.
func ParseDate(value string) (time.Time, error) {
	ts, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return ts, nil
}

// DateStamp renders a time as an ISO date.
func DateStamp(ts time.Time) string {
	return ts.Format(DateLayout)
}
