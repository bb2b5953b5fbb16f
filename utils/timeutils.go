package utils

import (
	"fmt"
	"time"
)

// ClockLayout is the HH:MM layout of arrival times
const ClockLayout = "15:04"

// Iso8601Now returns the current time in ISO8601 format
func Iso8601Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ParseClock converts a 24-hour HH:MM string to the offset since midnight.
// Unlike the field format check, hours above 23 are rejected.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// FormatClock renders an offset since midnight as HH:MM
func FormatClock(d time.Duration) string {
	d = d.Truncate(time.Minute)
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int((d%time.Hour)/time.Minute))
}
