// Package timeutil provides time-related utilities for testability and convenience.
package timeutil

import (
	"fmt"
	"time"
)

// Catalog timestamp layouts. Flight records carry naive local timestamps
// without a zone offset; dates are plain calendar days.
const (
	// TimestampLayout is the departure/arrival layout used by flight records.
	TimestampLayout = "2006-01-02T15:04:05"

	// DateLayout is the layout for calendar dates (departure date constraint).
	DateLayout = "2006-01-02"
)

// ParseTimestamp parses a flight record timestamp.
func ParseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return t, nil
}

// FormatTimestamp formats a time in the flight record layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return t, nil
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatClock formats a duration as H:MM:SS, e.g. "5:35:00".
// Used when presenting travel times.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}
