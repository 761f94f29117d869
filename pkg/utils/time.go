package utils

import (
	"fmt"
	"time"
)

// ParseDate parses a date string in YYYY-MM-DD or RFC3339 format. The time
// portion of an RFC3339 value is discarded; lease and invoice dates have
// day granularity.
func ParseDate(dateStr string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", dateStr); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected YYYY-MM-DD or RFC3339, got %s", dateStr)
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
