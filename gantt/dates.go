package gantt

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the accepted ISO 8601 forms, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseDate parses an ISO 8601 date. Values without a zone are taken as UTC.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrMissingDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// parseRange parses a start/end pair and checks their order.
func parseRange(start, end string) (time.Time, time.Time, error) {
	s, err := parseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("startDate: %w", err)
	}
	e, err := parseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("endDate: %w", err)
	}
	if s.After(e) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, start, end)
	}
	return s, e, nil
}

// parseValues parses every value of an event or action.
func parseValues(values []string) ([]time.Time, error) {
	if len(values) == 0 {
		return nil, ErrMissingValues
	}
	out := make([]time.Time, len(values))
	for i, v := range values {
		t, err := parseDate(v)
		if err != nil {
			return nil, fmt.Errorf("values[%d]: %w", i, err)
		}
		out[i] = t
	}
	return out, nil
}
