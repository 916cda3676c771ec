// Package scale maps chart data into pixel space: a continuous time scale for
// the X axis and a cumulative ordinal scale for stacked tracks on the Y axis.
package scale

import (
	"time"
)

// maxTicks bounds tick generation for pathological domains.
const maxTicks = 1000

// Time maps a [lower, upper] date domain onto a [r0, r1] pixel range.
type Time struct {
	lower, upper time.Time
	r0, r1       float64
	clamp        bool
}

// NewTime creates a time scale. When clamp is set, dates outside the domain
// map to the nearest range boundary instead of being extrapolated.
func NewTime(lower, upper time.Time, r0, r1 float64, clamp bool) *Time {
	return &Time{lower: lower, upper: upper, r0: r0, r1: r1, clamp: clamp}
}

func (s *Time) Domain() (time.Time, time.Time) { return s.lower, s.upper }

func (s *Time) Range() (float64, float64) { return s.r0, s.r1 }

func (s *Time) Clamped() bool { return s.clamp }

// Map returns the pixel position of t.
func (s *Time) Map(t time.Time) float64 {
	span := s.upper.Sub(s.lower)
	if span <= 0 {
		return s.r0
	}
	p := float64(t.Sub(s.lower)) / float64(span)
	if s.clamp {
		p = max(0, min(1, p))
	}
	return s.r0 + p*(s.r1-s.r0)
}

// Invert returns the date at pixel x.
func (s *Time) Invert(x float64) time.Time {
	if s.r1 == s.r0 {
		return s.lower
	}
	p := (x - s.r0) / (s.r1 - s.r0)
	if s.clamp {
		p = max(0, min(1, p))
	}
	return s.lower.Add(time.Duration(p * float64(s.upper.Sub(s.lower))))
}

// Nice extends the domain so both ends fall on the tick interval chosen for
// count ticks.
func (s *Time) Nice(count int) *Time {
	iv, ok := chooseInterval(s.upper.Sub(s.lower), count)
	if !ok {
		return s
	}
	lower := iv.floor(s.lower)
	upper := iv.floor(s.upper)
	if upper.Before(s.upper) {
		upper = iv.offset(upper, 1)
	}
	s.lower, s.upper = lower, upper
	return s
}

// Ticks returns roughly count dates aligned to a calendar interval and
// contained in the domain.
func (s *Time) Ticks(count int) []time.Time {
	iv, ok := chooseInterval(s.upper.Sub(s.lower), count)
	if !ok {
		return nil
	}
	t := iv.floor(s.lower)
	if t.Before(s.lower) {
		t = iv.offset(t, 1)
	}
	var ticks []time.Time
	for !t.After(s.upper) && len(ticks) < maxTicks {
		ticks = append(ticks, t)
		t = iv.offset(t, 1)
	}
	return ticks
}

// FormatTick renders a tick label using the coarsest calendar field that is
// not at its boundary: year starts print the year, month starts the month
// name, and so on down to milliseconds.
func FormatTick(t time.Time) string {
	t = t.UTC()
	switch {
	case t.Nanosecond() != 0:
		return t.Format(".000")
	case t.Second() != 0:
		return t.Format(":05")
	case t.Minute() != 0:
		return t.Format("15:04")
	case t.Hour() != 0:
		return t.Format("03 PM")
	case t.Day() != 1:
		if t.Weekday() != time.Sunday {
			return t.Format("Mon 02")
		}
		return t.Format("Jan 02")
	case t.Month() != time.January:
		return t.Format("January")
	default:
		return t.Format("2006")
	}
}
