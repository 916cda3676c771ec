package scale

import (
	"math"
	"time"
)

type unit int

const (
	unitSecond unit = iota
	unitMinute
	unitHour
	unitDay
	unitWeek
	unitMonth
	unitYear
)

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

type interval struct {
	unit   unit
	step   int
	approx time.Duration
}

var tickIntervals = []interval{
	{unitSecond, 1, time.Second},
	{unitSecond, 5, 5 * time.Second},
	{unitSecond, 15, 15 * time.Second},
	{unitSecond, 30, 30 * time.Second},
	{unitMinute, 1, time.Minute},
	{unitMinute, 5, 5 * time.Minute},
	{unitMinute, 15, 15 * time.Minute},
	{unitMinute, 30, 30 * time.Minute},
	{unitHour, 1, time.Hour},
	{unitHour, 3, 3 * time.Hour},
	{unitHour, 6, 6 * time.Hour},
	{unitHour, 12, 12 * time.Hour},
	{unitDay, 1, day},
	{unitDay, 2, 2 * day},
	{unitWeek, 1, week},
	{unitMonth, 1, month},
	{unitMonth, 3, 3 * month},
	{unitYear, 1, year},
}

// chooseInterval picks the interval whose duration is closest to span/count.
// Spans longer than count years use a rounded multiple of years.
func chooseInterval(span time.Duration, count int) (interval, bool) {
	if span <= 0 || count <= 0 {
		return interval{}, false
	}
	target := span / time.Duration(count)
	last := tickIntervals[len(tickIntervals)-1]
	if target > last.approx {
		years := niceStep(float64(target) / float64(year))
		return interval{unitYear, years, time.Duration(years) * year}, true
	}
	for i, iv := range tickIntervals {
		if iv.approx < target {
			continue
		}
		if i > 0 && target-tickIntervals[i-1].approx < iv.approx-target {
			return tickIntervals[i-1], true
		}
		return iv, true
	}
	return last, true
}

// niceStep rounds v up to 1, 2, 5 or 10 times a power of ten.
func niceStep(v float64) int {
	if v <= 1 {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(v)))
	f := v / pow
	switch {
	case f <= 1:
		f = 1
	case f <= 2:
		f = 2
	case f <= 5:
		f = 5
	default:
		f = 10
	}
	return int(f * pow)
}

func (iv interval) floor(t time.Time) time.Time {
	t = t.UTC()
	y, m, d := t.Date()
	switch iv.unit {
	case unitSecond:
		return t.Truncate(time.Duration(iv.step) * time.Second)
	case unitMinute:
		return t.Truncate(time.Duration(iv.step) * time.Minute)
	case unitHour:
		return time.Date(y, m, d, t.Hour()/iv.step*iv.step, 0, 0, 0, time.UTC)
	case unitDay:
		return time.Date(y, m, (d-1)/iv.step*iv.step+1, 0, 0, 0, 0, time.UTC)
	case unitWeek:
		return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, time.UTC)
	case unitMonth:
		return time.Date(y, time.Month((int(m)-1)/iv.step*iv.step+1), 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(y/iv.step*iv.step, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
}

func (iv interval) offset(t time.Time, n int) time.Time {
	k := n * iv.step
	switch iv.unit {
	case unitSecond:
		return t.Add(time.Duration(k) * time.Second)
	case unitMinute:
		return t.Add(time.Duration(k) * time.Minute)
	case unitHour:
		return t.Add(time.Duration(k) * time.Hour)
	case unitDay:
		next := t.AddDate(0, 0, k)
		// keep day steps aligned to the start of each month
		if iv.step > 1 && next.Month() != t.Month() {
			return time.Date(next.Year(), next.Month(), 1, 0, 0, 0, 0, time.UTC)
		}
		return next
	case unitWeek:
		return t.AddDate(0, 0, 7*k)
	case unitMonth:
		return t.AddDate(0, k, 0)
	default:
		return t.AddDate(k, 0, 0)
	}
}
