// Package payperiod implements the household pay-period calendar and the
// paycheck, bill-assignment and transfer calculations built on top of it.
//
// Everything in this package is a pure function over value types: no clock
// reads, no I/O. Callers supply "now" explicitly, so identical inputs always
// produce identical outputs.
package payperiod

import (
	"fmt"
	"time"
)

// Period is one half of a calendar month. Period 1 spans the 1st through the
// 15th, period 2 the 16th through the last day of the month. Both endpoints
// are inclusive; together the two periods cover the month with no gap and no
// overlap.
type Period struct {
	Index int // 1 or 2
	Start time.Time
	End   time.Time
	Label string
}

// Contains reports whether the date falls inside the period, inclusive on
// both ends.
func (p Period) Contains(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(p.Start) && !d.After(p.End)
}

// PeriodsForMonth returns both pay periods of the given month.
func PeriodsForMonth(year int, month time.Month) [2]Period {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	return [2]Period{
		{
			Index: 1,
			Start: first,
			End:   time.Date(year, month, 15, 0, 0, 0, 0, time.UTC),
			Label: fmt.Sprintf("%s 1-15", month.String()),
		},
		{
			Index: 2,
			Start: time.Date(year, month, 16, 0, 0, 0, 0, time.UTC),
			End:   last,
			Label: fmt.Sprintf("%s 16-%d", month.String(), last.Day()),
		},
	}
}

// CurrentPeriod returns the pay period containing today. Day 15 belongs to
// period 1, matching the period boundaries themselves.
func CurrentPeriod(today time.Time) Period {
	periods := PeriodsForMonth(today.Year(), today.Month())
	if today.Day() <= 15 {
		return periods[0]
	}
	return periods[1]
}

// DateOnly truncates a timestamp to a calendar date at midnight UTC. All
// period arithmetic in this package works on day granularity.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
