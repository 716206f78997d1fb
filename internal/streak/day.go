// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package streak defines the application's notion of a day and derives
// streak statistics from completion history.
//
// A day starts at 04:00 local time instead of midnight, so work done shortly
// after midnight still counts for the previous day. All functions are pure:
// "now" is always passed in and the location of a time value decides what
// "local" means.
package streak

import (
	"fmt"
	"time"
)

// DayStartHour is the local hour at which a new day begins.
const DayStartHour = 4

// DayLayout is the textual form of a day used in URLs and logs.
const DayLayout = "2006-01-02"

// AdjustedStartOfDay returns 04:00 of the day t belongs to, in t's location.
// Times before 04:00 belong to the previous calendar day.
func AdjustedStartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	if t.Hour() < DayStartHour {
		d--
	}

	// time.Date normalises d == 0 into the last day of the previous month.
	return time.Date(y, m, d, DayStartHour, 0, 0, 0, t.Location())
}

// NextDayStart returns the first instant of the day after the one t belongs to.
func NextDayStart(t time.Time) time.Time {
	start := AdjustedStartOfDay(t)
	y, m, d := start.Date()

	return time.Date(y, m, d+1, DayStartHour, 0, 0, 0, t.Location())
}

// CurrentDayNumber returns the 1-based number of the day now falls on,
// counting from the day start falls on. A nil or zero start yields 1 and the
// result is never below 1.
func CurrentDayNumber(now time.Time, start *time.Time) int {
	if start == nil || start.IsZero() {
		return 1
	}

	n := dayIndex(now) - dayIndex(start.In(now.Location())) + 1
	if n < 1 {
		return 1
	}

	return int(n)
}

// ParseDay parses a "YYYY-MM-DD" string into the start of that day in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DayLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", s, err)
	}

	return time.Date(d.Year(), d.Month(), d.Day(), DayStartHour, 0, 0, 0, loc), nil
}

// FormatDay renders the day t belongs to as "YYYY-MM-DD".
func FormatDay(t time.Time) string {
	return AdjustedStartOfDay(t).Format(DayLayout)
}

// dayIndex numbers adjusted days on a continuous scale. Counting calendar
// dates rather than elapsed hours keeps DST transitions (23h or 25h days)
// from shifting the result.
func dayIndex(t time.Time) int64 {
	y, m, d := AdjustedStartOfDay(t).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / int64(24*time.Hour/time.Second)
}
