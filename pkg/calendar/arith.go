/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package calendar

import (
	"time"

	"github.com/jinzhu/now"
)

// AddHours shifts t by n absolute hours. Negative n subtracts.
func AddHours(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Hour)
}

// AddMinutes shifts t by n absolute minutes. Negative n subtracts.
func AddMinutes(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Minute)
}

// AddWeeks shifts t by n calendar weeks, keeping the wall clock time.
func AddWeeks(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, 7*n)
}

// AddMonths shifts t by n calendar months. The day is clamped to the target
// month's length, so Jan 31 + 1 month is Feb 28 (or 29).
func AddMonths(t time.Time, n int) time.Time {
	first := now.With(t).BeginningOfMonth().AddDate(0, n, 0)
	last := now.With(first).EndOfMonth().Day()
	day := t.Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// StartOfMinute zeroes the seconds of t's wall clock in t's own location.
// Zones with a seconds offset keep the same minute.
func StartOfMinute(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, t.Location())
}

// StartOfHour zeroes minutes and seconds in t's own location.
func StartOfHour(t time.Time) time.Time {
	return now.With(t).BeginningOfHour()
}

// Compare orders a and b at second resolution: -1, 0 or +1.
func Compare(a, b time.Time) int {
	return a.Truncate(time.Second).Compare(b.Truncate(time.Second))
}

// Equal reports whether a and b name the same second.
func Equal(a, b time.Time) bool {
	return Compare(a, b) == 0
}

// Min returns the earlier of a and b.
func Min(a, b time.Time) time.Time {
	if Compare(b, a) < 0 {
		return b
	}
	return a
}

// Max returns the later of a and b.
func Max(a, b time.Time) time.Time {
	if Compare(b, a) > 0 {
		return b
	}
	return a
}
