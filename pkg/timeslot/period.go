/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package timeslot

import (
	"fmt"

	"github.com/friendsincode/timeslot/pkg/calendar"
)

// Period names a calendar-aligned span relative to the current instant.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodThisWeek  Period = "this-week"
	PeriodLastWeek  Period = "last-week"
	PeriodThisMonth Period = "this-month"
	PeriodLastMonth Period = "last-month"
)

// Periods lists every supported period in display order.
var Periods = []Period{PeriodToday, PeriodThisWeek, PeriodLastWeek, PeriodThisMonth, PeriodLastMonth}

// Period builds the slot for p.
func (f *Factory) Period(p Period) (*Slot, error) {
	switch p {
	case PeriodToday:
		return f.Today(), nil
	case PeriodThisWeek:
		return f.ThisWeek(), nil
	case PeriodLastWeek:
		return f.LastWeek(), nil
	case PeriodThisMonth:
		return f.ThisMonth(), nil
	case PeriodLastMonth:
		return f.LastMonth(), nil
	}
	return nil, fmt.Errorf("%w: unknown period %q", ErrInvalidInput, string(p))
}

// Today spans 00:00:00 to 23:59:59 of the current day.
func (f *Factory) Today() *Slot {
	n := f.cal.Now()
	return spanning(f.cal.StartOfDay(n), f.cal.EndOfDay(n))
}

// ThisWeek spans the current week, first day 00:00:00 to last day 23:59:59.
func (f *Factory) ThisWeek() *Slot {
	n := f.cal.Now()
	return spanning(f.cal.StartOfWeek(n), f.cal.EndOfWeek(n))
}

// LastWeek is ThisWeek one week earlier.
func (f *Factory) LastWeek() *Slot {
	start := f.cal.StartOfWeek(calendar.AddWeeks(f.cal.StartOfWeek(f.cal.Now()), -1))
	return spanning(start, f.cal.EndOfWeek(start))
}

// ThisMonth spans the first to the last day of the current month.
func (f *Factory) ThisMonth() *Slot {
	n := f.cal.Now()
	return spanning(f.cal.StartOfMonth(n), f.cal.EndOfMonth(n))
}

// LastMonth is the whole month before the current one.
func (f *Factory) LastMonth() *Slot {
	start := f.cal.StartOfMonth(calendar.AddMonths(f.cal.StartOfMonth(f.cal.Now()), -1))
	return spanning(start, f.cal.EndOfMonth(start))
}

// Today uses the default factory.
func Today() *Slot { return defaultFactory.Today() }

// ThisWeek uses the default factory.
func ThisWeek() *Slot { return defaultFactory.ThisWeek() }

// LastWeek uses the default factory.
func LastWeek() *Slot { return defaultFactory.LastWeek() }

// ThisMonth uses the default factory.
func ThisMonth() *Slot { return defaultFactory.ThisMonth() }

// LastMonth uses the default factory.
func LastMonth() *Slot { return defaultFactory.LastMonth() }
