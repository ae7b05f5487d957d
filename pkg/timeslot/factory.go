/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package timeslot

import (
	"fmt"
	"time"

	"github.com/friendsincode/timeslot/pkg/calendar"
)

// Factory builds slots against one calendar: its clock answers "now", its
// location and week start drive parsing and the period helpers. Each
// constructor reads the clock at most once.
type Factory struct {
	cal *calendar.Calendar
}

// NewFactory binds a factory to cal. A nil cal means calendar.New().
func NewFactory(cal *calendar.Calendar) *Factory {
	if cal == nil {
		cal = calendar.New()
	}
	return &Factory{cal: cal}
}

// Calendar returns the calendar the factory was built with.
func (f *Factory) Calendar() *calendar.Calendar {
	return f.cal
}

// Create builds a slot from start, which may be a time.Time, a *time.Time, a
// string understood by the calendar, or nil for the current instant. Any other
// type, or a string that does not parse, fails with ErrInvalidInput.
func (f *Factory) Create(start any, hours, minutes int) (*Slot, error) {
	switch v := start.(type) {
	case nil:
		return New(f.cal.Now(), hours, minutes)
	case time.Time:
		return New(v, hours, minutes)
	case *time.Time:
		if v == nil {
			return New(f.cal.Now(), hours, minutes)
		}
		return New(*v, hours, minutes)
	case string:
		return f.Parse(v, hours, minutes)
	default:
		return nil, fmt.Errorf("%w: unsupported start type %T", ErrInvalidInput, start)
	}
}

// Parse builds a slot starting at the instant named by value.
func (f *Factory) Parse(value string, hours, minutes int) (*Slot, error) {
	if err := validateDuration(hours, minutes); err != nil {
		return nil, err
	}
	start, err := f.cal.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return New(start, hours, minutes)
}

// Default returns a one hour slot starting at the current minute. Unlike Now
// it keeps the minute.
func (f *Factory) Default() *Slot {
	return At(f.cal.Now())
}

// Now returns a slot starting at the top of the current hour.
func (f *Factory) Now(hours, minutes int) (*Slot, error) {
	s, err := New(f.cal.Now(), hours, minutes)
	if err != nil {
		return nil, err
	}
	return s.Round(), nil
}

var defaultFactory = NewFactory(nil)

// Create uses the default factory. See Factory.Create.
func Create(start any, hours, minutes int) (*Slot, error) {
	return defaultFactory.Create(start, hours, minutes)
}

// Parse uses the default factory. See Factory.Parse.
func Parse(value string, hours, minutes int) (*Slot, error) {
	return defaultFactory.Parse(value, hours, minutes)
}

// Default uses the default factory. See Factory.Default.
func Default() *Slot {
	return defaultFactory.Default()
}

// Now uses the default factory. See Factory.Now.
func Now(hours, minutes int) (*Slot, error) {
	return defaultFactory.Now(hours, minutes)
}
