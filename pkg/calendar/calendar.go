/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package calendar adapts time.Time and github.com/jinzhu/now into the small
// set of calendar operations the timeslot package relies on: a clock source,
// string parsing, start-of/end-of helpers and second-resolution comparison.
//
// All results are truncated to whole seconds.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// Calendar binds a clock, a location and a week start day.
type Calendar struct {
	clock    Clock
	location *time.Location
	config   *now.Config
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithClock sets the clock used by Now and Parse.
func WithClock(clock Clock) Option {
	return func(c *Calendar) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLocation sets the location instants are interpreted in.
func WithLocation(loc *time.Location) Option {
	return func(c *Calendar) {
		if loc != nil {
			c.location = loc
		}
	}
}

// WithWeekStart sets the first day of the week.
func WithWeekStart(day time.Weekday) Option {
	return func(c *Calendar) {
		c.config.WeekStartDay = day
	}
}

// New constructs a Calendar. Defaults: system clock, time.Local, weeks
// starting on Monday.
func New(opts ...Option) *Calendar {
	c := &Calendar{
		clock:    SystemClock{},
		location: time.Local,
		config: &now.Config{
			WeekStartDay: time.Monday,
			TimeFormats:  append([]string{time.DateTime}, now.TimeFormats...),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.config.TimeLocation = c.location
	return c
}

// Location returns the calendar's location.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// WeekStart returns the configured first day of the week.
func (c *Calendar) WeekStart() time.Weekday {
	return c.config.WeekStartDay
}

// Now reads the clock once and returns the instant in the calendar's
// location, truncated to the second.
func (c *Calendar) Now() time.Time {
	return c.clock.Now().In(c.location).Truncate(time.Second)
}

// Parse interprets value in the calendar's location. Missing date parts are
// filled from the current instant, so "15:04" means today at 15:04.
func (c *Calendar) Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, &ParseError{Input: value, Err: errEmptyInput}
	}

	t, err := c.config.With(c.Now()).Parse(value)
	if err != nil {
		return time.Time{}, &ParseError{Input: value, Err: err}
	}
	return t.Truncate(time.Second), nil
}

func (c *Calendar) with(t time.Time) *now.Now {
	return c.config.With(t.In(c.location))
}

// StartOfHour returns t with minutes and seconds zeroed.
func (c *Calendar) StartOfHour(t time.Time) time.Time {
	return c.with(t).BeginningOfHour()
}

// EndOfHour returns the last second of t's hour.
func (c *Calendar) EndOfHour(t time.Time) time.Time {
	return c.with(t).EndOfHour().Truncate(time.Second)
}

// StartOfDay returns midnight of t's day.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	return c.with(t).BeginningOfDay()
}

// EndOfDay returns 23:59:59 of t's day.
func (c *Calendar) EndOfDay(t time.Time) time.Time {
	return c.with(t).EndOfDay().Truncate(time.Second)
}

// StartOfWeek returns midnight of the first day of t's week.
func (c *Calendar) StartOfWeek(t time.Time) time.Time {
	return c.with(t).BeginningOfWeek()
}

// EndOfWeek returns the last second of t's week.
func (c *Calendar) EndOfWeek(t time.Time) time.Time {
	return c.with(t).EndOfWeek().Truncate(time.Second)
}

// StartOfMonth returns midnight of the first day of t's month.
func (c *Calendar) StartOfMonth(t time.Time) time.Time {
	return c.with(t).BeginningOfMonth()
}

// EndOfMonth returns the last second of t's month.
func (c *Calendar) EndOfMonth(t time.Time) time.Time {
	return c.with(t).EndOfMonth().Truncate(time.Second)
}

// LoadLocation resolves an IANA name. Empty and "Local" map to time.Local.
func LoadLocation(name string) (*time.Location, error) {
	switch strings.TrimSpace(name) {
	case "", "Local", "local":
		return time.Local, nil
	case "UTC", "utc":
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

// ParseWeekday accepts full or three-letter English day names.
func ParseWeekday(name string) (time.Weekday, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("invalid weekday %q", name)
}
