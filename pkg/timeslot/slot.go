/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package timeslot

import (
	"fmt"
	"math"
	"time"

	"github.com/friendsincode/timeslot/pkg/calendar"
)

// Slot is a closed interval [start, end] where
// end = start + hours + minutes - 1s and start has no seconds.
//
// Construction helpers allocate a new Slot. Round and AddHours mutate the
// receiver and return it for chaining; call Clone first to keep the old value.
type Slot struct {
	start   time.Time
	end     time.Time
	hours   int
	minutes int
}

// New builds a slot of hours and minutes starting at start. Seconds and
// sub-second parts of start are dropped.
func New(start time.Time, hours, minutes int) (*Slot, error) {
	if err := validateDuration(hours, minutes); err != nil {
		return nil, err
	}
	s := &Slot{
		start:   calendar.StartOfMinute(start),
		hours:   hours,
		minutes: minutes,
	}
	s.end = s.endFrom(s.start)
	return s, nil
}

// At builds a one hour slot starting at start.
func At(start time.Time) *Slot {
	s, _ := New(start, 1, 0)
	return s
}

// maxMinutes is the longest length, in minutes, a time.Duration can hold.
const maxMinutes = math.MaxInt64 / int64(time.Minute)

func validateDuration(hours, minutes int) error {
	if hours < 0 || minutes < 0 || (hours == 0 && minutes == 0) {
		return fmt.Errorf("%w: %dh%02dm", ErrInvalidDuration, hours, minutes)
	}
	if int64(hours) > maxMinutes/60 || int64(hours)*60 > maxMinutes-int64(minutes) {
		return fmt.Errorf("%w: %dh%02dm exceeds the longest representable length", ErrInvalidDuration, hours, minutes)
	}
	return nil
}

// spanning builds a slot whose hours and minutes are taken from the real
// length of [start, end], so DST days keep end = start + length - 1s.
func spanning(start, end time.Time) *Slot {
	length := end.Sub(start) + time.Second
	return &Slot{
		start:   start,
		end:     end,
		hours:   int(length / time.Hour),
		minutes: int(length % time.Hour / time.Minute),
	}
}

func (s *Slot) duration() time.Duration {
	return time.Duration(s.hours)*time.Hour + time.Duration(s.minutes)*time.Minute
}

func (s *Slot) endFrom(start time.Time) time.Time {
	return start.Add(s.duration() - time.Second)
}

// Start returns the first second of the slot.
func (s *Slot) Start() time.Time { return s.start }

// End returns the last second of the slot.
func (s *Slot) End() time.Time { return s.end }

// Hours returns the whole-hour part of the slot length.
func (s *Slot) Hours() int { return s.hours }

// Minutes returns the minute part of the slot length.
func (s *Slot) Minutes() int { return s.minutes }

// Duration returns hours + minutes.
func (s *Slot) Duration() time.Duration { return s.duration() }

// Bounds returns the start and end pair.
func (s *Slot) Bounds() Bounds {
	return Bounds{Start: s.start, End: s.end}
}

// Round moves start back to the top of its hour and recomputes end from the
// unchanged length.
func (s *Slot) Round() *Slot {
	s.start = calendar.StartOfHour(s.start)
	s.end = s.endFrom(s.start)
	return s
}

// AddHours shifts both boundaries by n hours. Negative n moves the slot back.
func (s *Slot) AddHours(n int) *Slot {
	s.start = calendar.AddHours(s.start, n)
	s.end = calendar.AddHours(s.end, n)
	return s
}

// Clone returns an independent copy.
func (s *Slot) Clone() *Slot {
	c := *s
	return &c
}

// Equal reports whether both slots cover the same seconds with the same length.
func (s *Slot) Equal(other *Slot) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.start.Equal(other.start) &&
		s.end.Equal(other.end) &&
		s.hours == other.hours &&
		s.minutes == other.minutes
}

func (s *Slot) String() string {
	return s.start.Format(time.DateTime) + " - " + s.end.Format(time.DateTime)
}

func (s *Slot) span() {}

// After returns a new slot of the same length starting right after s ends.
func After(s *Slot) *Slot {
	next := &Slot{
		start:   s.start.Add(s.duration()),
		hours:   s.hours,
		minutes: s.minutes,
	}
	next.end = next.endFrom(next.start)
	return next
}

// Before returns a new slot of the same length ending right before s starts.
func Before(s *Slot) *Slot {
	prev := &Slot{
		start:   s.start.Add(-s.duration()),
		hours:   s.hours,
		minutes: s.minutes,
	}
	prev.end = prev.endFrom(prev.start)
	return prev
}
