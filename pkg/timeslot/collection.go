/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package timeslot

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/friendsincode/timeslot/pkg/calendar"
)

// Collection is an ordered, never empty group of spans. Members are either
// slots, which are copied in on insertion, or nested collections, which are
// kept by reference and count as a single member.
//
// Start and End scan every member on each call, so they stay correct when
// members were added out of order. Add never reorders; call Sort for that.
//
// Only NewCollection yields a valid collection. The zero value has no members
// and reports the zero time from Start and End.
//
// A Collection is not safe for concurrent use. Callers that share one across
// goroutines must serialize Add, Remove and Sort themselves.
type Collection struct {
	members []Span
}

// NewCollection seeds a collection with first. A quantity above one extends
// it with consecutive slots, each starting where the previous one ended,
// which requires first to be a *Slot.
func NewCollection(first Span, quantity int) (*Collection, error) {
	if isNilSpan(first) {
		return nil, fmt.Errorf("%w: nil collection member", ErrInvalidInput)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	slot, isSlot := first.(*Slot)
	if quantity > 1 && !isSlot {
		return nil, fmt.Errorf("%w: a series of %d needs a slot, got %T", ErrInvalidQuantity, quantity, first)
	}

	c := &Collection{members: make([]Span, 0, quantity)}
	c.members = append(c.members, owned(first))
	prev := slot
	for i := 1; i < quantity; i++ {
		prev = After(prev)
		c.members = append(c.members, prev)
	}
	return c, nil
}

// owned copies slots so later changes to the caller's value do not leak in.
func owned(s Span) Span {
	if slot, ok := s.(*Slot); ok {
		return slot.Clone()
	}
	return s
}

// Add appends m.
func (c *Collection) Add(m Span) error {
	if isNilSpan(m) {
		return fmt.Errorf("%w: nil collection member", ErrInvalidInput)
	}
	if nested, ok := m.(*Collection); ok && (nested == c || nested.contains(c)) {
		return ErrCycle
	}
	c.members = append(c.members, owned(m))
	return nil
}

func (c *Collection) contains(target *Collection) bool {
	for _, m := range c.members {
		nested, ok := m.(*Collection)
		if !ok {
			continue
		}
		if nested == target || nested.contains(target) {
			return true
		}
	}
	return false
}

func (c *Collection) checkIndex(i int) error {
	if i < 0 || i >= len(c.members) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(c.members))
	}
	return nil
}

// Remove deletes the member at i. The last remaining member cannot be removed.
func (c *Collection) Remove(i int) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	if len(c.members) == 1 {
		return ErrCannotEmpty
	}
	c.members = slices.Delete(c.members, i, i+1)
	return nil
}

// Get returns the stored member at i, not a copy.
func (c *Collection) Get(i int) (Span, error) {
	if err := c.checkIndex(i); err != nil {
		return nil, err
	}
	return c.members[i], nil
}

// Count returns the number of direct members.
func (c *Collection) Count() int {
	return len(c.members)
}

// Sort orders members by start, to the second. Equal starts keep their
// relative order.
func (c *Collection) Sort() {
	slices.SortStableFunc(c.members, func(a, b Span) int {
		return calendar.Compare(a.Start(), b.Start())
	})
}

// Start returns the earliest start among the members.
func (c *Collection) Start() time.Time {
	if len(c.members) == 0 {
		return time.Time{}
	}
	start := c.members[0].Start()
	for _, m := range c.members[1:] {
		start = calendar.Min(start, m.Start())
	}
	return start
}

// End returns the latest end among the members.
func (c *Collection) End() time.Time {
	if len(c.members) == 0 {
		return time.Time{}
	}
	end := c.members[0].End()
	for _, m := range c.members[1:] {
		end = calendar.Max(end, m.End())
	}
	return end
}

// Bounds returns the aggregate start and end.
func (c *Collection) Bounds() Bounds {
	return Bounds{Start: c.Start(), End: c.End()}
}

// Members returns a copy of the member list.
func (c *Collection) Members() []Span {
	return slices.Clone(c.members)
}

// All iterates over the direct members with their index.
func (c *Collection) All() iter.Seq2[int, Span] {
	return func(yield func(int, Span) bool) {
		for i, m := range c.members {
			if !yield(i, m) {
				return
			}
		}
	}
}

// Slots flattens nested collections depth first and returns every slot in
// member order.
func (c *Collection) Slots() []*Slot {
	var out []*Slot
	for _, m := range c.members {
		switch v := m.(type) {
		case *Slot:
			out = append(out, v)
		case *Collection:
			out = append(out, v.Slots()...)
		}
	}
	return out
}

func (c *Collection) span() {}
