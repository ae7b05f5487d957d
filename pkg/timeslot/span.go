/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package timeslot

import "time"

// Span is the capability shared by Slot and Collection. The set of
// implementations is closed: a Collection member is always a *Slot or a
// *Collection.
type Span interface {
	Start() time.Time
	End() time.Time
	Bounds() Bounds
	span()
}

// Bounds is the inclusive [Start, End] pair of a span.
type Bounds struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

func isNilSpan(s Span) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *Slot:
		return v == nil
	case *Collection:
		return v == nil
	}
	return false
}
