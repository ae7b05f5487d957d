/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package timeslot

import "errors"

var (
	// ErrInvalidInput indicates a start value that is neither an instant, a
	// parseable string nor absent, or a nil collection member.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDuration indicates a zero or negative slot length.
	ErrInvalidDuration = errors.New("invalid slot duration")

	// ErrInvalidQuantity indicates a collection size below one, or a series
	// requested from something other than a slot.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrIndexOutOfRange indicates an index outside the collection.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrCannotEmpty indicates a removal that would leave the collection empty.
	ErrCannotEmpty = errors.New("collection cannot be empty")

	// ErrCycle indicates a collection added into itself or one of its descendants.
	ErrCycle = errors.New("collection would contain itself")
)
