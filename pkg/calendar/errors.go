/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package calendar

import (
	"errors"
	"fmt"
)

// ErrMalformed matches every *ParseError via errors.Is.
var ErrMalformed = errors.New("malformed date/time")

var errEmptyInput = errors.New("empty input")

// ParseError reports a string that could not be read as an instant.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrMalformed) succeed for any parse failure.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}
