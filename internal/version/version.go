/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package version provides build version information.
package version

import (
	"fmt"
	"runtime"
)

// Version is the current version of timeslot.
// This is set at build time via ldflags:
//
//	-X github.com/friendsincode/timeslot/internal/version.Version=X.Y.Z
var Version = "0.1.0"

// Commit is the git revision, also set via ldflags.
var Commit = "unknown"

// String returns a one-line description of the build.
func String() string {
	return fmt.Sprintf("timeslot %s (%s, %s)", Version, Commit, runtime.Version())
}
