/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package timeslot models contiguous time intervals and ordered groups of
// them.
//
// A Slot is built from a start instant and a length in hours and minutes. Its
// end is inclusive and lies one second before start + length, so a one hour
// slot at 10:00 ends at 10:59:59 and After returns the slot starting at 11:00.
//
// A Collection holds slots and nested collections. Its Start and End are the
// minimum and maximum over all members, nested ones included.
//
// Nothing in this package is safe for concurrent mutation.
package timeslot
