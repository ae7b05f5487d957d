/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package calendar

import (
	"testing"
	"time"
)

func TestArithmetic(t *testing.T) {
	base := time.Date(2026, 1, 31, 10, 15, 0, 0, time.UTC)

	tests := []struct {
		name string
		got  time.Time
		want time.Time
	}{
		{"add hours", AddHours(base, 3), time.Date(2026, 1, 31, 13, 15, 0, 0, time.UTC)},
		{"sub hours", AddHours(base, -11), time.Date(2026, 1, 30, 23, 15, 0, 0, time.UTC)},
		{"add minutes", AddMinutes(base, 50), time.Date(2026, 1, 31, 11, 5, 0, 0, time.UTC)},
		{"add weeks", AddWeeks(base, 1), time.Date(2026, 2, 7, 10, 15, 0, 0, time.UTC)},
		{"sub weeks", AddWeeks(base, -2), time.Date(2026, 1, 17, 10, 15, 0, 0, time.UTC)},
		{"add month clamps day", AddMonths(base, 1), time.Date(2026, 2, 28, 10, 15, 0, 0, time.UTC)},
		{"sub month", AddMonths(base, -2), time.Date(2025, 11, 30, 10, 15, 0, 0, time.UTC)},
		{"start of minute", StartOfMinute(time.Date(2026, 1, 31, 10, 15, 42, 5, time.UTC)), base},
		{"start of hour", StartOfHour(base), time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.got.Equal(tc.want) {
				t.Fatalf("got %v, want %v", tc.got, tc.want)
			}
		})
	}
}

func TestStartOfMinuteUsesWallClock(t *testing.T) {
	// Amsterdam mean time was UTC+00:19:32.
	amt := time.FixedZone("AMT", 19*60+32)
	at := time.Date(1930, 1, 1, 10, 0, 42, 7, amt)

	got := StartOfMinute(at)
	want := time.Date(1930, 1, 1, 10, 0, 0, 0, amt)
	if !got.Equal(want) {
		t.Fatalf("StartOfMinute(%v) = %v, want %v", at, got, want)
	}
	if got.Second() != 0 {
		t.Fatalf("seconds = %d, want 0", got.Second())
	}

	if hour := StartOfHour(at); hour.Minute() != 0 || hour.Second() != 0 || hour.Hour() != 10 {
		t.Fatalf("StartOfHour(%v) = %v", at, hour)
	}
}

func TestCompareAtSecondResolution(t *testing.T) {
	a := time.Date(2026, 1, 1, 0, 0, 0, 100, time.UTC)
	b := time.Date(2026, 1, 1, 0, 0, 0, 900, time.UTC)
	c := time.Date(2026, 1, 1, 0, 0, 1, 0, time.UTC)

	if !Equal(a, b) {
		t.Fatal("expected sub-second differences to compare equal")
	}
	if Compare(a, c) != -1 || Compare(c, a) != 1 {
		t.Fatalf("Compare ordering wrong: %d %d", Compare(a, c), Compare(c, a))
	}
	if !Min(c, a).Equal(a) || !Max(a, c).Equal(c) {
		t.Fatal("Min/Max picked the wrong instant")
	}
}
