/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package calendar

import (
	"errors"
	"testing"
	"time"
)

func fixedCalendar(t *testing.T, at time.Time, opts ...Option) *Calendar {
	t.Helper()
	opts = append([]Option{WithClock(FixedClock{At: at}), WithLocation(time.UTC)}, opts...)
	return New(opts...)
}

func TestParseDateTimeLayouts(t *testing.T) {
	cal := fixedCalendar(t, time.Date(2026, 3, 4, 8, 30, 15, 0, time.UTC))

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"date time", "2017-02-11 10:00:00", time.Date(2017, 2, 11, 10, 0, 0, 0, time.UTC)},
		{"date time with seconds", "2019-11-04 12:15:15", time.Date(2019, 11, 4, 12, 15, 15, 0, time.UTC)},
		{"date only", "2017-05-24", time.Date(2017, 5, 24, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", "2017-01-18T15:00:00Z", time.Date(2017, 1, 18, 15, 0, 0, 0, time.UTC)},
		{"time only uses today", "15:04", time.Date(2026, 3, 4, 15, 4, 0, 0, time.UTC)},
		{"surrounding whitespace", "  2017-02-11 10:00:00 ", time.Date(2017, 2, 11, 10, 0, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cal.Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.input, err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	cal := fixedCalendar(t, time.Date(2026, 3, 4, 8, 30, 0, 0, time.UTC))

	for _, input := range []string{"some_random_text", "", "   "} {
		_, err := cal.Parse(input)
		if err == nil {
			t.Fatalf("Parse(%q) expected error", input)
		}
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("Parse(%q) error = %v, want ErrMalformed", input, err)
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("Parse(%q) error type = %T, want *ParseError", input, err)
		}
	}
}

func TestParseUsesCalendarLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	cal := New(WithClock(FixedClock{At: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}), WithLocation(loc))

	got, err := cal.Parse("2017-02-11 10:00:00")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2017, 2, 11, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Parse = %v, want %v", got, want)
	}
	if got.Location() != loc {
		t.Fatalf("location = %v, want %v", got.Location(), loc)
	}
}

func TestNowTruncatesToSecond(t *testing.T) {
	cal := fixedCalendar(t, time.Date(2026, 3, 4, 8, 30, 15, 999, time.UTC))
	got := cal.Now()
	if got.Nanosecond() != 0 {
		t.Fatalf("Now().Nanosecond() = %d, want 0", got.Nanosecond())
	}
	if got.Second() != 15 {
		t.Fatalf("Now().Second() = %d, want 15", got.Second())
	}
}

func TestBoundaries(t *testing.T) {
	// Wednesday.
	at := time.Date(2026, 2, 25, 10, 42, 7, 0, time.UTC)
	cal := fixedCalendar(t, at)

	tests := []struct {
		name string
		got  time.Time
		want time.Time
	}{
		{"start of hour", cal.StartOfHour(at), time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC)},
		{"end of hour", cal.EndOfHour(at), time.Date(2026, 2, 25, 10, 59, 59, 0, time.UTC)},
		{"start of day", cal.StartOfDay(at), time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC)},
		{"end of day", cal.EndOfDay(at), time.Date(2026, 2, 25, 23, 59, 59, 0, time.UTC)},
		{"start of week", cal.StartOfWeek(at), time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)},
		{"end of week", cal.EndOfWeek(at), time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC)},
		{"start of month", cal.StartOfMonth(at), time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"end of month", cal.EndOfMonth(at), time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.got.Equal(tc.want) {
				t.Fatalf("got %v, want %v", tc.got, tc.want)
			}
		})
	}
}

func TestWeekStartSunday(t *testing.T) {
	at := time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC)
	cal := fixedCalendar(t, at, WithWeekStart(time.Sunday))

	if got, want := cal.StartOfWeek(at), time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("StartOfWeek = %v, want %v", got, want)
	}
	if got, want := cal.EndOfWeek(at), time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("EndOfWeek = %v, want %v", got, want)
	}
	if cal.WeekStart() != time.Sunday {
		t.Fatalf("WeekStart = %v, want Sunday", cal.WeekStart())
	}
}

func TestLoadLocation(t *testing.T) {
	if loc, err := LoadLocation(""); err != nil || loc != time.Local {
		t.Fatalf("LoadLocation(\"\") = %v, %v; want Local", loc, err)
	}
	if loc, err := LoadLocation("UTC"); err != nil || loc != time.UTC {
		t.Fatalf("LoadLocation(UTC) = %v, %v; want UTC", loc, err)
	}
	if _, err := LoadLocation("Not/AZone"); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}

func TestParseWeekday(t *testing.T) {
	tests := map[string]time.Weekday{
		"monday": time.Monday,
		"Sun":    time.Sunday,
		" SAT ":  time.Saturday,
	}
	for input, want := range tests {
		got, err := ParseWeekday(input)
		if err != nil {
			t.Fatalf("ParseWeekday(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseWeekday(%q) = %v, want %v", input, got, want)
		}
	}
	if _, err := ParseWeekday("someday"); err == nil {
		t.Fatal("expected error for unknown weekday")
	}
}
