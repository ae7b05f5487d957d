/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/friendsincode/timeslot/pkg/timeslot"
)

func testSeries(t *testing.T) *timeslot.Collection {
	t.Helper()
	first := timeslot.At(time.Date(2018, 12, 23, 10, 0, 0, 0, time.UTC))
	c, err := timeslot.NewCollection(first, 3)
	if err != nil {
		t.Fatalf("new collection: %v", err)
	}
	return c
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"text": FormatText, " JSON ": FormatJSON, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseFormat(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseFormat("csv"); err == nil {
		t.Fatal("expected error for csv")
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf, FormatJSON).Collection(testSeries(t)); err != nil {
		t.Fatalf("render: %v", err)
	}

	var rows []Row
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[2] != (Row{Start: "2018-12-23 12:00:00", End: "2018-12-23 12:59:59"}) {
		t.Fatalf("rows[2] = %+v", rows[2])
	}
}

func TestYAMLOutput(t *testing.T) {
	s := timeslot.At(time.Date(2017, 2, 11, 10, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	if err := NewWriter(&buf, FormatYAML).Spans(s); err != nil {
		t.Fatalf("render: %v", err)
	}

	var rows []Row
	if err := yaml.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if len(rows) != 1 || rows[0].Start != "2017-02-11 10:00:00" || rows[0].End != "2017-02-11 10:59:59" {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestTextOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf, FormatText).Collection(testSeries(t)); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"START", "END",
		"2018-12-23 10:00:00", "2018-12-23 10:59:59",
		"2018-12-23 12:59:59",
		"3 members, 2018-12-23 10:00:00 - 2018-12-23 12:59:59",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	s := timeslot.At(time.Date(2017, 2, 11, 10, 0, 0, 0, time.UTC))
	if err := NewWriter(&buf, Format("xml")).Spans(s); err == nil {
		t.Fatal("expected error for xml")
	}
}
