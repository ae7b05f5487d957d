/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package render prints slot boundaries for the CLI.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/friendsincode/timeslot/pkg/timeslot"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format %q (want text, json or yaml)", name)
}

// Row is one printed span. Start and End use Layout.
type Row struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// Layout is the time layout used for every format.
const Layout = time.DateTime

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	indexStyle  = lipgloss.NewStyle().Width(5)
	timeStyle   = lipgloss.NewStyle().Width(22)
)

// Writer renders spans to an io.Writer.
type Writer struct {
	out    io.Writer
	format Format
}

// NewWriter returns a Writer for format.
func NewWriter(out io.Writer, format Format) *Writer {
	return &Writer{out: out, format: format}
}

// Spans prints one row per span.
func (w *Writer) Spans(spans ...timeslot.Span) error {
	rows := make([]Row, 0, len(spans))
	for _, s := range spans {
		rows = append(rows, Row{
			Start: s.Start().Format(Layout),
			End:   s.End().Format(Layout),
		})
	}

	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return w.text(rows)
	}
	return fmt.Errorf("unsupported output format %q", w.format)
}

func (w *Writer) text(rows []Row) error {
	var b strings.Builder
	b.WriteString(headerStyle.Render(indexStyle.Render("#") + timeStyle.Render("START") + timeStyle.Render("END")))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", 49))
	b.WriteString("\n")
	for i, r := range rows {
		b.WriteString(indexStyle.Render(strconv.Itoa(i)))
		b.WriteString(timeStyle.Render(r.Start))
		b.WriteString(timeStyle.Render(r.End))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w.out, b.String())
	return err
}

// Collection prints every slot of c, nested ones flattened, followed by a
// summary of the aggregate span when the format is text.
func (w *Writer) Collection(c *timeslot.Collection) error {
	slots := c.Slots()
	spans := make([]timeslot.Span, 0, len(slots))
	for _, s := range slots {
		spans = append(spans, s)
	}
	if err := w.Spans(spans...); err != nil {
		return err
	}
	if w.format != FormatText && w.format != "" {
		return nil
	}
	_, err := fmt.Fprintf(w.out, "\n%d members, %s - %s\n",
		c.Count(), c.Start().Format(Layout), c.End().Format(Layout))
	return err
}
