// Package ui renders console output for objectifiedctl.
package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// MaxCellWidth truncates long cells such as descriptions.
const MaxCellWidth = 48

type Table struct {
	w       io.Writer
	headers []string
	rows    [][]string
	noColor bool
}

func NewTable(w io.Writer, noColor bool, headers ...string) *Table {
	return &Table{w: w, headers: headers, noColor: noColor}
}

func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = truncate(cells[i], MaxCellWidth)
		}
	}
	t.rows = append(t.rows, row)
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], width(cell))
		}
	}

	head := t.color(color.Bold, color.FgCyan)
	rule := t.color(color.FgHiBlack)
	for i, h := range t.headers {
		head.Fprint(t.w, pad(h, widths[i], i == len(widths)-1))
	}
	fmt.Fprintln(t.w)
	for i, wd := range widths {
		sep := "  "
		if i == len(widths)-1 {
			sep = ""
		}
		rule.Fprint(t.w, strings.Repeat("─", wd)+sep)
	}
	fmt.Fprintln(t.w)
	for _, row := range t.rows {
		for i, cell := range row {
			fmt.Fprint(t.w, pad(cell, widths[i], i == len(row)-1))
		}
		fmt.Fprintln(t.w)
	}
	if len(t.rows) == 0 {
		t.color(color.FgHiBlack).Fprintln(t.w, "(no rows)")
	}
}

func (t *Table) color(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if t.noColor {
		c.DisableColor()
	}
	return c
}

// Details renders one record as aligned "key: value" lines.
type Details struct {
	w       io.Writer
	keys    []string
	values  []string
	noColor bool
}

func NewDetails(w io.Writer, noColor bool) *Details {
	return &Details{w: w, noColor: noColor}
}

func (d *Details) Add(key, value string) {
	d.keys = append(d.keys, key)
	d.values = append(d.values, value)
}

func (d *Details) Render() {
	kw := 0
	for _, k := range d.keys {
		kw = max(kw, width(k)+1)
	}
	key := color.New(color.FgCyan)
	if d.noColor {
		key.DisableColor()
	}
	for i, k := range d.keys {
		key.Fprint(d.w, pad(k+":", kw, false))
		fmt.Fprintln(d.w, d.values[i])
	}
}

// Success prints a green confirmation line.
func Success(w io.Writer, noColor bool, format string, a ...any) {
	c := color.New(color.FgGreen)
	if noColor {
		c.DisableColor()
	}
	c.Fprintf(w, format+"\n", a...)
}

func width(s string) int {
	return utf8.RuneCountInString(s)
}

// pad right-aligns s to n runes followed by the column gap, unless s is the last column.
func pad(s string, n int, last bool) string {
	if last {
		return s
	}
	return s + strings.Repeat(" ", n-width(s)+2)
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if width(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
