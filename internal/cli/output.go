package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacksmith/todo/internal/model"
	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// colorEnabled tracks whether color output is enabled.
// It defaults to terminal detection on stdout.
var colorEnabled = IsTerminal(os.Stdout)

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// SetColorMode applies a color mode ("auto", "always" or "never").
// In auto mode color is enabled only when w is a terminal.
func SetColorMode(mode string, w io.Writer) {
	switch mode {
	case "always":
		colorEnabled = true
	case "never":
		colorEnabled = false
	default:
		colorEnabled = IsTerminal(w)
	}
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func colorize(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string { return colorize(colorGreen, s) }

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string { return colorize(colorGray, s) }

// Bold returns s wrapped in bold ANSI codes if colors are enabled.
func Bold(s string) string { return colorize(colorBold, s) }

// DefaultMaxTitleWidth is the default maximum visible width for title columns.
const DefaultMaxTitleWidth = 60

// Table formats columnar output with automatic column width calculation.
type Table struct {
	rows      [][]string
	colWidths []int
	maxWidths map[int]int // optional per-column max visible width
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{maxWidths: make(map[int]int)}
}

// SetMaxWidth caps the visible width of a column.
// Longer content is truncated with "...".
func (t *Table) SetMaxWidth(col, maxWidth int) {
	t.maxWidths[col] = maxWidth
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		width := visibleWidth(col)
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		if width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}
	t.rows = append(t.rows, cols)
}

// Render writes the table to w with columns separated by two spaces.
// The last column is never padded.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		parts := make([]string, len(row))
		for i, col := range row {
			if maxW, ok := t.maxWidths[i]; ok {
				col = Truncate(col, maxW)
			}
			if i < len(row)-1 {
				col += strings.Repeat(" ", t.colWidths[i]-visibleWidth(col))
			}
			parts[i] = col
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
}

// Truncate returns s cut to maxWidth visible characters, ending in "..."
// when there is room for it. ANSI escape codes are kept and a reset is
// appended if any were present.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	const ellipsis = "..."
	limit, tail := maxWidth, ""
	if maxWidth >= len(ellipsis) {
		limit, tail = maxWidth-len(ellipsis), ellipsis
	}

	var b strings.Builder
	visible := 0
	inEscape, hasAnsi := false, false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape, hasAnsi = true, true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case visible >= limit:
			continue
		default:
			visible++
		}
		b.WriteRune(r)
	}

	b.WriteString(tail)
	if hasAnsi {
		b.WriteString(colorReset)
	}
	return b.String()
}

// visibleWidth returns the visible width of s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			width++
		}
	}
	return width
}

// FormatStatus returns the bracketed, colored status of a todo.
func FormatStatus(t *model.Todo) string {
	if t.Completed {
		return Green("[complete]")
	}
	return Gray("[incomplete]")
}

// RenderTodos writes todos as an ID / status / title table.
func RenderTodos(w io.Writer, todos []model.Todo) {
	table := NewTable()
	table.SetMaxWidth(2, DefaultMaxTitleWidth)
	table.AddRow(Bold("ID"), Bold("STATUS"), Bold("TITLE"))
	for i := range todos {
		table.AddRow(model.FormatID(todos[i].ID), FormatStatus(&todos[i]), todos[i].Title)
	}
	table.Render(w)
}
