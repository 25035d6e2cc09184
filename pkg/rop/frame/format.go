package frame

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
)

const (
	defaultMaxRows       = 50
	defaultTruncatedRows = 30
	defaultStringLength  = 500
)

type formatOptions struct {
	maxRows       int
	truncatedRows int
	stringLength  int
}

type FormatOption func(*formatOptions)

// WithMaxRows sets the height above which the output is truncated.
func WithMaxRows(n int) FormatOption {
	return func(o *formatOptions) {
		if n > 0 {
			o.maxRows = n
		}
	}
}

// WithTruncatedRows sets how many rows are shown once truncation kicks in.
func WithTruncatedRows(n int) FormatOption {
	return func(o *formatOptions) {
		if n > 0 {
			o.truncatedRows = n
		}
	}
}

// WithStringLength caps the rendered width of a single cell.
func WithStringLength(n int) FormatOption {
	return func(o *formatOptions) {
		if n > 0 {
			o.stringLength = n
		}
	}
}

// Format renders f as a text table. Frames taller than the row threshold show
// only their first rows followed by a "... N more rows" line.
func Format(f *Frame, opts ...FormatOption) string {
	o := formatOptions{
		maxRows:       defaultMaxRows,
		truncatedRows: defaultTruncatedRows,
		stringLength:  defaultStringLength,
	}
	for _, opt := range opts {
		opt(&o)
	}

	shown := len(f.rows)
	if shown > o.maxRows {
		shown = min(o.truncatedRows, shown)
	}

	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader(f.columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for _, r := range f.rows[:shown] {
		cells := make([]string, len(r))
		for j, v := range r {
			cells[j] = truncate(displayCell(v), o.stringLength)
		}
		table.Append(cells)
	}
	table.Render()

	if rest := len(f.rows) - shown; rest > 0 {
		fmt.Fprintf(&sb, "... %d more rows (%d total)\n", rest, len(f.rows))
	}
	return sb.String()
}

const summaryColumns = 5

// Summary is the one-line form, e.g. DataFrame(3x2 [id, name]). Only the
// first five column names are listed.
func Summary(f *Frame) string {
	cols := strings.Join(f.columns[:min(len(f.columns), summaryColumns)], ", ")
	if rest := len(f.columns) - summaryColumns; rest > 0 {
		cols += fmt.Sprintf(", … +%d", rest)
	}
	return fmt.Sprintf("DataFrame(%dx%d [%s])", f.Height(), f.Width(), cols)
}

func displayCell(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprint(v)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
