package frame

import (
	"fmt"
	"iter"
	"slices"
	"sort"

	"github.com/ib-77/rop-result/pkg/rop"
)

// Frame is an immutable table. Operations return new frames.
type Frame struct {
	columns []string
	index   map[string]int
	rows    [][]any
}

// Row is a by-name view of one row.
type Row map[string]any

func newFrame(columns []string, rows [][]any) (*Frame, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := index[c]; dup {
			return nil, columnError(c, ErrDuplicateColumn)
		}
		index[c] = i
	}
	for i, r := range rows {
		if len(r) != len(columns) {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", i, len(r), len(columns), ErrShape)
		}
	}
	return &Frame{columns: columns, index: index, rows: rows}, nil
}

// New builds a frame from column names and row values. The inputs are copied.
func New(columns []string, rows [][]any) rop.Result[*Frame, error] {
	return run("new", func() (*Frame, error) {
		copied := make([][]any, len(rows))
		for i, r := range rows {
			copied[i] = slices.Clone(r)
		}
		return newFrame(slices.Clone(columns), copied)
	})
}

// FromRecords builds a frame from row maps. Columns are the sorted union of
// all keys; a key missing from a record yields nil.
func FromRecords(records []map[string]any) rop.Result[*Frame, error] {
	return run("from_records", func() (*Frame, error) {
		return fromRecords(records)
	})
}

func fromRecords(records []map[string]any) (*Frame, error) {
	seen := map[string]struct{}{}
	for _, rec := range records {
		for k := range rec {
			seen[k] = struct{}{}
		}
	}
	columns := make([]string, 0, len(seen))
	for k := range seen {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	rows := make([][]any, len(records))
	for i, rec := range records {
		row := make([]any, len(columns))
		for j, c := range columns {
			row[j] = rec[c]
		}
		rows[i] = row
	}
	return newFrame(columns, rows)
}

// FromMap builds a frame from column slices, which must share one length.
// Columns are sorted by name.
func FromMap(data map[string][]any) rop.Result[*Frame, error] {
	return run("from_map", func() (*Frame, error) {
		columns := make([]string, 0, len(data))
		for k := range data {
			columns = append(columns, k)
		}
		sort.Strings(columns)

		height := -1
		for _, c := range columns {
			if height >= 0 && len(data[c]) != height {
				return nil, columnError(c, ErrShape)
			}
			height = len(data[c])
		}
		if height < 0 {
			height = 0
		}

		rows := make([][]any, height)
		for i := range rows {
			row := make([]any, len(columns))
			for j, c := range columns {
				row[j] = data[c][i]
			}
			rows[i] = row
		}
		return newFrame(columns, rows)
	})
}

func (f *Frame) Columns() []string {
	return slices.Clone(f.columns)
}

func (f *Frame) Height() int {
	return len(f.rows)
}

func (f *Frame) Width() int {
	return len(f.columns)
}

func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

func (f *Frame) Row(i int) Row {
	row := make(Row, len(f.columns))
	for j, c := range f.columns {
		row[c] = f.rows[i][j]
	}
	return row
}

func (f *Frame) Rows() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i := range f.rows {
			if !yield(i, f.Row(i)) {
				return
			}
		}
	}
}

// Column returns a copy of the named column's values.
func (f *Frame) Column(name string) ([]any, bool) {
	j, ok := f.index[name]
	if !ok {
		return nil, false
	}
	values := make([]any, len(f.rows))
	for i, r := range f.rows {
		values[i] = r[j]
	}
	return values, true
}

func (f *Frame) String() string {
	return Summary(f)
}

func (f *Frame) missing(columns ...string) error {
	for _, c := range columns {
		if !f.HasColumn(c) {
			return columnError(c, ErrColumnNotFound)
		}
	}
	return nil
}
