package frame

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/ib-77/rop-result/pkg/rop"
)

// Select keeps the named columns in the given order.
func (f *Frame) Select(columns ...string) rop.Result[*Frame, error] {
	return run("select", func() (*Frame, error) {
		if err := f.missing(columns...); err != nil {
			return nil, err
		}
		rows := make([][]any, len(f.rows))
		for i, r := range f.rows {
			row := make([]any, len(columns))
			for j, c := range columns {
				row[j] = r[f.index[c]]
			}
			rows[i] = row
		}
		return newFrame(slices.Clone(columns), rows)
	})
}

// Filter keeps the rows for which predicate holds.
func (f *Frame) Filter(predicate func(Row) bool) rop.Result[*Frame, error] {
	return run("filter", func() (*Frame, error) {
		rows := make([][]any, 0, len(f.rows))
		for i, r := range f.rows {
			if predicate(f.Row(i)) {
				rows = append(rows, r)
			}
		}
		return newFrame(f.columns, rows)
	})
}

// WithColumn adds the column name computed from each row, or replaces it when
// it already exists.
func (f *Frame) WithColumn(name string, fn func(Row) any) rop.Result[*Frame, error] {
	return run("with_column", func() (*Frame, error) {
		columns := f.columns
		j, exists := f.index[name]
		if !exists {
			columns = append(slices.Clone(f.columns), name)
			j = len(f.columns)
		}

		rows := make([][]any, len(f.rows))
		for i, r := range f.rows {
			row := make([]any, len(columns))
			copy(row, r)
			row[j] = fn(f.Row(i))
			rows[i] = row
		}
		return newFrame(columns, rows)
	})
}

// FillNull replaces nil values of column with value.
func (f *Frame) FillNull(column string, value any) rop.Result[*Frame, error] {
	return run("fill_null", func() (*Frame, error) {
		if err := f.missing(column); err != nil {
			return nil, err
		}
		j := f.index[column]
		rows := make([][]any, len(f.rows))
		for i, r := range f.rows {
			row := slices.Clone(r)
			if row[j] == nil {
				row[j] = value
			}
			rows[i] = row
		}
		return newFrame(f.columns, rows)
	})
}

// Join is an inner join on a column present in both frames. Rows with a nil
// key never match. Clashing column names from other get a "_right" suffix.
func (f *Frame) Join(other *Frame, on string) rop.Result[*Frame, error] {
	return run("join", func() (*Frame, error) {
		if err := f.missing(on); err != nil {
			return nil, err
		}
		if err := other.missing(on); err != nil {
			return nil, err
		}

		columns := slices.Clone(f.columns)
		var picked []int
		for j, c := range other.columns {
			if c == on {
				continue
			}
			if f.HasColumn(c) {
				c += "_right"
			}
			columns = append(columns, c)
			picked = append(picked, j)
		}

		lookup := make(map[string][]int)
		rk := other.index[on]
		for i, r := range other.rows {
			if r[rk] == nil {
				continue
			}
			key := keyOf(r[rk])
			lookup[key] = append(lookup[key], i)
		}

		var rows [][]any
		lk := f.index[on]
		for _, l := range f.rows {
			if l[lk] == nil {
				continue
			}
			for _, i := range lookup[keyOf(l[lk])] {
				row := slices.Clone(l)
				for _, j := range picked {
					row = append(row, other.rows[i][j])
				}
				rows = append(rows, row)
			}
		}
		return newFrame(columns, rows)
	})
}

// Agg computes one output column of GroupBy from a group's rows.
type Agg struct {
	Name string
	Fn   func(rows []Row) (any, error)
}

func Count(name string) Agg {
	return Agg{Name: name, Fn: func(rows []Row) (any, error) { return int64(len(rows)), nil }}
}

// Sum adds up a numeric column. nil values are skipped.
func Sum(name, column string) Agg {
	return Agg{Name: name, Fn: func(rows []Row) (any, error) {
		total := 0.0
		for _, r := range rows {
			v, err := toFloat(r[column])
			if err != nil {
				return nil, columnError(column, err)
			}
			total += v
		}
		return total, nil
	}}
}

// GroupBy groups rows by column, keeping first-seen group order, and applies
// aggs to every group.
func (f *Frame) GroupBy(by string, aggs ...Agg) rop.Result[*Frame, error] {
	return run("group_by", func() (*Frame, error) {
		if err := f.missing(by); err != nil {
			return nil, err
		}

		var order []string
		keys := map[string]any{}
		groups := map[string][]Row{}
		for i, r := range f.rows {
			v := r[f.index[by]]
			k := keyOf(v)
			if _, seen := groups[k]; !seen {
				order = append(order, k)
				keys[k] = v
			}
			groups[k] = append(groups[k], f.Row(i))
		}

		columns := []string{by}
		for _, a := range aggs {
			columns = append(columns, a.Name)
		}

		rows := make([][]any, 0, len(order))
		for _, k := range order {
			row := []any{keys[k]}
			for _, a := range aggs {
				v, err := a.Fn(groups[k])
				if err != nil {
					return nil, err
				}
				row = append(row, v)
			}
			rows = append(rows, row)
		}
		return newFrame(columns, rows)
	})
}

func keyOf(v any) string {
	return fmt.Sprintf("%T:%v", v, v)
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case string:
		return strconv.ParseFloat(n, 64)
	}
	return 0, fmt.Errorf("not a number: %v (%T)", v, v)
}
