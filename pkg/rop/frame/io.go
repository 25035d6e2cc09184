package frame

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/rop-result/pkg/rop"
)

// ReadCSV parses a CSV stream whose first record is the header. Empty cells
// become nil; integers and floats are inferred.
func ReadCSV(r io.Reader) rop.Result[*Frame, error] {
	return run("read_csv", func() (*Frame, error) {
		records, err := csv.NewReader(r).ReadAll()
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, errors.New("missing header")
		}

		rows := make([][]any, len(records)-1)
		for i, rec := range records[1:] {
			row := make([]any, len(rec))
			for j, cell := range rec {
				row[j] = inferCell(cell)
			}
			rows[i] = row
		}
		return newFrame(records[0], rows)
	})
}

// ReadJSON parses a JSON array of objects.
func ReadJSON(r io.Reader) rop.Result[*Frame, error] {
	return run("read_json", func() (*Frame, error) {
		dec := json.NewDecoder(r)
		dec.UseNumber()

		var records []map[string]any
		if err := dec.Decode(&records); err != nil {
			return nil, err
		}
		for _, rec := range records {
			for k, v := range rec {
				rec[k] = normalize(v)
			}
		}
		return fromRecords(records)
	})
}

// ReadYAML parses a YAML sequence of mappings.
func ReadYAML(r io.Reader) rop.Result[*Frame, error] {
	return run("read_yaml", func() (*Frame, error) {
		var records []map[string]any
		if err := yaml.NewDecoder(r).Decode(&records); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		for _, rec := range records {
			for k, v := range rec {
				rec[k] = normalize(v)
			}
		}
		return fromRecords(records)
	})
}

// WriteCSV writes the header and every row. nil is written as an empty cell.
func WriteCSV(w io.Writer, f *Frame) rop.Result[int, error] {
	return run("write_csv", func() (int, error) {
		cw := csv.NewWriter(w)
		if err := cw.Write(f.columns); err != nil {
			return 0, err
		}
		for _, r := range f.rows {
			rec := make([]string, len(r))
			for j, v := range r {
				rec[j] = cellString(v)
			}
			if err := cw.Write(rec); err != nil {
				return 0, err
			}
		}
		cw.Flush()
		return len(f.rows), cw.Error()
	})
}

// WriteJSON writes the frame as an array of objects.
func WriteJSON(w io.Writer, f *Frame) rop.Result[int, error] {
	return run("write_json", func() (int, error) {
		records := make([]Row, 0, len(f.rows))
		for _, row := range f.Rows() {
			records = append(records, row)
		}
		if err := json.NewEncoder(w).Encode(records); err != nil {
			return 0, err
		}
		return len(records), nil
	})
}

func inferCell(cell string) any {
	if cell == "" {
		return nil
	}
	if n, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return n
	}
	if x, err := strconv.ParseFloat(cell, 64); err == nil {
		return x
	}
	return cell
}

// normalize maps decoder number types onto int64 and float64 so frames read
// from different formats compare equal.
func normalize(v any) any {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if x, err := n.Float64(); err == nil {
			return x
		}
		return n.String()
	case int:
		return int64(n)
	case uint64:
		return float64(n)
	}
	return v
}

func cellString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
