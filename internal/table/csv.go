package table

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"thirdcoast.systems/reelscout/pkg/utils/format"
)

// WriteCSV writes the table with a header row. Nested values are written as
// JSON and nulls as empty cells.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	record := make([]string, len(t.Columns))
	for _, r := range t.Rows {
		for i, c := range t.Columns {
			record[i] = csvCell(r[c])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvCell(v any) string {
	switch v.(type) {
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
	if IsNull(v) {
		return ""
	}
	return format.Cell(v)
}

// ReadCSV reads a table whose first record is the header. Empty cells read
// as null and every other cell stays a string until Normalize coerces it.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return Table{}, nil
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	seen := map[string]bool{}
	for _, h := range header {
		if seen[h] {
			return Table{}, fmt.Errorf("read csv: duplicate column %q", h)
		}
		seen[h] = true
	}

	t := Table{Columns: header, Rows: make([]Row, 0, len(records)-1)}
	for _, rec := range records[1:] {
		row := make(Row, len(header))
		for i, h := range header {
			if rec[i] == "" {
				row[h] = nil
			} else {
				row[h] = rec[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
