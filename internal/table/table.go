// Package table holds the tabular form of video search results and the pure
// transformations that take a raw search or import to a ranked view.
//
// Every exported operation returns a new Table and leaves its input alone, so
// callers can keep an unscored raw table next to any number of views.
package table

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
)

// Row is one record keyed by column name. A missing key reads as null.
type Row map[string]any

// Table is an ordered set of columns and the rows that carry them.
type Table struct {
	Columns []string
	Rows    []Row
}

// New builds a table from columns and rows. Rows are copied.
func New(columns []string, rows []Row) Table {
	t := Table{Columns: slices.Clone(columns), Rows: make([]Row, 0, len(rows))}
	for _, r := range rows {
		t.Rows = append(t.Rows, maps.Clone(r))
	}
	return t
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }

// Empty reports whether the table has no rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// Has reports whether col is one of the table's columns.
func (t Table) Has(col string) bool { return slices.Contains(t.Columns, col) }

// Column returns the values of col in row order. Missing columns yield nils.
func (t Table) Column(col string) []any {
	out := make([]any, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r[col]
	}
	return out
}

// Values returns the rows as positional value lists aligned with Columns.
func (t Table) Values() [][]any {
	out := make([][]any, len(t.Rows))
	for i, r := range t.Rows {
		vals := make([]any, len(t.Columns))
		for j, c := range t.Columns {
			vals[j] = r[c]
		}
		out[i] = vals
	}
	return out
}

// Clone returns a copy whose column list and row maps can be modified freely.
func (t Table) Clone() Table {
	return New(t.Columns, t.Rows)
}

// set assigns fn(row) to col on every row, appending col when it is new.
// Callers must own t (see Clone).
func (t *Table) set(col string, fn func(Row) any) {
	if !t.Has(col) {
		t.Columns = append(t.Columns, col)
	}
	for _, r := range t.Rows {
		r[col] = fn(r)
	}
}

type columnar struct {
	Columns []string `json:"columns"`
	Values  [][]any  `json:"values"`
}

// MarshalJSON encodes the table in the columnar {"columns","values"} shape.
func (t Table) MarshalJSON() ([]byte, error) {
	cols := t.Columns
	if cols == nil {
		cols = []string{}
	}
	return json.Marshal(columnar{Columns: cols, Values: t.Values()})
}

// UnmarshalJSON accepts any payload FromResponse understands.
func (t *Table) UnmarshalJSON(b []byte) error {
	payload, err := DecodeJSON(bytes.NewReader(b))
	if err != nil {
		return err
	}
	*t = FromResponse(payload)
	return nil
}
