package table

import (
	"slices"
	"sort"
)

// wrapperKeys are probed in order for the result list of a wrapped payload.
var wrapperKeys = []string{"items", "results", "data"}

// FromResponse turns an arbitrary decoded JSON payload into a table. It
// understands the columnar {"columns","values"} shape, lists wrapped under
// items/results/data, bare lists of objects or scalars, and single objects.
// Anything else becomes an empty table.
func FromResponse(payload any) Table {
	if obj := object(payload); obj != nil {
		cols, hasCols := obj["columns"]
		vals, hasVals := obj["values"]
		if hasCols && hasVals {
			return fromColumnar(cols, vals)
		}
	}

	candidate := payload
	if obj := object(payload); obj != nil {
		candidate = nil
		for _, k := range wrapperKeys {
			if v, ok := obj[k]; ok && v != nil {
				candidate = v
				break
			}
		}
	}

	switch c := candidate.(type) {
	case []any:
		if len(c) > 0 {
			if _, ok := c[0].(map[string]any); ok {
				return fromRecords(c)
			}
		}
		rows := make([]Row, len(c))
		for i, v := range c {
			rows[i] = Row{"value": v}
		}
		return Table{Columns: []string{"value"}, Rows: rows}
	case map[string]any:
		return fromRecords([]any{c})
	}
	return Table{}
}

func fromColumnar(rawCols, rawVals any) Table {
	colList, ok := rawCols.([]any)
	if !ok {
		return Table{}
	}
	cols := make([]string, 0, len(colList))
	for _, c := range colList {
		name, ok := c.(string)
		if !ok || slices.Contains(cols, name) {
			return Table{}
		}
		cols = append(cols, name)
	}

	valList, ok := rawVals.([]any)
	if !ok {
		return Table{}
	}
	rows := make([]Row, 0, len(valList))
	for _, rv := range valList {
		vals, ok := rv.([]any)
		if !ok || len(vals) > len(cols) {
			return Table{}
		}
		row := make(Row, len(cols))
		for i, c := range cols {
			if i < len(vals) {
				row[c] = vals[i]
			} else {
				row[c] = nil
			}
		}
		rows = append(rows, row)
	}
	return Table{Columns: cols, Rows: rows}
}

// fromRecords flattens nested objects into dotted column names. Columns
// appear in first-seen order across records; keys within one object are
// visited in sorted order since decoded objects carry no key order.
func fromRecords(records []any) Table {
	var cols []string
	seen := map[string]bool{}
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		row := Row{}
		if obj := object(rec); obj != nil {
			flattenInto(row, "", obj, func(name string) {
				if !seen[name] {
					seen[name] = true
					cols = append(cols, name)
				}
			})
		}
		rows = append(rows, row)
	}
	for _, r := range rows {
		for _, c := range cols {
			if _, ok := r[c]; !ok {
				r[c] = nil
			}
		}
	}
	return Table{Columns: cols, Rows: rows}
}

func flattenInto(row Row, prefix string, obj map[string]any, see func(string)) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}
		if nested, ok := obj[k].(map[string]any); ok && len(nested) > 0 {
			flattenInto(row, name, nested, see)
			continue
		}
		see(name)
		row[name] = obj[k]
	}
}
