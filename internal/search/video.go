package search

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"thirdcoast.systems/reelscout/internal/backend"
	"thirdcoast.systems/reelscout/internal/table"
)

// Searcher runs a hosted video search.
type Searcher interface {
	Search(ctx context.Context, req backend.Request) (table.Table, error)
}

// Import reads a CSV or JSON result file into a prepared table. Files
// named *.csv are read as CSV and anything else as JSON. JSON holding
// YouTube Data API resources is flattened; other JSON is unwrapped.
func Import(r io.Reader, name string) (table.Table, error) {
	if strings.EqualFold(filepath.Ext(name), ".csv") {
		t, err := table.ReadCSV(r)
		if err != nil {
			return table.Table{}, fmt.Errorf("import %s: %w", name, err)
		}
		return table.Prepare(t), nil
	}
	payload, err := table.DecodeJSON(r)
	if err != nil {
		return table.Table{}, fmt.Errorf("import %s: %w", name, err)
	}
	return ImportPayload(payload), nil
}

// ImportJSON parses raw JSON text such as a pasted API response.
func ImportJSON(raw []byte) (table.Table, error) {
	return Import(bytes.NewReader(raw), "pasted.json")
}

// ImportPayload turns a decoded JSON payload into a prepared table.
func ImportPayload(payload any) table.Table {
	if items, ok := table.LooksLikeItems(payload); ok {
		return table.Prepare(table.FlattenItems(items))
	}
	return table.Prepare(table.FromResponse(payload))
}
