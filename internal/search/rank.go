package search

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"thirdcoast.systems/reelscout/internal/table"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// RankOptions describe how a view is built from a raw table.
type RankOptions struct {
	// UseScore adds the composite score and sorts by it first.
	UseScore bool `json:"use_score"`
	// Weights are used as given, zeros included. Nil means the defaults.
	Weights *table.Weights `json:"weights,omitempty"`
	// Primary defaults to publishedAt, or the first column without one.
	Primary      string `json:"primary"`
	PrimaryOrder string `json:"primary_order" validate:"omitempty,oneof=asc desc"`
	// Secondary is optional and ascending unless stated.
	Secondary      string `json:"secondary"`
	SecondaryOrder string `json:"secondary_order" validate:"omitempty,oneof=asc desc"`

	Now time.Time `json:"-"`
}

// BuildView derives a sorted, optionally scored view from raw. raw itself
// is left untouched.
func BuildView(raw table.Table, opts RankOptions) table.Table {
	view := raw.Clone()
	if len(view.Columns) == 0 {
		return view
	}

	var keys []table.SortKey
	if opts.UseScore {
		w := table.DefaultWeights()
		if opts.Weights != nil {
			w = *opts.Weights
		}
		now := opts.Now
		if now.IsZero() {
			now = time.Now()
		}
		view = table.AddCompositeScore(view, w, now)
		keys = append(keys, table.SortKey{Column: "score", Desc: true})
	}

	primary := opts.Primary
	if !view.Has(primary) {
		primary = defaultPrimary(view)
	}
	keys = append(keys, table.SortKey{Column: primary, Desc: opts.PrimaryOrder != OrderAsc})

	if opts.Secondary != "" && opts.Secondary != primary {
		keys = append(keys, table.SortKey{Column: opts.Secondary, Desc: opts.SecondaryOrder == OrderDesc})
	}
	return table.Sort(view, keys...)
}

func defaultPrimary(t table.Table) string {
	if t.Has("publishedAt") {
		return "publishedAt"
	}
	return t.Columns[0]
}

var rankValidator = validator.New()

// ValidateRank checks the sort orders and weights of opts.
func ValidateRank(opts RankOptions) error {
	if err := rankValidator.Struct(opts); err != nil {
		return fmt.Errorf("invalid rank options: %w", err)
	}
	return nil
}
