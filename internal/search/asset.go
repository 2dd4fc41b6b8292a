// Package search runs the two search flows: stock asset lookups across the
// media providers, and YouTube result tables that are imported or fetched
// and then re-ranked.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"thirdcoast.systems/reelscout/internal/media"
	"thirdcoast.systems/reelscout/internal/providers"
)

// SourceOrder is the order provider results are concatenated in.
var SourceOrder = []string{
	media.ProviderWikimedia,
	media.ProviderPexels,
	media.ProviderPixabay,
	media.ProviderOpenverse,
	media.ProviderYouTube,
}

// AssetQuery selects sources and filters for one asset search.
type AssetQuery struct {
	Query   string   `json:"query" validate:"required"`
	Types   []string `json:"types" validate:"dive,oneof=photo video"`
	Sources []string `json:"sources" validate:"dive,oneof=wikimedia pexels pixabay openverse youtube"`
	// Person enables the Wikidata portrait (P18) lookup.
	Person         bool   `json:"person"`
	Limit          int    `json:"limit" validate:"min=1,max=50"`
	PreferVertical bool   `json:"prefer_vertical"`
	SafeSearch     bool   `json:"safe_search"`
	LicenseType    string `json:"license_type" validate:"omitempty,oneof=any cc0 by by-sa by-nc by-nd by-nc-sa by-nc-nd"`
}

// DefaultAssetQuery returns a query for q with every source and media type
// enabled, the portrait lookup on, vertical media preferred and safe search
// on.
func DefaultAssetQuery(q string) AssetQuery {
	return AssetQuery{
		Query:          q,
		Types:          []string{media.TypePhoto, media.TypeVideo},
		Sources:        slices.Clone(SourceOrder),
		Person:         true,
		Limit:          providers.DefaultLimit,
		PreferVertical: true,
		SafeSearch:     true,
		LicenseType:    "any",
	}
}

func (q AssetQuery) wants(kind string) bool { return slices.Contains(q.Types, kind) }

func (q AssetQuery) uses(source string) bool { return slices.Contains(q.Sources, source) }

// enabled reports whether source takes part in q.
func (q AssetQuery) enabled(source string) bool {
	if !q.uses(source) {
		return false
	}
	switch source {
	case media.ProviderWikimedia:
		return q.Person
	case media.ProviderOpenverse:
		return q.wants(media.TypePhoto)
	case media.ProviderYouTube:
		return q.wants(media.TypeVideo)
	default:
		return q.wants(media.TypePhoto) || q.wants(media.TypeVideo)
	}
}

// AssetFinder fans an asset query out to the registered providers.
type AssetFinder struct {
	sources  map[string]providers.Source
	validate *validator.Validate
}

func NewAssetFinder(sources ...providers.Source) *AssetFinder {
	f := &AssetFinder{
		sources:  make(map[string]providers.Source, len(sources)),
		validate: validator.New(),
	}
	for _, s := range sources {
		f.sources[s.Name()] = s
	}
	return f
}

// Validate trims q and checks it.
func (f *AssetFinder) Validate(q AssetQuery) (AssetQuery, error) {
	q.Query = strings.TrimSpace(q.Query)
	if err := f.validate.Struct(q); err != nil {
		return q, fmt.Errorf("invalid asset query: %w", err)
	}
	return q, nil
}

// Find queries every enabled provider concurrently and returns the scored,
// deduplicated results, best first. Provider failures only shrink the
// result.
func (f *AssetFinder) Find(ctx context.Context, q AssetQuery) ([]media.Item, error) {
	q, err := f.Validate(q)
	if err != nil {
		return nil, err
	}

	opts := providers.Options{
		Limit:          q.Limit,
		Video:          q.wants(media.TypeVideo),
		PreferVertical: q.PreferVertical,
		SafeSearch:     q.SafeSearch,
		LicenseType:    q.LicenseType,
	}

	results := make([][]media.Item, len(SourceOrder))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range SourceOrder {
		src, ok := f.sources[name]
		if !ok || !q.enabled(name) {
			continue
		}
		g.Go(func() error {
			results[i] = src.Search(gctx, q.Query, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var items []media.Item
	for _, r := range results {
		items = append(items, r...)
	}
	ranked := media.Rank(items, q.PreferVertical)
	slog.InfoContext(ctx, "asset search finished", "query", q.Query, "found", len(items), "kept", len(ranked))
	return ranked, nil
}
