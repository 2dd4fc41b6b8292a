package providers

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"thirdcoast.systems/reelscout/internal/media"
)

const openverseBaseURL = "https://api.openverse.org"

// Openverse searches openly licensed images. It needs no key.
type Openverse struct {
	fetch   Getter
	baseURL string
}

func NewOpenverse(fetch Getter) *Openverse {
	return &Openverse{fetch: fetch, baseURL: openverseBaseURL}
}

func (o *Openverse) Name() string { return media.ProviderOpenverse }

type openverseImage struct {
	URL               string  `json:"url"`
	Thumbnail         string  `json:"thumbnail"`
	Width             int     `json:"width"`
	Height            int     `json:"height"`
	License           string  `json:"license"`
	Attribution       *string `json:"attribution"`
	ForeignLandingURL string  `json:"foreign_landing_url"`
}

type openversePage struct {
	Results []openverseImage `json:"results"`
}

// Search returns images only; opts.Video is ignored.
func (o *Openverse) Search(ctx context.Context, query string, opts Options) []media.Item {
	params := url.Values{
		"q":         {query},
		"page_size": {strconv.Itoa(opts.limit())},
	}
	if lt := strings.TrimSpace(opts.LicenseType); lt != "" && lt != "any" {
		params.Set("license_type", lt)
	}

	var page openversePage
	if err := o.fetch.GetJSON(ctx, o.baseURL+"/v1/images/", params, nil, &page); err != nil {
		warnFetch(ctx, o.Name(), "images", err)
		return nil
	}

	out := make([]media.Item, 0, len(page.Results))
	for _, r := range page.Results {
		attribution := "Openverse"
		if r.Attribution != nil {
			attribution = *r.Attribution
		}
		source := r.ForeignLandingURL
		if source == "" {
			source = r.URL
		}
		out = append(out, media.Item{
			Provider:    media.ProviderOpenverse,
			Type:        media.TypePhoto,
			Preview:     r.Thumbnail,
			Download:    r.URL,
			Width:       media.Int(r.Width),
			Height:      media.Int(r.Height),
			License:     strings.ToUpper(r.License),
			Attribution: attribution,
			SourceURL:   source,
		})
	}
	return out
}
