// Package providers adapts stock media and Creative Commons search APIs to
// media.Item values.
//
// Adapters never fail: a missing key, a failed request or an unexpected body
// yields no items, and the failure is logged.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"thirdcoast.systems/reelscout/internal/fetch"
	"thirdcoast.systems/reelscout/internal/media"
)

const (
	DefaultLimit = 20
	MaxLimit     = 50
)

// Getter is the fetch collaborator used by the adapters.
type Getter interface {
	GetJSON(ctx context.Context, rawURL string, params url.Values, headers http.Header, out any) error
}

// Options tune a single provider search.
type Options struct {
	// Limit is the number of results requested per endpoint.
	Limit int
	// Video adds video results for providers that have them.
	Video bool
	// PreferVertical asks for portrait media where the provider can filter.
	PreferVertical bool
	SafeSearch     bool
	// LicenseType narrows Openverse results; "" and "any" mean unfiltered.
	LicenseType string
}

func (o Options) limit() int {
	switch {
	case o.Limit <= 0:
		return DefaultLimit
	case o.Limit > MaxLimit:
		return MaxLimit
	default:
		return o.Limit
	}
}

// Source is one searchable provider.
type Source interface {
	Name() string
	Search(ctx context.Context, query string, opts Options) []media.Item
}

func warnFetch(ctx context.Context, provider, endpoint string, err error) {
	slog.WarnContext(ctx, "provider fetch failed", "provider", provider, "endpoint", endpoint, "error", fetch.RedactError(err))
}

// text renders a loosely typed JSON scalar as a string.
func text(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
