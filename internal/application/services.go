// Package application wires configuration into the search services shared by
// the web server and the CLI.
package application

import (
	"context"
	"fmt"
	"log/slog"

	"thirdcoast.systems/reelscout/internal/backend"
	"thirdcoast.systems/reelscout/internal/config"
	"thirdcoast.systems/reelscout/internal/fetch"
	"thirdcoast.systems/reelscout/internal/providers"
	"thirdcoast.systems/reelscout/internal/search"
)

const cacheRetries = 3

type Services struct {
	Finder     *search.AssetFinder
	Videos     *backend.Client
	Workspaces *search.WorkspaceStore

	cache *fetch.RedisCache
}

// New builds the provider adapters, the backend client and the workspace
// store from conf. A configured but unreachable cache is an error.
func New(ctx context.Context, conf config.Config) (*Services, error) {
	fetchOpts := []fetch.Option{fetch.WithUserAgent(conf.UserAgent)}

	var cache *fetch.RedisCache
	if conf.RedisURL != "" {
		c, err := OpenCacheWithRetry(ctx, conf.RedisURL, cacheRetries)
		if err != nil {
			return nil, err
		}
		cache = c
		fetchOpts = append(fetchOpts, fetch.WithCache(cache, conf.CacheTTL))
		slog.Info("response cache enabled", "ttl", conf.CacheTTL)
	}

	fc := fetch.NewClient(conf.FetchTimeout, fetchOpts...)

	yt, err := providers.NewYouTube(ctx, fc.HTTPClient(), conf.YouTubeAPIKey, "")
	if err != nil {
		if cache != nil {
			_ = cache.Close()
		}
		return nil, fmt.Errorf("youtube adapter: %w", err)
	}

	finder := search.NewAssetFinder(
		providers.NewWikimedia(fc, conf.WikidataLanguage),
		providers.NewPexels(fc, conf.PexelsKey),
		providers.NewPixabay(fc, conf.PixabayKey),
		providers.NewOpenverse(fc),
		yt,
	)

	bc := fetch.NewClient(conf.BackendTimeout, fetch.WithUserAgent(conf.UserAgent))

	return &Services{
		Finder:     finder,
		Videos:     backend.NewClient(bc, conf.SearchEndpoint),
		Workspaces: search.NewWorkspaceStore(conf.WorkspaceTTL),
		cache:      cache,
	}, nil
}

func (s *Services) Close() {
	if s.cache != nil {
		_ = s.cache.Close()
	}
}
