package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"thirdcoast.systems/reelscout/internal/backend"
	"thirdcoast.systems/reelscout/internal/config"
	"thirdcoast.systems/reelscout/internal/search"
)

func testConfig() config.Config {
	return config.Config{
		WebServerPort:    8080,
		FetchTimeout:     time.Second,
		BackendTimeout:   time.Second,
		WikidataLanguage: "en",
		WorkspaceTTL:     time.Hour,
	}
}

func TestNew_WithoutCache(t *testing.T) {
	svc, err := New(context.Background(), testConfig())
	require.NoError(t, err)
	defer svc.Close()

	require.NotNil(t, svc.Finder)
	require.NotNil(t, svc.Videos)
	require.NotNil(t, svc.Workspaces)
	require.Nil(t, svc.cache)

	// no keys and no endpoint: searches degrade instead of failing
	q := search.DefaultAssetQuery("city night")
	q.Sources = []string{"pexels", "pixabay", "youtube"}
	items, err := svc.Finder.Find(context.Background(), q)
	require.NoError(t, err)
	require.Empty(t, items)

	_, err = svc.Videos.Search(context.Background(), backend.Request{Keyword: "x"})
	require.ErrorIs(t, err, backend.ErrNoEndpoint)
}

func TestOpenCacheWithRetry_BadURL(t *testing.T) {
	cacheOpenBackoffBase = time.Millisecond
	t.Cleanup(func() { cacheOpenBackoffBase = time.Second })

	_, err := OpenCacheWithRetry(context.Background(), "not-a-redis-url", 2)
	require.ErrorContains(t, err, "after 2 attempts")
}

func TestOpenCacheWithRetry_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := OpenCacheWithRetry(ctx, "not-a-redis-url", 3)
	require.ErrorIs(t, err, context.Canceled)
}
