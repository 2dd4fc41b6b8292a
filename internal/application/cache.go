package application

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"thirdcoast.systems/reelscout/internal/fetch"
)

var (
	cacheOpenBackoffBase  = 1 * time.Second
	cacheOpenBackoffScale = 1.618
)

// OpenCacheWithRetry connects to the response cache, retrying with growing
// backoff while Redis comes up.
func OpenCacheWithRetry(ctx context.Context, redisURL string, retries int) (*fetch.RedisCache, error) {
	if retries <= 0 {
		retries = 1
	}

	var lastErr error
	for i := 0; i < retries; i++ {
		cache, err := fetch.NewRedisCache(ctx, redisURL)
		if err == nil {
			return cache, nil
		}
		lastErr = err
		if i == retries-1 {
			break
		}

		backoff := time.Duration(float64(cacheOpenBackoffBase) * math.Pow(cacheOpenBackoffScale, float64(i)))
		slog.Warn("cache unavailable, retrying", "attempt", i+1, "backoff", backoff, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
	return nil, fmt.Errorf("failed to connect to cache after %d attempts: %w", retries, lastErr)
}
