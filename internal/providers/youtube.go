package providers

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"thirdcoast.systems/reelscout/internal/media"
	"thirdcoast.systems/reelscout/internal/videoid"
)

const (
	youtubeLicense = "CC-BY (YouTube setting)"
	// The Data API caps search pages at 50 results.
	youtubeMaxResults = 50
)

// YouTube searches Creative Commons videos. Only links and thumbnails are
// returned; the platform's terms do not allow downloading.
type YouTube struct {
	svc *youtube.Service
	key string
}

// NewYouTube builds the adapter around hc. endpoint overrides the Data API
// base URL and may be empty.
func NewYouTube(ctx context.Context, hc *http.Client, key, endpoint string) (*YouTube, error) {
	opts := []option.ClientOption{option.WithHTTPClient(hc)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("youtube service: %w", err)
	}
	return &YouTube{svc: svc, key: key}, nil
}

func (y *YouTube) Name() string { return media.ProviderYouTube }

func (y *YouTube) Search(ctx context.Context, query string, opts Options) []media.Item {
	if y.key == "" {
		return nil
	}
	resp, err := y.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		VideoLicense("creativeCommon").
		SafeSearch("moderate").
		MaxResults(int64(min(opts.limit(), youtubeMaxResults))).
		Context(ctx).
		Do(googleapi.QueryParameter("key", y.key))
	if err != nil {
		warnFetch(ctx, y.Name(), "search", err)
		return nil
	}

	out := make([]media.Item, 0, len(resp.Items))
	for _, it := range resp.Items {
		if it.Id == nil || it.Id.VideoId == "" {
			continue
		}
		var preview, channel string
		if sn := it.Snippet; sn != nil {
			channel = sn.ChannelTitle
			if sn.Thumbnails != nil && sn.Thumbnails.Medium != nil {
				preview = sn.Thumbnails.Medium.Url
			}
		}
		if channel == "" {
			channel = "YouTube"
		}
		out = append(out, media.Item{
			Provider:    media.ProviderYouTube,
			Type:        media.TypeVideo,
			Preview:     preview,
			License:     youtubeLicense,
			Attribution: channel,
			SourceURL:   videoid.WatchURL(it.Id.VideoId),
		})
	}
	return out
}
