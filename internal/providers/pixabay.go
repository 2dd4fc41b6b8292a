package providers

import (
	"context"
	"net/url"
	"strconv"

	"thirdcoast.systems/reelscout/internal/media"
)

const (
	pixabayBaseURL = "https://pixabay.com"
	pixabayLicense = "Pixabay Content License"
	// Pixabay rejects per_page values below 3.
	pixabayMinPerPage = 3
)

type Pixabay struct {
	fetch   Getter
	key     string
	baseURL string
}

func NewPixabay(fetch Getter, key string) *Pixabay {
	return &Pixabay{fetch: fetch, key: key, baseURL: pixabayBaseURL}
}

func (p *Pixabay) Name() string { return media.ProviderPixabay }

type pixabayImagePage struct {
	Hits []struct {
		PageURL       string `json:"pageURL"`
		PreviewURL    string `json:"previewURL"`
		LargeImageURL string `json:"largeImageURL"`
		ImageWidth    int    `json:"imageWidth"`
		ImageHeight   int    `json:"imageHeight"`
		User          string `json:"user"`
	} `json:"hits"`
}

type pixabayVariant struct {
	URL       string `json:"url"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Thumbnail string `json:"thumbnail"`
}

type pixabayVideoPage struct {
	Hits []struct {
		PageURL   string `json:"pageURL"`
		PictureID any    `json:"picture_id"`
		Duration  int    `json:"duration"`
		User      string `json:"user"`
		Videos    struct {
			Large  pixabayVariant `json:"large"`
			Medium pixabayVariant `json:"medium"`
			Small  pixabayVariant `json:"small"`
		} `json:"videos"`
	} `json:"hits"`
}

// Search returns images and, when opts.Video is set, videos.
func (p *Pixabay) Search(ctx context.Context, query string, opts Options) []media.Item {
	if p.key == "" {
		return nil
	}
	perPage := max(opts.limit(), pixabayMinPerPage)
	params := url.Values{
		"key":        {p.key},
		"q":          {query},
		"per_page":   {strconv.Itoa(perPage)},
		"safesearch": {strconv.FormatBool(opts.SafeSearch)},
	}

	var out []media.Item

	var images pixabayImagePage
	if err := p.fetch.GetJSON(ctx, p.baseURL+"/api/", params, nil, &images); err != nil {
		warnFetch(ctx, p.Name(), "images", err)
	} else {
		for _, h := range images.Hits {
			out = append(out, media.Item{
				Provider:    media.ProviderPixabay,
				Type:        media.TypePhoto,
				Preview:     h.PreviewURL,
				Download:    h.LargeImageURL,
				Width:       media.Int(h.ImageWidth),
				Height:      media.Int(h.ImageHeight),
				License:     pixabayLicense,
				Attribution: h.User + " (Pixabay)",
				SourceURL:   h.PageURL,
			})
		}
	}

	if !opts.Video {
		return out
	}

	var videos pixabayVideoPage
	if err := p.fetch.GetJSON(ctx, p.baseURL+"/api/videos/", params, nil, &videos); err != nil {
		warnFetch(ctx, p.Name(), "videos", err)
		return out
	}
	for _, h := range videos.Hits {
		best := firstVariant(h.Videos.Large, h.Videos.Medium, h.Videos.Small)
		preview := best.Thumbnail
		if pid := text(h.PictureID); preview == "" && pid != "" {
			preview = "https://i.vimeocdn.com/video/" + pid + "_640x360.jpg"
		}
		out = append(out, media.Item{
			Provider:    media.ProviderPixabay,
			Type:        media.TypeVideo,
			Preview:     preview,
			Download:    best.URL,
			Width:       media.Int(best.Width),
			Height:      media.Int(best.Height),
			Duration:    media.Int(h.Duration),
			License:     pixabayLicense,
			Attribution: h.User + " (Pixabay)",
			SourceURL:   h.PageURL,
		})
	}
	return out
}

func firstVariant(vs ...pixabayVariant) pixabayVariant {
	for _, v := range vs {
		if v.URL != "" {
			return v
		}
	}
	return pixabayVariant{}
}
