package providers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"thirdcoast.systems/reelscout/internal/media"
)

const (
	pexelsBaseURL = "https://api.pexels.com"
	pexelsLicense = "Pexels License"
)

type Pexels struct {
	fetch   Getter
	key     string
	baseURL string
}

func NewPexels(fetch Getter, key string) *Pexels {
	return &Pexels{fetch: fetch, key: key, baseURL: pexelsBaseURL}
}

func (p *Pexels) Name() string { return media.ProviderPexels }

type pexelsPhotoPage struct {
	Photos []struct {
		URL          string `json:"url"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		Photographer string `json:"photographer"`
		Src          struct {
			Medium   string `json:"medium"`
			Original string `json:"original"`
		} `json:"src"`
	} `json:"photos"`
}

type pexelsVideoFile struct {
	Link   string `json:"link"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type pexelsVideoPage struct {
	Videos []struct {
		URL      string `json:"url"`
		Image    string `json:"image"`
		Duration int    `json:"duration"`
		User     struct {
			Name string `json:"name"`
		} `json:"user"`
		VideoFiles []pexelsVideoFile `json:"video_files"`
	} `json:"videos"`
}

// Search returns photos and, when opts.Video is set, videos.
func (p *Pexels) Search(ctx context.Context, query string, opts Options) []media.Item {
	if p.key == "" {
		return nil
	}
	headers := http.Header{"Authorization": {p.key}}
	params := url.Values{
		"query":    {query},
		"per_page": {strconv.Itoa(opts.limit())},
	}
	if opts.PreferVertical {
		params.Set("orientation", "portrait")
	}

	var out []media.Item

	var photos pexelsPhotoPage
	if err := p.fetch.GetJSON(ctx, p.baseURL+"/v1/search", params, headers, &photos); err != nil {
		warnFetch(ctx, p.Name(), "photos", err)
	} else {
		for _, ph := range photos.Photos {
			out = append(out, media.Item{
				Provider:    media.ProviderPexels,
				Type:        media.TypePhoto,
				Preview:     ph.Src.Medium,
				Download:    ph.Src.Original,
				Width:       media.Int(ph.Width),
				Height:      media.Int(ph.Height),
				License:     pexelsLicense,
				Attribution: ph.Photographer + " (Pexels)",
				SourceURL:   ph.URL,
			})
		}
	}

	if !opts.Video {
		return out
	}

	var videos pexelsVideoPage
	if err := p.fetch.GetJSON(ctx, p.baseURL+"/videos/search", params, headers, &videos); err != nil {
		warnFetch(ctx, p.Name(), "videos", err)
		return out
	}
	for _, v := range videos.Videos {
		best := largestFile(v.VideoFiles)
		out = append(out, media.Item{
			Provider:    media.ProviderPexels,
			Type:        media.TypeVideo,
			Preview:     v.Image,
			Download:    best.Link,
			Width:       media.Int(best.Width),
			Height:      media.Int(best.Height),
			Duration:    media.Int(v.Duration),
			License:     pexelsLicense,
			Attribution: "Pexels Video by " + v.User.Name,
			SourceURL:   v.URL,
		})
	}
	return out
}

// largestFile picks the encoding with the most pixels; the first wins a tie.
func largestFile(files []pexelsVideoFile) pexelsVideoFile {
	var best pexelsVideoFile
	bestArea := -1
	for _, f := range files {
		if area := f.Width * f.Height; area > bestArea {
			best, bestArea = f, area
		}
	}
	return best
}
