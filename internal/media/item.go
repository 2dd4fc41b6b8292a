// Package media models photo and video candidates returned by stock and
// Creative Commons providers, and ranks them for reuse.
package media

import (
	"thirdcoast.systems/reelscout/internal/videoid"
)

// Provider names.
const (
	ProviderPexels    = "pexels"
	ProviderPixabay   = "pixabay"
	ProviderOpenverse = "openverse"
	ProviderWikimedia = "wikimedia"
	ProviderYouTube   = "youtube"
)

// Item types.
const (
	TypePhoto = "photo"
	TypeVideo = "video"
)

// Item is one photo or video candidate. Absent strings are empty and absent
// numbers are nil.
type Item struct {
	ID           string  `json:"id,omitempty"`
	Provider     string  `json:"provider"`
	Type         string  `json:"type"`
	Preview      string  `json:"preview,omitempty"`
	Download     string  `json:"download,omitempty"`
	Width        *int    `json:"width,omitempty"`
	Height       *int    `json:"height,omitempty"`
	Duration     *int    `json:"duration,omitempty"`
	License      string  `json:"license"`
	Attribution  string  `json:"attribution"`
	SourceURL    string  `json:"source_url,omitempty"`
	Score        float64 `json:"score"`
	Downloadable bool    `json:"downloadable"`
}

// Identity is the first non-empty of SourceURL, Download and Preview.
func (it Item) Identity() string {
	switch {
	case it.SourceURL != "":
		return it.SourceURL
	case it.Download != "":
		return it.Download
	default:
		return it.Preview
	}
}

// Key identifies an item for deduplication.
type Key struct {
	Provider string
	Identity string
}

// Key returns the dedup key of the item.
func (it Item) Key() Key {
	return Key{Provider: it.Provider, Identity: it.Identity()}
}

// Annotate fills the derived ID and Downloadable fields. YouTube items are
// keyed by video id so every URL form of a video shares one ID.
func Annotate(it Item) Item {
	if vid := videoid.ExtractYouTubeVideoID(it.SourceURL); it.Provider == ProviderYouTube && vid != "" {
		it.ID = videoid.VideoUUID(vid).String()
	} else {
		it.ID = videoid.ItemUUID(it.Provider, it.Identity()).String()
	}
	it.Downloadable = it.Download != "" && videoid.IsSafeDownload(it.Download)
	return it
}

// Int returns a pointer to n, or nil when n is not positive.
func Int(n int) *int {
	if n <= 0 {
		return nil
	}
	return &n
}
