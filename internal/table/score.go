package table

import (
	"math"
	"strings"
	"time"
)

// Weights controls the composite score. They are summed as given, without
// normalisation.
type Weights struct {
	Recency float64 `json:"w_recency" validate:"gte=0"`
	Views   float64 `json:"w_views" validate:"gte=0"`
	Likes   float64 `json:"w_likes" validate:"gte=0"`
	Shorts  float64 `json:"w_short" validate:"gte=0"`
}

// DefaultWeights favours fresh, widely watched videos.
func DefaultWeights() Weights {
	return Weights{Recency: 0.4, Views: 0.4, Likes: 0.2, Shorts: 0.2}
}

// Sum returns the largest score the weights can produce.
func (w Weights) Sum() float64 {
	return w.Recency + w.Views + w.Likes + w.Shorts
}

// AddCompositeScore sets the score column to the weighted sum of recency,
// view, like and shorts signals. A missing column contributes 0.
func AddCompositeScore(t Table, w Weights, now time.Time) Table {
	out := t.Clone()
	hasPublished := out.Has("publishedAt")
	hasViews := out.Has("viewCount")
	hasLikes := out.Has("likeCount")
	hasShorts := out.Has("isShorts")

	out.set("score", func(r Row) any {
		var recency, views, likes, shorts float64
		if hasPublished {
			recency = Recency(r["publishedAt"], now)
		}
		if hasViews {
			views = logScale(r["viewCount"], 7)
		}
		if hasLikes {
			likes = logScale(r["likeCount"], 6)
		}
		if hasShorts && flag(r["isShorts"]) {
			shorts = 1
		}
		return w.Recency*recency + w.Views*views + w.Likes*likes + w.Shorts*shorts
	})
	return out
}

// Recency is 1 for a video published now and decays as 1/(1+days/7).
// Future timestamps count as now; unparsable ones give 0.
func Recency(published any, now time.Time) float64 {
	ts, ok := ParseTimestamp(published)
	if !ok {
		return 0
	}
	days := now.UTC().Sub(ts).Hours() / 24
	if days < 0 {
		days = 0
	}
	return 1 / (1 + days/7)
}

func logScale(v any, decades float64) float64 {
	f, ok := ToFloat(v)
	if !ok || f <= 0 {
		return 0
	}
	return math.Min(1, math.Log10(f+1)/decades)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp reads an ISO-8601 style timestamp. Values without a zone
// are taken as UTC.
func ParseTimestamp(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val.UTC(), !val.IsZero()
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts.UTC(), true
			}
		}
	}
	return time.Time{}, false
}
