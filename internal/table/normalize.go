package table

import (
	"github.com/spf13/cast"

	"thirdcoast.systems/reelscout/internal/videoid"
	"thirdcoast.systems/reelscout/pkg/utils/format"
)

// ShortsMaxSeconds is the longest duration still counted as a Short.
const ShortsMaxSeconds = 60

var numericColumns = []string{"viewCount", "likeCount", "durationSec", "views_per_hour", "likes_per_view", "score"}

// Normalize derives durationSec and isShorts and coerces the known numeric
// columns to float64, nulling anything that is not a number.
func Normalize(t Table) Table {
	out := t.Clone()

	if out.Has("durationIso") && !out.Has("durationSec") {
		out.set("durationSec", func(r Row) any {
			return float64(format.ParseISODuration(r["durationIso"]))
		})
	}
	if out.Has("duration_sec") && !out.Has("durationSec") {
		out.set("durationSec", func(r Row) any {
			return numeric(r["duration_sec"])
		})
	}
	if out.Has("durationSec") {
		out.set("isShorts", func(r Row) any {
			d, ok := ToFloat(r["durationSec"])
			return ok && d <= ShortsMaxSeconds
		})
	}

	for _, c := range numericColumns {
		if !out.Has(c) {
			continue
		}
		out.set(c, func(r Row) any {
			return numeric(r[c])
		})
	}
	return out
}

// EnsureURL adds a url column holding the watch page of each videoId when
// the table has ids but no urls. Null ids give null urls.
func EnsureURL(t Table) Table {
	out := t.Clone()
	if !out.Has("videoId") || out.Has("url") {
		return out
	}
	out.set("url", func(r Row) any {
		id := r["videoId"]
		if IsNull(id) {
			return nil
		}
		return videoid.WatchURL(cast.ToString(id))
	})
	return out
}

// DeriveVideoID fills a videoId column from YouTube links in the url column
// when the table has urls but no ids.
func DeriveVideoID(t Table) Table {
	out := t.Clone()
	if !out.Has("url") || out.Has("videoId") {
		return out
	}
	out.set("videoId", func(r Row) any {
		s, ok := r["url"].(string)
		if !ok {
			return nil
		}
		if id := videoid.ExtractYouTubeVideoID(s); id != "" {
			return id
		}
		return nil
	})
	return out
}

// Prepare runs the cleanup chain used after every search or import.
func Prepare(t Table) Table {
	return EnsureURL(Normalize(DeriveVideoID(Standardize(t))))
}
