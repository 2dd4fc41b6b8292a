package table

import (
	"strings"

	"golang.org/x/text/cases"
)

// aliases maps case-folded column name variants to canonical names.
var aliases = map[string]string{
	"video_id":      "videoId",
	"videoid":       "videoId",
	"channel_title": "channelTitle",
	"channeltitle":  "channelTitle",
	"published_at":  "publishedAt",
	"publishedat":   "publishedAt",
	"view_count":    "viewCount",
	"viewcount":     "viewCount",
	"like_count":    "likeCount",
	"likecount":     "likeCount",
	"duration_sec":  "durationSec",
	"durationsec":   "durationSec",
	"duration_iso":  "durationIso",
	"durationiso":   "durationIso",
}

// Standardize renames known column variants to their canonical names.
// Unknown columns pass through. A rename whose target is already present is
// skipped, so applying Standardize twice changes nothing.
func Standardize(t Table) Table {
	fold := cases.Fold()

	taken := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		taken[c] = true
	}

	renames := map[string]string{}
	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = c
		target, ok := aliases[fold.String(strings.TrimSpace(c))]
		if !ok || target == c || taken[target] {
			continue
		}
		taken[target] = true
		renames[c] = target
		cols[i] = target
	}

	out := Table{Columns: cols, Rows: make([]Row, 0, len(t.Rows))}
	for _, r := range t.Rows {
		nr := make(Row, len(r))
		for k, v := range r {
			if to, ok := renames[k]; ok {
				k = to
			}
			nr[k] = v
		}
		out.Rows = append(out.Rows, nr)
	}
	return out
}
