package table

import (
	"slices"

	"thirdcoast.systems/reelscout/pkg/utils/format"
)

// ItemColumns are the columns FlattenItems produces, in order.
var ItemColumns = []string{
	"videoId",
	"title",
	"channelTitle",
	"publishedAt",
	"thumbnail",
	"durationIso",
	"viewCount",
	"likeCount",
	"durationSec",
}

// FlattenItems converts YouTube Data API resources (search or videos.list
// items) into one flat row each. Inputs that are not objects still produce
// a row, with every column null.
func FlattenItems(items []any) Table {
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, flattenItem(it))
	}
	return Table{Columns: slices.Clone(ItemColumns), Rows: rows}
}

func flattenItem(v any) Row {
	row := make(Row, len(ItemColumns))
	for _, c := range ItemColumns {
		row[c] = nil
	}
	it := object(v)
	if it == nil {
		return row
	}

	if id := object(it["id"]); id != nil {
		row["videoId"] = firstTruthy(id["videoId"], id["video_id"])
	} else {
		row["videoId"] = firstTruthy(it["videoId"], it["id"])
	}

	sn := object(it["snippet"])
	row["title"] = sn["title"]
	row["channelTitle"] = sn["channelTitle"]
	row["publishedAt"] = sn["publishedAt"]
	thumbs := object(sn["thumbnails"])
	row["thumbnail"] = firstTruthy(object(thumbs["medium"])["url"], object(thumbs["default"])["url"])

	row["durationIso"] = object(it["contentDetails"])["duration"]

	stats := object(it["statistics"])
	for _, k := range []string{"viewCount", "likeCount"} {
		if n, ok := ToInt(stats[k]); ok {
			row[k] = n
		}
	}

	if truthy(row["durationIso"]) {
		row["durationSec"] = int64(format.ParseISODuration(row["durationIso"]))
	}
	return row
}

// LooksLikeItems reports whether payload is a list of YouTube API resources,
// recognised by a "snippet" object on the first element.
func LooksLikeItems(payload any) ([]any, bool) {
	list, ok := payload.([]any)
	if !ok {
		if obj := object(payload); obj != nil {
			if kind, _ := obj["kind"].(string); kind != "" {
				list, ok = obj["items"].([]any)
			}
		}
	}
	if !ok || len(list) == 0 {
		return nil, false
	}
	first := object(list[0])
	if first == nil {
		return nil, false
	}
	_, hasSnippet := first["snippet"].(map[string]any)
	return list, hasSnippet
}
