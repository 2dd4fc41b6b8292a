package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImport_CSV(t *testing.T) {
	t.Parallel()

	csv := "video_id,title,duration_sec,view_count\nabc,Hello,30,1200\ndef,\"Long, one\",600,\n"
	got, err := Import(strings.NewReader(csv), "results.CSV")
	require.NoError(t, err)
	require.Equal(t, []string{"videoId", "title", "durationSec", "viewCount", "isShorts", "url"}, got.Columns)
	require.Equal(t, []any{true, false}, got.Column("isShorts"))
	require.Equal(t, []any{1200.0, nil}, got.Column("viewCount"))
	require.Equal(t, "Long, one", got.Rows[1]["title"])
	require.Equal(t, "https://www.youtube.com/watch?v=def", got.Rows[1]["url"])
}

func TestImport_YouTubeResources(t *testing.T) {
	t.Parallel()

	raw := `{"kind":"youtube#searchListResponse","items":[
		{"id":{"videoId":"abc"},"snippet":{"title":"T","channelTitle":"C","publishedAt":"2025-01-01T00:00:00Z"},
		 "contentDetails":{"duration":"PT45S"},"statistics":{"viewCount":"10"}}]}`
	got, err := ImportJSON([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	row := got.Rows[0]
	require.Equal(t, "abc", row["videoId"])
	require.Equal(t, 45.0, row["durationSec"])
	require.Equal(t, true, row["isShorts"])
	require.Equal(t, 10.0, row["viewCount"])
	require.Equal(t, "https://www.youtube.com/watch?v=abc", row["url"])
}

func TestImport_OtherJSON(t *testing.T) {
	t.Parallel()

	got, err := ImportJSON([]byte(`{"data":[{"url":"https://youtu.be/xyz","title":"A"}]}`))
	require.NoError(t, err)
	require.Equal(t, []string{"title", "url", "videoId"}, got.Columns)
	require.Equal(t, "xyz", got.Rows[0]["videoId"])

	got, err = ImportJSON([]byte(`"nothing here"`))
	require.NoError(t, err)
	require.True(t, got.Empty())

	_, err = ImportJSON([]byte(`{"broken":`))
	require.Error(t, err)
}
