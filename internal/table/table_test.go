package table

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	v, err := DecodeJSON(strings.NewReader(s))
	require.NoError(t, err)
	return v
}

func TestFlattenItems(t *testing.T) {
	t.Parallel()

	items := decode(t, `[
		{"id": {"kind": "youtube#video", "videoId": "abc"},
		 "snippet": {"title": "First", "channelTitle": "Chan", "publishedAt": "2024-01-02T03:04:05Z",
		             "thumbnails": {"default": {"url": "d.jpg"}, "medium": {"url": "m.jpg"}}},
		 "contentDetails": {"duration": "PT1M5S"},
		 "statistics": {"viewCount": "1200", "likeCount": "lots"}},
		{"id": "def", "snippet": {"thumbnails": {"default": {"url": "d2.jpg"}}},
		 "contentDetails": {"duration": ""}, "statistics": {"viewCount": 15}},
		"not an object",
		{"videoId": "ghi"}
	]`).([]any)

	got := FlattenItems(items)
	require.Equal(t, ItemColumns, got.Columns)
	require.Equal(t, 4, got.Len())

	first := got.Rows[0]
	require.Equal(t, "abc", first["videoId"])
	require.Equal(t, "First", first["title"])
	require.Equal(t, "Chan", first["channelTitle"])
	require.Equal(t, "m.jpg", first["thumbnail"])
	require.Equal(t, "PT1M5S", first["durationIso"])
	require.Equal(t, int64(1200), first["viewCount"])
	require.Nil(t, first["likeCount"])
	require.Equal(t, int64(65), first["durationSec"])

	second := got.Rows[1]
	require.Equal(t, "def", second["videoId"])
	require.Equal(t, "d2.jpg", second["thumbnail"])
	require.Equal(t, int64(15), second["viewCount"])
	require.Nil(t, second["durationSec"])

	for _, c := range ItemColumns {
		v, ok := got.Rows[2][c]
		require.True(t, ok, c)
		require.Nil(t, v, c)
	}

	require.Equal(t, "ghi", got.Rows[3]["videoId"])
}

func TestLooksLikeItems(t *testing.T) {
	t.Parallel()

	list, ok := LooksLikeItems(decode(t, `{"kind":"youtube#searchListResponse","items":[{"snippet":{}}]}`))
	require.True(t, ok)
	require.Len(t, list, 1)

	_, ok = LooksLikeItems(decode(t, `[{"snippet":{"title":"x"}}]`))
	require.True(t, ok)

	_, ok = LooksLikeItems(decode(t, `{"items":[{"snippet":{}}]}`))
	require.False(t, ok)

	_, ok = LooksLikeItems(decode(t, `[{"title":"x"}]`))
	require.False(t, ok)
}

func TestFromResponse(t *testing.T) {
	t.Parallel()

	t.Run("columnar", func(t *testing.T) {
		t.Parallel()
		got := FromResponse(decode(t, `{"columns":["a","b"],"values":[[1,2],[3,4]]}`))
		require.Equal(t, []string{"a", "b"}, got.Columns)
		require.Equal(t, [][]any{
			{json.Number("1"), json.Number("2")},
			{json.Number("3"), json.Number("4")},
		}, got.Values())
	})

	t.Run("columnar pads short rows", func(t *testing.T) {
		t.Parallel()
		got := FromResponse(decode(t, `{"columns":["a","b"],"values":[[1]]}`))
		require.Equal(t, [][]any{{json.Number("1"), nil}}, got.Values())
	})

	t.Run("columnar with long row is empty", func(t *testing.T) {
		t.Parallel()
		got := FromResponse(decode(t, `{"columns":["a"],"values":[[1,2]]}`))
		require.True(t, got.Empty())
		require.Empty(t, got.Columns)
	})

	t.Run("items wrapper with nesting", func(t *testing.T) {
		t.Parallel()
		got := FromResponse(decode(t, `{"items":[{"videoId":"x","stats":{"views":5,"deep":{"n":1}}},{"title":"t"}]}`))
		require.Equal(t, []string{"stats.deep.n", "stats.views", "videoId", "title"}, got.Columns)
		require.Equal(t, 2, got.Len())
		require.Equal(t, json.Number("1"), got.Rows[0]["stats.deep.n"])
		require.Nil(t, got.Rows[1]["videoId"])
		require.Equal(t, "t", got.Rows[1]["title"])
	})

	t.Run("null items falls through to results", func(t *testing.T) {
		t.Parallel()
		got := FromResponse(decode(t, `{"items":null,"results":[{"a":1}]}`))
		require.Equal(t, []string{"a"}, got.Columns)
	})

	t.Run("scalar list", func(t *testing.T) {
		t.Parallel()
		got := FromResponse(decode(t, `{"data":["x","y"]}`))
		require.Equal(t, []string{"value"}, got.Columns)
		require.Equal(t, [][]any{{"x"}, {"y"}}, got.Values())
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()
		got := FromResponse(decode(t, `[]`))
		require.Equal(t, []string{"value"}, got.Columns)
		require.True(t, got.Empty())
	})

	t.Run("single object", func(t *testing.T) {
		t.Parallel()
		got := FromResponse(decode(t, `{"data":{"a":{"b":2}}}`))
		require.Equal(t, []string{"a.b"}, got.Columns)
		require.Equal(t, 1, got.Len())
	})

	t.Run("unrecognised shapes are empty", func(t *testing.T) {
		t.Parallel()
		for _, payload := range []any{nil, "text", json.Number("3"), map[string]any{"other": 1}, map[string]any{"columns": "a", "values": []any{}}} {
			require.True(t, FromResponse(payload).Empty())
		}
	})
}

func TestTableJSONRoundTrip(t *testing.T) {
	t.Parallel()

	in := New([]string{"videoId", "viewCount"}, []Row{
		{"videoId": "a", "viewCount": 10.0},
		{"videoId": nil, "viewCount": 2.5},
	})
	b, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"columns":["videoId","viewCount"],"values":[["a",10],[null,2.5]]}`, string(b))

	var out Table
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, in.Columns, out.Columns)
	require.Equal(t, json.Number("2.5"), out.Rows[1]["viewCount"])

	empty, err := json.Marshal(Table{})
	require.NoError(t, err)
	require.JSONEq(t, `{"columns":[],"values":[]}`, string(empty))
}

func TestStandardize(t *testing.T) {
	t.Parallel()

	in := New([]string{"Video_ID", " channel_title ", "PUBLISHED_AT", "view_count", "likecount", "durationSec", "duration_sec", "extra"},
		[]Row{{
			"Video_ID": "v1", " channel_title ": "c", "PUBLISHED_AT": "2024-01-01", "view_count": "5",
			"likecount": "1", "durationSec": 30, "duration_sec": 31, "extra": true,
		}})

	once := Standardize(in)
	require.Equal(t, []string{"videoId", "channelTitle", "publishedAt", "viewCount", "likeCount", "durationSec", "duration_sec", "extra"}, once.Columns)
	require.Equal(t, "v1", once.Rows[0]["videoId"])
	require.Equal(t, 30, once.Rows[0]["durationSec"])
	require.Equal(t, 31, once.Rows[0]["duration_sec"])
	require.Equal(t, once, Standardize(once))

	// input untouched
	require.Equal(t, "Video_ID", in.Columns[0])
	require.Equal(t, "v1", in.Rows[0]["Video_ID"])
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("durations and shorts", func(t *testing.T) {
		t.Parallel()
		in := New([]string{"durationIso"}, []Row{
			{"durationIso": "PT1M"},
			{"durationIso": "PT1M1S"},
			{"durationIso": nil},
		})
		got := Normalize(in)
		require.Equal(t, []any{60.0, 61.0, 0.0}, got.Column("durationSec"))
		require.Equal(t, []any{true, false, true}, got.Column("isShorts"))
		require.False(t, in.Has("durationSec"))
	})

	t.Run("null duration is not shorts", func(t *testing.T) {
		t.Parallel()
		in := New([]string{"durationSec"}, []Row{{"durationSec": 60}, {"durationSec": 61}, {"durationSec": nil}, {"durationSec": "n/a"}})
		got := Normalize(in)
		require.Equal(t, []any{true, false, false, false}, got.Column("isShorts"))
		require.Equal(t, []any{60.0, 61.0, nil, nil}, got.Column("durationSec"))
	})

	t.Run("duration_sec fallback", func(t *testing.T) {
		t.Parallel()
		got := Normalize(New([]string{"duration_sec"}, []Row{{"duration_sec": "42"}, {"duration_sec": "x"}}))
		require.Equal(t, []any{42.0, nil}, got.Column("durationSec"))
		require.Equal(t, []any{true, false}, got.Column("isShorts"))
	})

	t.Run("numeric coercion", func(t *testing.T) {
		t.Parallel()
		in := New([]string{"viewCount", "likeCount", "views_per_hour", "title"}, []Row{
			{"viewCount": json.Number("12"), "likeCount": "3", "views_per_hour": "", "title": "7"},
			{"viewCount": "many", "likeCount": int64(4), "views_per_hour": 1.5, "title": "x"},
		})
		got := Normalize(in)
		require.Equal(t, []any{12.0, nil}, got.Column("viewCount"))
		require.Equal(t, []any{3.0, 4.0}, got.Column("likeCount"))
		require.Equal(t, []any{nil, 1.5}, got.Column("views_per_hour"))
		require.Equal(t, []any{"7", "x"}, got.Column("title"))
		require.False(t, got.Has("isShorts"))
	})
}

func TestEnsureURL(t *testing.T) {
	t.Parallel()

	got := EnsureURL(New([]string{"videoId"}, []Row{{"videoId": "abc"}, {"videoId": nil}}))
	require.Equal(t, []any{"https://www.youtube.com/watch?v=abc", nil}, got.Column("url"))

	kept := EnsureURL(New([]string{"videoId", "url"}, []Row{{"videoId": "abc", "url": "custom"}}))
	require.Equal(t, []any{"custom"}, kept.Column("url"))

	none := EnsureURL(New([]string{"title"}, []Row{{"title": "x"}}))
	require.False(t, none.Has("url"))
}

func TestPrepare(t *testing.T) {
	t.Parallel()

	in := FromResponse(decode(t, `{"columns":["url","duration_sec","view_count"],"values":[["https://youtu.be/xyz",59,"100"]]}`))
	got := Prepare(in)
	row := got.Rows[0]
	require.Equal(t, "xyz", row["videoId"])
	require.Equal(t, "https://youtu.be/xyz", row["url"])
	require.Equal(t, 59.0, row["durationSec"])
	require.Equal(t, true, row["isShorts"])
	require.Equal(t, 100.0, row["viewCount"])
}

func TestAddCompositeScore(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("components", func(t *testing.T) {
		t.Parallel()
		in := New([]string{"publishedAt", "viewCount", "likeCount", "isShorts"}, []Row{
			{"publishedAt": "2025-06-01T12:00:00Z", "viewCount": 9999999.0, "likeCount": 0.0, "isShorts": true},
			{"publishedAt": "2025-05-25T12:00:00Z", "viewCount": nil, "likeCount": nil, "isShorts": false},
			{"publishedAt": "garbage", "viewCount": -5.0, "likeCount": 999999.0, "isShorts": nil},
		})
		got := AddCompositeScore(in, DefaultWeights(), now)
		require.InDelta(t, 0.4+0.4+0.2, got.Rows[0]["score"], 1e-9)
		require.InDelta(t, 0.4*0.5, got.Rows[1]["score"], 1e-9)
		require.InDelta(t, 0.2, got.Rows[2]["score"], 1e-9)
		require.False(t, in.Has("score"))
	})

	t.Run("missing columns contribute zero", func(t *testing.T) {
		t.Parallel()
		got := AddCompositeScore(New([]string{"title"}, []Row{{"title": "x"}}), DefaultWeights(), now)
		require.Equal(t, []any{0.0}, got.Column("score"))
	})

	t.Run("overwrites existing score", func(t *testing.T) {
		t.Parallel()
		in := New([]string{"score", "isShorts"}, []Row{{"score": 99.0, "isShorts": "True"}})
		got := AddCompositeScore(in, Weights{Shorts: 2}, now)
		require.Equal(t, []string{"score", "isShorts"}, got.Columns)
		require.Equal(t, []any{2.0}, got.Column("score"))
	})

	t.Run("bounded by weight sum", func(t *testing.T) {
		t.Parallel()
		w := Weights{Recency: 0.7, Views: 1, Likes: 0.3, Shorts: 0.9}
		in := New([]string{"publishedAt", "viewCount", "likeCount", "isShorts"}, []Row{
			{"publishedAt": "2030-01-01", "viewCount": 1e12, "likeCount": 1e12, "isShorts": true},
			{"publishedAt": "1990-01-01 00:00:00", "viewCount": 0.0, "likeCount": 1.0, "isShorts": false},
		})
		for _, s := range AddCompositeScore(in, w, now).Column("score") {
			require.GreaterOrEqual(t, s.(float64), 0.0)
			require.LessOrEqual(t, s.(float64), w.Sum()+1e-9)
		}
	})
}

func TestRecencyMonotonic(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	stamps := []string{"2025-06-01T00:00:00Z", "2025-05-31T10:00:00+09:00", "2025-05-20", "2024-12-31T23:59:59.5Z", "2020-01-01T00:00:00"}
	prev := 2.0
	for _, s := range stamps {
		r := Recency(s, now)
		require.LessOrEqual(t, r, prev, s)
		require.Greater(t, r, 0.0, s)
		prev = r
	}
	require.Equal(t, 1.0, Recency("2026-01-01T00:00:00Z", now))
	require.Equal(t, 0.0, Recency(nil, now))
	require.Equal(t, 0.0, Recency("yesterday", now))
}

func TestSort(t *testing.T) {
	t.Parallel()

	in := New([]string{"id", "score", "publishedAt"}, []Row{
		{"id": "a", "score": 0.5, "publishedAt": "2024-01-01"},
		{"id": "b", "score": nil, "publishedAt": "2024-03-01"},
		{"id": "c", "score": 0.9, "publishedAt": nil},
		{"id": "d", "score": 0.5, "publishedAt": "2024-02-01"},
	})

	ids := func(tb Table) []any { return tb.Column("id") }

	require.Equal(t, []any{"c", "a", "d", "b"}, ids(Sort(in, SortKey{Column: "score", Desc: true})))
	require.Equal(t, []any{"a", "d", "c", "b"}, ids(Sort(in, SortKey{Column: "score"})))
	require.Equal(t, []any{"c", "d", "a", "b"}, ids(Sort(in, SortKey{Column: "score", Desc: true}, SortKey{Column: "publishedAt", Desc: true})))
	require.Equal(t, []any{"a", "b", "c", "d"}, ids(Sort(in, SortKey{Column: "missing"})))
	require.Equal(t, []any{"a", "b", "c", "d"}, ids(in))
}

func TestCSVRoundTrip(t *testing.T) {
	t.Parallel()

	in := New([]string{"videoId", "title", "viewCount", "isShorts", "tags"}, []Row{
		{"videoId": "a", "title": "Hello, \"world\"", "viewCount": 12.0, "isShorts": true, "tags": []any{"x"}},
		{"videoId": "b", "title": nil, "viewCount": 1.5, "isShorts": false, "tags": nil},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, in))
	require.Equal(t, "videoId,title,viewCount,isShorts,tags\n"+
		"a,\"Hello, \"\"world\"\"\",12,true,\"[\"\"x\"\"]\"\n"+
		"b,,1.5,false,\n", buf.String())

	out, err := ReadCSV(strings.NewReader("\ufeff" + buf.String()))
	require.NoError(t, err)
	require.Equal(t, in.Columns, out.Columns)
	require.Equal(t, "Hello, \"world\"", out.Rows[0]["title"])
	require.Nil(t, out.Rows[1]["title"])
	require.Equal(t, []any{12.0, 1.5}, Normalize(out).Column("viewCount"))
}

func TestReadCSVErrors(t *testing.T) {
	t.Parallel()

	_, err := ReadCSV(strings.NewReader("a,a\n1,2\n"))
	require.Error(t, err)

	_, err = ReadCSV(strings.NewReader("a,b\n1\n"))
	require.Error(t, err)

	empty, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	require.True(t, empty.Empty())
}
