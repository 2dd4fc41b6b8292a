package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thirdcoast.systems/reelscout/internal/fetch"
)

func TestRequestDefaults(t *testing.T) {
	t.Parallel()

	got := Request{Keyword: "  debate "}.WithDefaults()
	require.Equal(t, Request{Keyword: "debate", Days: 7, MaxResults: 100, TopN: 10, RankBy: "score", Format: "json"}, got)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	c := NewClient(nil, "")
	cases := map[string]Request{
		"missing keyword": {Keyword: "   "},
		"days too large":  {Keyword: "x", Days: 31},
		"too many":        {Keyword: "x", MaxResults: 201},
		"top_n":           {Keyword: "x", TopN: 51},
		"rank_by":         {Keyword: "x", RankBy: "random"},
		"format":          {Keyword: "x", Format: "xml"},
		"negative days":   {Keyword: "x", Days: -1},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := c.Validate(req)
			require.Error(t, err)
			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
		})
	}

	req, err := c.Validate(Request{Keyword: "x", RankBy: RankLikesPerView, Format: "values", Days: 30, MaxResults: 200, TopN: 50})
	require.NoError(t, err)
	require.Equal(t, "values", req.Format)
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "cats", body["keyword"])
		assert.Equal(t, float64(7), body["days"])
		assert.Equal(t, "score", body["rank_by"])
		_, _ = w.Write([]byte(`{"columns":["video_id","title","duration_sec","view_count","published_at"],
			"values":[["a1","One",45,"1000","2025-01-01T00:00:00Z"],["b2","Two",120,null,null]]}`))
	}))
	defer srv.Close()

	c := NewClient(fetch.NewClient(time.Second), srv.URL)
	got, err := c.Search(context.Background(), Request{Keyword: "cats"})
	require.NoError(t, err)
	require.Equal(t, []string{"videoId", "title", "durationSec", "viewCount", "publishedAt", "isShorts", "url"}, got.Columns)
	require.Equal(t, []any{true, false}, got.Column("isShorts"))
	require.Equal(t, []any{1000.0, nil}, got.Column("viewCount"))
	require.Equal(t, "https://www.youtube.com/watch?v=a1", got.Rows[0]["url"])
}

func TestSearch_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(fetch.NewClient(time.Second), srv.URL).Search(context.Background(), Request{Keyword: "cats"})
	require.Error(t, err)
	var se *fetch.StatusError
	require.True(t, errors.As(err, &se))

	_, err = NewClient(fetch.NewClient(time.Second), "").Search(context.Background(), Request{Keyword: "cats"})
	require.ErrorIs(t, err, ErrNoEndpoint)
}
