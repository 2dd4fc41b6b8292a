package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"thirdcoast.systems/reelscout/internal/table"
)

var rankNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func sample() table.Table {
	return table.New(
		[]string{"videoId", "publishedAt", "viewCount", "channelTitle"},
		[]table.Row{
			{"videoId": "a", "publishedAt": "2025-05-01T00:00:00Z", "viewCount": 10.0, "channelTitle": "B"},
			{"videoId": "b", "publishedAt": "2025-05-31T00:00:00Z", "viewCount": 1000000.0, "channelTitle": "A"},
			{"videoId": "c", "publishedAt": nil, "viewCount": 500.0, "channelTitle": "A"},
			{"videoId": "d", "publishedAt": "2025-05-31T00:00:00Z", "viewCount": 20.0, "channelTitle": "C"},
		},
	)
}

func ids(t table.Table) []any { return t.Column("videoId") }

func TestBuildView_DefaultPrimary(t *testing.T) {
	t.Parallel()

	raw := sample()
	view := BuildView(raw, RankOptions{})
	require.Equal(t, []any{"b", "d", "a", "c"}, ids(view))
	require.Equal(t, []any{"a", "b", "c", "d"}, ids(raw))
	require.False(t, view.Has("score"))
}

func TestBuildView_PrimaryAndSecondary(t *testing.T) {
	t.Parallel()

	view := BuildView(sample(), RankOptions{Primary: "channelTitle", PrimaryOrder: OrderAsc, Secondary: "viewCount"})
	require.Equal(t, []any{"c", "b", "a", "d"}, ids(view))

	view = BuildView(sample(), RankOptions{Primary: "channelTitle", PrimaryOrder: OrderAsc, Secondary: "viewCount", SecondaryOrder: OrderDesc})
	require.Equal(t, []any{"b", "c", "a", "d"}, ids(view))
}

func TestBuildView_Score(t *testing.T) {
	t.Parallel()

	view := BuildView(sample(), RankOptions{UseScore: true, Now: rankNow})
	require.True(t, view.Has("score"))
	require.Equal(t, "b", view.Rows[0]["videoId"])

	scores := view.Column("score")
	for i := 1; i < len(scores); i++ {
		require.GreaterOrEqual(t, scores[i-1].(float64), scores[i].(float64))
	}

	views := BuildView(sample(), RankOptions{UseScore: true, Now: rankNow, Weights: &table.Weights{Views: 1}})
	require.Equal(t, []any{"b", "c", "d", "a"}, ids(views))

	zero := BuildView(sample(), RankOptions{UseScore: true, Now: rankNow, Weights: &table.Weights{}})
	for _, s := range zero.Column("score") {
		require.Zero(t, s)
	}
	require.NoError(t, ValidateRank(RankOptions{UseScore: true, Weights: &table.Weights{}}))
	require.Error(t, ValidateRank(RankOptions{UseScore: true, Weights: &table.Weights{Views: -1}}))
}

func TestBuildView_Fallbacks(t *testing.T) {
	t.Parallel()

	noDates := table.New([]string{"title", "n"}, []table.Row{{"title": "x", "n": 1.0}, {"title": "z", "n": 2.0}})
	require.Equal(t, []any{"z", "x"}, BuildView(noDates, RankOptions{Primary: "missing"}).Column("title"))
	require.True(t, BuildView(table.Table{}, RankOptions{UseScore: true}).Empty())
}
