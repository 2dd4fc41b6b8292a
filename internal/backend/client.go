// Package backend calls the hosted YouTube search service and turns its
// response into a prepared table.
package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"thirdcoast.systems/reelscout/internal/table"
)

// ErrNoEndpoint is returned when no search endpoint is configured.
var ErrNoEndpoint = errors.New("backend: search endpoint not configured")

// Rank orders accepted by the service.
const (
	RankScore        = "score"
	RankViewCount    = "view_count"
	RankViewsPerHour = "views_per_hour"
	RankLikeCount    = "like_count"
	RankLikesPerView = "likes_per_view"
)

// Request is the body posted to the search service.
type Request struct {
	Keyword    string `json:"keyword" validate:"required"`
	Days       int    `json:"days" validate:"min=1,max=30"`
	MaxResults int    `json:"max_results" validate:"min=1,max=200"`
	TopN       int    `json:"top_n" validate:"min=1,max=50"`
	RankBy     string `json:"rank_by" validate:"oneof=score view_count views_per_hour like_count likes_per_view"`
	Format     string `json:"format" validate:"oneof=json values"`
}

// WithDefaults trims the keyword and fills unset fields: 7 days, 100
// results, top 10, ranked by score, json format.
func (r Request) WithDefaults() Request {
	r.Keyword = strings.TrimSpace(r.Keyword)
	if r.Days == 0 {
		r.Days = 7
	}
	if r.MaxResults == 0 {
		r.MaxResults = 100
	}
	if r.TopN == 0 {
		r.TopN = 10
	}
	if r.RankBy == "" {
		r.RankBy = RankScore
	}
	if r.Format == "" {
		r.Format = "json"
	}
	return r
}

// Poster is the fetch collaborator used for the search call.
type Poster interface {
	PostJSON(ctx context.Context, rawURL string, in any, out any) error
}

type Client struct {
	fetch    Poster
	endpoint string
	validate *validator.Validate
}

func NewClient(fetch Poster, endpoint string) *Client {
	return &Client{
		fetch:    fetch,
		endpoint: strings.TrimSpace(endpoint),
		validate: validator.New(),
	}
}

// Validate applies defaults to req and checks it.
func (c *Client) Validate(req Request) (Request, error) {
	req = req.WithDefaults()
	if err := c.validate.Struct(req); err != nil {
		return req, fmt.Errorf("invalid search request: %w", err)
	}
	return req, nil
}

// Search posts req and returns the response as a standardized, normalized
// table with watch URLs.
func (c *Client) Search(ctx context.Context, req Request) (table.Table, error) {
	req, err := c.Validate(req)
	if err != nil {
		return table.Table{}, err
	}
	if c.endpoint == "" {
		return table.Table{}, ErrNoEndpoint
	}

	var payload any
	if err := c.fetch.PostJSON(ctx, c.endpoint, req, &payload); err != nil {
		return table.Table{}, fmt.Errorf("backend search: %w", err)
	}
	return table.Prepare(table.FromResponse(payload)), nil
}
