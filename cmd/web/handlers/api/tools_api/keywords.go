// package tools_api provides small helper endpoints.
package tools_api

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"thirdcoast.systems/reelscout/cmd/web/handlers/common"
	"thirdcoast.systems/reelscout/internal/keywords"
)

type drawRequest struct {
	// Text holds one keyword per line. Keywords is used when Text is empty.
	Text     string   `json:"text"`
	Keywords []string `json:"keywords"`
	Count    int      `json:"count"`
}

// HandleDrawKeywords picks random keywords from the posted list.
func HandleDrawKeywords() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := drawRequest{Count: 3}
		if err := c.Bind(&req); err != nil {
			return common.ErrBadRequest("invalid json")
		}

		pool := req.Keywords
		if strings.TrimSpace(req.Text) != "" {
			pool = keywords.Parse(req.Text)
		}

		picked, err := keywords.Draw(pool, req.Count, nil)
		if errors.Is(err, keywords.ErrNothingToDraw) {
			return common.ErrBadRequest("enter at least one keyword")
		}
		if err != nil {
			return common.ErrBadRequest(err.Error())
		}
		return c.JSON(200, map[string]any{
			"keywords": picked,
			"text":     strings.Join(picked, "\n"),
		})
	}
}
