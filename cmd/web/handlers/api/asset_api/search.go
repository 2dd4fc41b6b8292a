// package asset_api provides stock asset search and export handlers.
package asset_api

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"thirdcoast.systems/reelscout/cmd/web/handlers/common"
	"thirdcoast.systems/reelscout/internal/media"
	"thirdcoast.systems/reelscout/internal/search"
)

type searchResponse struct {
	Query string       `json:"query"`
	Count int          `json:"count"`
	Items []media.Item `json:"items"`
}

// HandleSearch runs an asset search. Omitted fields keep the defaults of
// search.DefaultAssetQuery.
func HandleSearch(finder *search.AssetFinder) echo.HandlerFunc {
	return func(c echo.Context) error {
		q := search.DefaultAssetQuery("")
		if err := c.Bind(&q); err != nil {
			return common.ErrBadRequest("invalid json")
		}

		items, err := finder.Find(c.Request().Context(), q)
		if err != nil {
			if common.IsValidation(err) {
				return common.ErrBadRequest(common.ValidationMessage(err))
			}
			slog.Error("asset search failed", "query", q.Query, "error", err)
			return common.ErrInternal("search failed")
		}
		if items == nil {
			items = []media.Item{}
		}
		return c.JSON(200, searchResponse{Query: q.Query, Count: len(items), Items: items})
	}
}
