package video_api

import (
	"strings"

	"github.com/labstack/echo/v4"

	"thirdcoast.systems/reelscout/cmd/web/handlers/common"
	"thirdcoast.systems/reelscout/internal/search"
)

// HandleView returns the current view as JSON, or as a CSV download with
// ?format=csv.
func HandleView(store *search.WorkspaceStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireWorkspace(c)
		if err != nil {
			return err
		}

		ws, ok := store.Get(id)
		if !ok || ws.View.Empty() {
			return common.ErrNotFound("no results loaded")
		}

		switch c.QueryParam("format") {
		case "", "json":
			return c.JSON(200, ws)
		case "csv":
			_, label, _ := strings.Cut(ws.Source, ":")
			return common.TableCSV(c, "videos", label, ws.View)
		default:
			return common.ErrBadRequest("format must be json or csv")
		}
	}
}
