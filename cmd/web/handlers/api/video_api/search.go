// package video_api provides YouTube result table handlers. Every handler
// works on the workspace of the caller's session.
package video_api

import (
	"errors"
	"log/slog"

	"github.com/labstack/echo/v4"

	"thirdcoast.systems/reelscout/cmd/web/handlers/common"
	"thirdcoast.systems/reelscout/internal/backend"
	"thirdcoast.systems/reelscout/internal/search"
)

// HandleSearch runs a hosted search and replaces the workspace with its
// results.
func HandleSearch(searcher search.Searcher, store *search.WorkspaceStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireWorkspace(c)
		if err != nil {
			return err
		}

		var req backend.Request
		if err := c.Bind(&req); err != nil {
			return common.ErrBadRequest("invalid json")
		}

		t, err := searcher.Search(c.Request().Context(), req)
		switch {
		case err == nil:
		case common.IsValidation(err):
			return common.ErrBadRequest(common.ValidationMessage(err))
		case errors.Is(err, backend.ErrNoEndpoint):
			return common.ErrUnavailable("search endpoint not configured")
		default:
			slog.Error("backend search failed", "keyword", req.Keyword, "error", err)
			return common.ErrBadGateway("search backend failed")
		}

		ws := store.Load(id, "search:"+req.WithDefaults().Keyword, t)
		slog.Info("workspace loaded", "workspace", id, "source", ws.Source, "rows", t.Len())
		return c.JSON(200, ws)
	}
}
