package video_api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"thirdcoast.systems/reelscout/cmd/web/handlers/common"
	"thirdcoast.systems/reelscout/internal/search"
)

// HandleRank rebuilds the workspace view from its raw table. Nothing is
// fetched again.
func HandleRank(store *search.WorkspaceStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireWorkspace(c)
		if err != nil {
			return err
		}

		var opts search.RankOptions
		if err := c.Bind(&opts); err != nil {
			return common.ErrBadRequest("invalid json")
		}
		if err := search.ValidateRank(opts); err != nil {
			return common.ErrBadRequest(common.ValidationMessage(err))
		}

		ws, err := store.Rerank(id, opts)
		if errors.Is(err, search.ErrNoWorkspace) {
			return common.ErrNotFound("no results loaded")
		}
		if err != nil {
			return common.ErrInternal("rank failed")
		}
		return c.JSON(200, ws)
	}
}
