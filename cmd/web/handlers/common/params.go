package common

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"thirdcoast.systems/reelscout/cmd/web/ctxkeys"
)

// RequireWorkspace returns the workspace ID placed on the request by the
// session middleware, or a 500 when the middleware did not run.
func RequireWorkspace(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Request().Context().Value(ctxkeys.WorkspaceID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, ErrInternal("no workspace")
	}
	return id, nil
}
