package video_api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"thirdcoast.systems/reelscout/cmd/web/auth"
	"thirdcoast.systems/reelscout/cmd/web/handlers/common"
	"thirdcoast.systems/reelscout/internal/search"
)

type sessionView struct {
	WorkspaceID string     `json:"workspace_id,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	Loaded      bool       `json:"loaded"`
	Source      string     `json:"source,omitempty"`
}

// HandleSession reports the caller's workspace without creating one.
func HandleSession(sm *auth.SessionManager, store *search.WorkspaceStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var out sessionView
		id, err := sm.WorkspaceID(c.Request())
		if err != nil {
			return c.JSON(http.StatusOK, out)
		}
		out.WorkspaceID = id.String()
		if started := sm.GetSessionCreatedAt(c.Request()); !started.IsZero() {
			out.StartedAt = &started
		}
		if ws, ok := store.Get(id); ok && !ws.View.Empty() {
			out.Loaded = true
			out.Source = ws.Source
		}
		return c.JSON(http.StatusOK, out)
	}
}

// HandleReset drops the caller's results and expires the session cookie.
func HandleReset(sm *auth.SessionManager, store *search.WorkspaceStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		if id, err := sm.WorkspaceID(c.Request()); err == nil {
			store.Delete(id)
		}
		if err := sm.ClearSession(c.Response().Writer, c.Request()); err != nil {
			slog.Error("failed to clear session", "error", err)
			return common.ErrInternal("session unavailable")
		}
		return c.NoContent(http.StatusNoContent)
	}
}
