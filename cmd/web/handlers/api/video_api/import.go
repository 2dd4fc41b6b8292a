package video_api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"thirdcoast.systems/reelscout/cmd/web/handlers/common"
	"thirdcoast.systems/reelscout/internal/search"
	"thirdcoast.systems/reelscout/internal/table"
)

// HandleImport loads a CSV or JSON upload (form field "file") or a raw JSON
// body into the workspace.
func HandleImport(store *search.WorkspaceStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireWorkspace(c)
		if err != nil {
			return err
		}

		var (
			t    table.Table
			name string
		)
		if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
			fh, err := c.FormFile("file")
			if err != nil {
				return common.ErrBadRequest("file is required")
			}
			f, err := fh.Open()
			if err != nil {
				return common.ErrBadRequest("unreadable upload")
			}
			defer f.Close()
			name = fh.Filename
			t, err = search.Import(f, name)
			if err != nil {
				return common.ErrBadRequest("failed to parse upload: " + err.Error())
			}
		} else {
			name = "pasted.json"
			body := http.MaxBytesReader(c.Response(), c.Request().Body, 2<<20)
			t, err = search.Import(body, name)
			if err != nil {
				return common.ErrBadRequest("failed to parse json: " + err.Error())
			}
		}

		ws := store.Load(id, "import:"+name, t)
		slog.Info("workspace loaded", "workspace", id, "source", ws.Source, "rows", t.Len())
		return c.JSON(200, ws)
	}
}
