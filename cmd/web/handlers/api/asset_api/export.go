package asset_api

import (
	"bytes"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"thirdcoast.systems/reelscout/cmd/web/handlers/common"
	"thirdcoast.systems/reelscout/internal/media"
	"thirdcoast.systems/reelscout/pkg/utils/filename"
)

type exportRequest struct {
	Query string       `json:"query"`
	Items []media.Item `json:"items" validate:"required,min=1"`
}

// HandleExport returns the picked items as a metadata CSV download.
func HandleExport() echo.HandlerFunc {
	validate := validator.New()
	return func(c echo.Context) error {
		var req exportRequest
		if err := c.Bind(&req); err != nil {
			return common.ErrBadRequest("invalid json")
		}
		if err := validate.Struct(req); err != nil {
			return common.ErrBadRequest("no items selected")
		}

		var buf bytes.Buffer
		if err := media.WriteCSV(&buf, req.Items); err != nil {
			return common.ErrInternal("failed to write csv")
		}
		name := filename.Export("assets", req.Query, "csv", time.Now())
		return common.Attachment(c, "text/csv; charset=utf-8", name, buf.Bytes())
	}
}
