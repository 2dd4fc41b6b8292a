package common

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"thirdcoast.systems/reelscout/internal/table"
	"thirdcoast.systems/reelscout/pkg/utils/filename"
)

// Attachment sends body as a downloadable file.
func Attachment(c echo.Context, contentType, name string, body []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Blob(http.StatusOK, contentType, body)
}

// TableCSV sends t as a CSV attachment named after kind and label.
func TableCSV(c echo.Context, kind, label string, t table.Table) error {
	var buf bytes.Buffer
	if err := table.WriteCSV(&buf, t); err != nil {
		return ErrInternal("failed to write csv")
	}
	return Attachment(c, "text/csv; charset=utf-8", filename.Export(kind, label, "csv", time.Now()), buf.Bytes())
}
