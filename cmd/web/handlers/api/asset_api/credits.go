package asset_api

import (
	"html/template"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"thirdcoast.systems/reelscout/cmd/web/handlers/common"
	"thirdcoast.systems/reelscout/internal/media"
	"thirdcoast.systems/reelscout/pkg/utils/markdown"
)

type creditsRequest struct {
	Items   []media.Item   `json:"items"`
	Credits []media.Credit `json:"credits" validate:"dive"`
	// Changes is a markdown note applied to credits built from items. The
	// credit line carries its plain text.
	Changes markdown.Markdown `json:"changes"`
}

type creditView struct {
	Line         string        `json:"line"`
	HTML         template.HTML `json:"html"`
	LicenseBlock string        `json:"license_block,omitempty"`
}

// HandleCredits formats attribution lines for picked items and for credits
// entered by hand.
func HandleCredits() echo.HandlerFunc {
	validate := validator.New()
	return func(c echo.Context) error {
		var req creditsRequest
		if err := c.Bind(&req); err != nil {
			return common.ErrBadRequest("invalid json")
		}
		if len(req.Items) == 0 && len(req.Credits) == 0 {
			return common.ErrBadRequest("nothing to credit")
		}
		if err := validate.Struct(req); err != nil {
			return common.ErrBadRequest(common.ValidationMessage(err))
		}

		out := make([]creditView, 0, len(req.Items)+len(req.Credits))
		for _, it := range req.Items {
			cr := media.CreditFor(it)
			cr.Changes = req.Changes.PlainText()
			out = append(out, creditView{Line: cr.Line(), HTML: cr.HTML(), LicenseBlock: media.LicenseBlock(it)})
		}
		for _, cr := range req.Credits {
			out = append(out, creditView{Line: cr.Line(), HTML: cr.HTML()})
		}
		resp := map[string]any{"credits": out}
		if req.Changes.Source != "" {
			resp["changes"] = &req.Changes
		}
		return c.JSON(200, resp)
	}
}
