package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/readwise-api/api/types"
	"github.com/killallgit/readwise-api/pkg/render"
)

const (
	FormatJSON = "json"
	FormatHTML = "html"
)

// Get renders a document with its highlights
// @Summary      Render document
// @Description  Render the document text as segments. mode=offsets marks each highlight where it was captured; mode=content marks every case-insensitive occurrence of highlighted text.
// @Tags         render
// @Produce      json
// @Produce      html
// @Param        id path int true "Document ID"
// @Param        format query string false "Output format" Enums(json, html)
// @Param        mode query string false "Highlight placement" Enums(offsets, content)
// @Success      200 {object} types.RenderResponse "Rendered segments"
// @Failure      400 {object} types.ErrorResponse "Invalid format or mode"
// @Failure      404 {object} types.ErrorResponse "Document not found"
// @Router       /api/v1/documents/{id}/render [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		format := c.DefaultQuery("format", FormatJSON)
		if format != FormatJSON && format != FormatHTML {
			types.SendBadRequest(c, "format must be json or html")
			return
		}

		modeName := c.Query("mode")
		if modeName == "" {
			modeName = string(deps.DefaultRenderMode)
		}
		mode, valid := render.ParseMode(modeName)
		if !valid {
			types.SendBadRequest(c, "mode must be offsets or content")
			return
		}

		result, err := deps.RenderService.Render(c.Request.Context(), id, mode)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		if result.Cached {
			c.Header("X-Cache", "HIT")
		} else {
			c.Header("X-Cache", "MISS")
		}

		if format == FormatHTML {
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(render.HTML(result.Segments)))
			return
		}

		types.SendSuccess(c, types.RenderResponse{
			BaseResponse: types.OK("Document rendered"),
			Result:       result,
		})
	}
}
