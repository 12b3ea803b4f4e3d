package selection

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/readwise-api/api/types"
	selectionService "github.com/killallgit/readwise-api/internal/services/selection"
)

// Capture records the pending selection of a document
// @Summary      Capture selection
// @Description  Record a text range as the document's pending selection. Surrounding whitespace is trimmed; a blank range clears the selection. No highlight is created.
// @Tags         selection
// @Accept       json
// @Produce      json
// @Param        id path int true "Document ID"
// @Param        selection body types.CaptureSelectionRequest true "Code point offsets"
// @Success      200 {object} types.SelectionResponse "Selection state"
// @Failure      400 {object} types.ErrorResponse "Invalid offsets"
// @Failure      404 {object} types.ErrorResponse "Document not found"
// @Router       /api/v1/documents/{id}/selection [post]
func Capture(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.CaptureSelectionRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		state, sel, err := deps.SelectionService.Capture(c.Request.Context(), id, *req.StartOffset, *req.EndOffset)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		message := "Selection captured"
		if state == selectionService.StateIdle {
			message = "Empty selection ignored"
		}
		types.SendSuccess(c, types.SelectionResponse{
			BaseResponse: types.OK(message),
			DocumentID:   id,
			State:        state,
			Selection:    sel,
		})
	}
}

// Get reports the pending selection of a document
// @Summary      Get selection
// @Description  Report whether the document has a selection awaiting confirmation
// @Tags         selection
// @Produce      json
// @Param        id path int true "Document ID"
// @Success      200 {object} types.SelectionResponse "Selection state"
// @Failure      404 {object} types.ErrorResponse "Document not found"
// @Router       /api/v1/documents/{id}/selection [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		state, sel, err := deps.SelectionService.Current(c.Request.Context(), id)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.SelectionResponse{
			BaseResponse: types.OK("Selection retrieved"),
			DocumentID:   id,
			State:        state,
			Selection:    sel,
		})
	}
}

// Cancel discards the pending selection
// @Summary      Cancel selection
// @Description  Discard the pending selection without creating a highlight
// @Tags         selection
// @Produce      json
// @Param        id path int true "Document ID"
// @Success      200 {object} types.SelectionResponse "Idle selection state"
// @Failure      404 {object} types.ErrorResponse "Document not found"
// @Router       /api/v1/documents/{id}/selection [delete]
func Cancel(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.SelectionService.Cancel(c.Request.Context(), id); err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.SelectionResponse{
			BaseResponse: types.OK("Selection cancelled"),
			DocumentID:   id,
			State:        selectionService.StateIdle,
		})
	}
}

// Confirm turns the pending selection into a highlight
// @Summary      Confirm selection
// @Description  Create a highlight from the pending selection with an optional note and color. Without a pending selection nothing happens and 204 is returned.
// @Tags         selection
// @Accept       json
// @Produce      json
// @Param        id path int true "Document ID"
// @Param        highlight body types.ConfirmSelectionRequest false "Note and color"
// @Success      201 {object} types.HighlightResponse "Created highlight"
// @Success      204 "No pending selection"
// @Failure      400 {object} types.ErrorResponse "Invalid color"
// @Failure      404 {object} types.ErrorResponse "Document not found"
// @Router       /api/v1/documents/{id}/selection/confirm [post]
func Confirm(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.ConfirmSelectionRequest
		if !types.BindOptionalJSON(c, &req) {
			return
		}

		highlight, err := deps.HighlightService.ConfirmSelection(c.Request.Context(), id, req.Note, req.Color)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		if highlight == nil {
			c.Status(http.StatusNoContent)
			return
		}

		types.SendCreated(c, types.HighlightResponse{
			BaseResponse: types.OK("Highlight created"),
			Highlight:    highlight,
			Tooltip:      highlight.Tooltip(),
		})
	}
}
