package highlights

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/readwise-api/api/types"
	highlightsService "github.com/killallgit/readwise-api/internal/services/highlights"
	apperrors "github.com/killallgit/readwise-api/pkg/errors"
)

// Add creates a highlight on a document
// @Summary      Add highlight
// @Description  Highlight a span of the document directly. With offsets, the text must match the document at those offsets; without, the first occurrence of text is used.
// @Tags         highlights
// @Accept       json
// @Produce      json
// @Param        id path int true "Document ID"
// @Param        highlight body types.AddHighlightRequest true "Highlight"
// @Success      201 {object} types.HighlightResponse "Created highlight"
// @Failure      400 {object} types.ErrorResponse "Invalid highlight"
// @Failure      404 {object} types.ErrorResponse "Document not found"
// @Router       /api/v1/documents/{id}/highlights [post]
func Add(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		documentID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.AddHighlightRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		highlight, err := deps.HighlightService.Add(c.Request.Context(), documentID, highlightsService.AddInput{
			Text:        req.Text,
			Note:        req.Note,
			Color:       req.Color,
			StartOffset: req.StartOffset,
			EndOffset:   req.EndOffset,
		})
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendCreated(c, types.HighlightResponse{
			BaseResponse: types.OK("Highlight created"),
			Highlight:    highlight,
			Tooltip:      highlight.Tooltip(),
		})
	}
}

// List returns a document's highlights, optionally filtered
// @Summary      List highlights
// @Description  List a document's highlights in creation order. q keeps highlights whose text or note contains it, ignoring case.
// @Tags         highlights
// @Produce      json
// @Param        id path int true "Document ID"
// @Param        q query string false "Search text"
// @Success      200 {object} types.HighlightsResponse "Highlights"
// @Failure      404 {object} types.ErrorResponse "Document not found"
// @Router       /api/v1/documents/{id}/highlights [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		documentID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		query := c.Query("q")
		highlights, err := deps.HighlightService.List(c.Request.Context(), documentID, query)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.HighlightsResponse{
			BaseResponse: types.OK("Highlights retrieved"),
			DocumentID:   documentID,
			Highlights:   highlights,
			Count:        len(highlights),
			Query:        query,
		})
	}
}

// Get returns a single highlight
// @Summary      Get highlight
// @Tags         highlights
// @Produce      json
// @Param        id path int true "Highlight ID"
// @Success      200 {object} types.HighlightResponse "Highlight"
// @Failure      404 {object} types.ErrorResponse "Highlight not found"
// @Router       /api/v1/highlights/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		highlight, err := deps.HighlightService.Get(c.Request.Context(), id)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.HighlightResponse{
			BaseResponse: types.OK("Highlight retrieved"),
			Highlight:    highlight,
			Tooltip:      highlight.Tooltip(),
		})
	}
}

// UpdateNote replaces the note of a highlight
// @Summary      Update highlight note
// @Description  Replace a highlight's note. An empty note clears it. Text, color and position never change.
// @Tags         highlights
// @Accept       json
// @Produce      json
// @Param        id path int true "Highlight ID"
// @Param        note body types.UpdateNoteRequest true "New note"
// @Success      200 {object} types.HighlightResponse "Updated highlight"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Highlight not found"
// @Router       /api/v1/highlights/{id}/note [put]
func UpdateNote(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.UpdateNoteRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		highlight, err := deps.HighlightService.UpdateNote(c.Request.Context(), id, *req.Note)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		if highlight == nil {
			types.SendNotFound(c, "Highlight not found")
			return
		}

		types.SendSuccess(c, types.HighlightResponse{
			BaseResponse: types.OK("Note updated"),
			Highlight:    highlight,
			Tooltip:      highlight.Tooltip(),
		})
	}
}

// Delete removes a highlight after explicit confirmation
// @Summary      Delete highlight
// @Description  Delete a highlight. The request must carry confirm=true; otherwise nothing changes and 428 is returned. Deleting an unknown id reports deleted=false.
// @Tags         highlights
// @Produce      json
// @Param        id path int true "Highlight ID"
// @Param        confirm query bool true "Must be true"
// @Success      200 {object} types.DeleteResponse "Delete result"
// @Failure      428 {object} types.ErrorResponse "Confirmation required"
// @Router       /api/v1/highlights/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if c.Query("confirm") != "true" {
			types.SendAppError(c, apperrors.New(apperrors.ErrCodeConfirmationRequired,
				"Deleting a highlight must be confirmed with confirm=true").
				WithDetail("highlight_id", id))
			return
		}

		deleted, err := deps.HighlightService.Remove(c.Request.Context(), id)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		message := "Highlight deleted"
		if !deleted {
			message = "Highlight did not exist"
		}
		c.JSON(http.StatusOK, types.DeleteResponse{
			BaseResponse: types.OK(message),
			Deleted:      deleted,
		})
	}
}
