package documents

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/readwise-api/api/types"
	documentService "github.com/killallgit/readwise-api/internal/services/documents"
	apperrors "github.com/killallgit/readwise-api/pkg/errors"
)

// Create loads pasted text as a new document
// @Summary      Create document from text
// @Description  Load pasted text as a new, immutable reading document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        document body types.CreateDocumentRequest true "Title and text"
// @Success      201 {object} types.DocumentResponse "Created document"
// @Failure      400 {object} types.ErrorResponse "Empty or invalid text"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/documents [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateDocumentRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		doc, err := deps.DocumentService.Create(c.Request.Context(), req.Title, req.Text)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendCreated(c, types.DocumentResponse{
			BaseResponse: types.OK("Document created"),
			Document:     doc,
		})
	}
}

// Upload loads a plain text file as a new document
// @Summary      Upload text file
// @Description  Upload a .txt file as a new reading document. Files that are not plain UTF-8 text are rejected.
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Plain text file"
// @Success      201 {object} types.DocumentResponse "Created document"
// @Failure      400 {object} types.ErrorResponse "Missing file or invalid file type"
// @Failure      413 {object} types.ErrorResponse "File too large"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/documents/upload [post]
func Upload(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile("file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				types.SendAppError(c, apperrors.New(apperrors.ErrCodeFileTooLarge, "Uploaded file is too large"))
				return
			}
			types.SendBadRequest(c, "A file is required in the 'file' form field")
			return
		}

		if deps.MaxUploadBytes > 0 && header.Size > deps.MaxUploadBytes {
			types.SendAppError(c, apperrors.New(apperrors.ErrCodeFileTooLarge, "Uploaded file is too large").
				WithDetail("max_bytes", deps.MaxUploadBytes))
			return
		}

		file, err := header.Open()
		if err != nil {
			types.SendInternalError(c, "Failed to read uploaded file")
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			types.SendInternalError(c, "Failed to read uploaded file")
			return
		}

		doc, err := deps.DocumentService.Upload(c.Request.Context(), header.Filename, header.Header.Get("Content-Type"), content)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendCreated(c, types.DocumentResponse{
			BaseResponse: types.OK("Document uploaded"),
			Document:     doc,
		})
	}
}

// Sample loads one of the built-in sample texts
// @Summary      Load sample text
// @Description  Create a document from a built-in sample, chosen by index or title. Defaults to the first sample.
// @Tags         documents
// @Produce      json
// @Param        name query string false "Sample index or title" example(Climate Change Impact)
// @Success      201 {object} types.DocumentResponse "Created document"
// @Failure      404 {object} types.ErrorResponse "Unknown sample"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/documents/sample [post]
func Sample(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := deps.DocumentService.Sample(c.Request.Context(), c.Query("name"))
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendCreated(c, types.DocumentResponse{
			BaseResponse: types.OK("Sample loaded"),
			Document:     doc,
		})
	}
}

// ListSamples returns the built-in sample texts
// @Summary      List sample texts
// @Description  List the built-in samples that can be loaded with POST /api/v1/documents/sample
// @Tags         documents
// @Produce      json
// @Success      200 {object} types.SamplesResponse "Samples"
// @Router       /api/v1/documents/samples [get]
func ListSamples(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		samples := types.ToSampleSummaries(documentService.Samples)
		types.SendSuccess(c, types.SamplesResponse{
			BaseResponse: types.OK("Samples retrieved"),
			Samples:      samples,
			Count:        len(samples),
		})
	}
}

// List returns all documents, newest first
// @Summary      List documents
// @Description  List reading documents without their full text
// @Tags         documents
// @Produce      json
// @Success      200 {object} types.DocumentsResponse "Documents"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/documents [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := deps.DocumentService.List(c.Request.Context())
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		summaries := types.ToDocumentSummaries(docs)
		types.SendSuccess(c, types.DocumentsResponse{
			BaseResponse: types.OK("Documents retrieved"),
			Documents:    summaries,
			Count:        len(summaries),
		})
	}
}

// Get returns a document with its text
// @Summary      Get document
// @Description  Retrieve a reading document, its text and highlight counts
// @Tags         documents
// @Produce      json
// @Param        id path int true "Document ID"
// @Success      200 {object} types.DocumentResponse "Document"
// @Failure      400 {object} types.ErrorResponse "Invalid document ID"
// @Failure      404 {object} types.ErrorResponse "Document not found"
// @Router       /api/v1/documents/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		doc, err := deps.DocumentService.Get(c.Request.Context(), id)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		resp := types.DocumentResponse{
			BaseResponse: types.OK("Document retrieved"),
			Document:     doc,
		}
		if deps.HighlightService != nil {
			highlights, err := deps.HighlightService.List(c.Request.Context(), id, "")
			if err != nil {
				types.SendAppError(c, err)
				return
			}
			resp.Highlights = types.CountHighlights(highlights)
		}
		types.SendSuccess(c, resp)
	}
}

// Delete removes a document with its highlights
// @Summary      Delete document
// @Description  Delete a reading document, its highlights and any pending selection
// @Tags         documents
// @Produce      json
// @Param        id path int true "Document ID"
// @Success      200 {object} types.DeleteResponse "Deleted"
// @Failure      400 {object} types.ErrorResponse "Invalid document ID"
// @Failure      404 {object} types.ErrorResponse "Document not found"
// @Router       /api/v1/documents/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.DocumentService.Delete(c.Request.Context(), id); err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.DeleteResponse{
			BaseResponse: types.OK("Document deleted"),
			Deleted:      true,
		})
	}
}
