package types

import (
	"github.com/killallgit/readwise-api/internal/models"
	"github.com/killallgit/readwise-api/internal/services/rendering"
	"github.com/killallgit/readwise-api/internal/services/selection"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// DocumentResponse for a single document with its text
type DocumentResponse struct {
	BaseResponse
	Document   *models.Document `json:"document"`
	Highlights HighlightCounts  `json:"highlights"`
}

// DocumentsResponse for document listings
type DocumentsResponse struct {
	BaseResponse
	Documents []DocumentSummary `json:"documents"`
	Count     int               `json:"count"`
}

// SamplesResponse lists the built-in sample texts
type SamplesResponse struct {
	BaseResponse
	Samples []SampleSummary `json:"samples"`
	Count   int             `json:"count"`
}

// SelectionResponse reports the selection toolbar state of a document
type SelectionResponse struct {
	BaseResponse
	DocumentID uint                 `json:"document_id"`
	State      selection.State      `json:"state" enums:"idle,pending"`
	Selection  *selection.Selection `json:"selection,omitempty"`
}

// HighlightResponse for a single highlight
type HighlightResponse struct {
	BaseResponse
	Highlight *models.Highlight `json:"highlight"`
	Tooltip   string            `json:"tooltip"`
}

// HighlightsResponse for highlight listings
type HighlightsResponse struct {
	BaseResponse
	DocumentID uint               `json:"document_id"`
	Highlights []models.Highlight `json:"highlights"`
	Count      int                `json:"count"`
	Query      string             `json:"query,omitempty"`
}

// DeleteResponse reports whether a delete removed anything
type DeleteResponse struct {
	BaseResponse
	Deleted bool `json:"deleted"`
}

// RenderResponse for rendered documents
type RenderResponse struct {
	BaseResponse
	*rendering.Result
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Timestamp string                 `json:"timestamp"`
	Database  map[string]interface{} `json:"database"`
	Cache     interface{}            `json:"cache,omitempty"`
}

// OK builds a successful BaseResponse
func OK(message string) BaseResponse {
	return BaseResponse{Status: StatusOK, Message: message}
}
