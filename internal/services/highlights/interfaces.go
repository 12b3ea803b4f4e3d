package highlights

import (
	"context"
	"errors"

	"github.com/killallgit/readwise-api/internal/models"
)

// ErrHighlightNotFound is returned by the repository for unknown ids
var ErrHighlightNotFound = errors.New("highlight not found")

// Repository defines the interface for highlight data access
type Repository interface {
	// Create operations
	CreateHighlight(ctx context.Context, highlight *models.Highlight) error

	// Read operations
	GetHighlightByID(ctx context.Context, id uint) (*models.Highlight, error)
	GetHighlightsByDocumentID(ctx context.Context, documentID uint) ([]models.Highlight, error)

	// Update operations
	UpdateHighlightNote(ctx context.Context, id uint, note string) error

	// Delete operations
	DeleteHighlight(ctx context.Context, id uint) error
}

// DocumentStore is the part of the document service highlights depend on
type DocumentStore interface {
	Get(ctx context.Context, id uint) (*models.Document, error)
	Touch(ctx context.Context, id uint) error
}

// AddInput describes a highlight to create. Offsets are optional; when both
// are nil the first occurrence of Text in the document is used.
type AddInput struct {
	Text        string `json:"text"`
	Note        string `json:"note"`
	Color       string `json:"color"`
	StartOffset *int   `json:"start_offset"`
	EndOffset   *int   `json:"end_offset"`
}

// Service defines the interface for the highlight store
type Service interface {
	// Create operations
	Add(ctx context.Context, documentID uint, input AddInput) (*models.Highlight, error)
	ConfirmSelection(ctx context.Context, documentID uint, note, color string) (*models.Highlight, error)

	// Read operations
	Get(ctx context.Context, id uint) (*models.Highlight, error)
	List(ctx context.Context, documentID uint, filter string) ([]models.Highlight, error)

	// Update operations
	UpdateNote(ctx context.Context, id uint, note string) (*models.Highlight, error)

	// Delete operations
	Remove(ctx context.Context, id uint) (bool, error)
}
