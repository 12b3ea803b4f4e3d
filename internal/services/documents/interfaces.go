package documents

import (
	"context"
	"errors"
	"time"

	"github.com/killallgit/readwise-api/internal/models"
)

// ErrDocumentNotFound is returned by the repository for unknown ids
var ErrDocumentNotFound = errors.New("document not found")

// Repository defines the interface for document data access
type Repository interface {
	// Create operations
	CreateDocument(ctx context.Context, doc *models.Document) error

	// Read operations
	GetDocumentByID(ctx context.Context, id uint) (*models.Document, error)
	ListDocuments(ctx context.Context) ([]models.Document, error)

	// Update operations
	TouchDocument(ctx context.Context, id uint, at time.Time) error

	// Delete operations
	DeleteDocument(ctx context.Context, id uint) error
	DeleteIdleDocuments(ctx context.Context, idleSince time.Time) ([]uint, error)
}

// Service defines the interface for reading text management
type Service interface {
	// Create operations
	Create(ctx context.Context, title, text string) (*models.Document, error)
	Upload(ctx context.Context, filename, declaredType string, content []byte) (*models.Document, error)
	Sample(ctx context.Context, name string) (*models.Document, error)

	// Read operations
	Get(ctx context.Context, id uint) (*models.Document, error)
	List(ctx context.Context) ([]models.Document, error)

	// Update operations
	Touch(ctx context.Context, id uint) error

	// Delete operations
	Delete(ctx context.Context, id uint) error
	ExpireIdle(ctx context.Context, ttl time.Duration) (int, error)
}
