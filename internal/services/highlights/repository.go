package highlights

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/readwise-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new highlight repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateHighlight creates a new highlight in the database
func (r *RepositoryImpl) CreateHighlight(ctx context.Context, highlight *models.Highlight) error {
	if err := r.db.WithContext(ctx).Create(highlight).Error; err != nil {
		return fmt.Errorf("creating highlight: %w", err)
	}
	return nil
}

// GetHighlightByID retrieves a highlight by its ID
func (r *RepositoryImpl) GetHighlightByID(ctx context.Context, id uint) (*models.Highlight, error) {
	var highlight models.Highlight
	if err := r.db.WithContext(ctx).First(&highlight, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHighlightNotFound
		}
		return nil, fmt.Errorf("getting highlight: %w", err)
	}
	return &highlight, nil
}

// GetHighlightsByDocumentID retrieves the highlights of a document in insertion order
func (r *RepositoryImpl) GetHighlightsByDocumentID(ctx context.Context, documentID uint) ([]models.Highlight, error) {
	var highlights []models.Highlight
	if err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
		Find(&highlights).Error; err != nil {
		return nil, fmt.Errorf("getting highlights for document: %w", err)
	}
	return highlights, nil
}

// UpdateHighlightNote replaces the note of a highlight, leaving every other column alone
func (r *RepositoryImpl) UpdateHighlightNote(ctx context.Context, id uint, note string) error {
	result := r.db.WithContext(ctx).Model(&models.Highlight{ID: id}).Update("note", note)
	if result.Error != nil {
		return fmt.Errorf("updating highlight note: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrHighlightNotFound
	}
	return nil
}

// DeleteHighlight deletes a highlight by its ID
func (r *RepositoryImpl) DeleteHighlight(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Highlight{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting highlight: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrHighlightNotFound
	}
	return nil
}
