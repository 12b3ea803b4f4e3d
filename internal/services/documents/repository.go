package documents

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/killallgit/readwise-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new document repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateDocument inserts a new document
func (r *RepositoryImpl) CreateDocument(ctx context.Context, doc *models.Document) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return fmt.Errorf("creating document: %w", err)
	}
	return nil
}

// GetDocumentByID retrieves a document by its ID
func (r *RepositoryImpl) GetDocumentByID(ctx context.Context, id uint) (*models.Document, error) {
	var doc models.Document
	if err := r.db.WithContext(ctx).First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("getting document: %w", err)
	}
	return &doc, nil
}

// ListDocuments returns every document, newest first
func (r *RepositoryImpl) ListDocuments(ctx context.Context) ([]models.Document, error) {
	var docs []models.Document
	if err := r.db.WithContext(ctx).Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	return docs, nil
}

// TouchDocument records activity on a document
func (r *RepositoryImpl) TouchDocument(ctx context.Context, id uint, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.Document{}).
		Where("id = ?", id).
		UpdateColumn("last_activity_at", at)
	if result.Error != nil {
		return fmt.Errorf("touching document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

// DeleteDocument removes a document together with its highlights
func (r *RepositoryImpl) DeleteDocument(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", id).Delete(&models.Highlight{}).Error; err != nil {
			return fmt.Errorf("deleting highlights: %w", err)
		}
		result := tx.Delete(&models.Document{}, id)
		if result.Error != nil {
			return fmt.Errorf("deleting document: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrDocumentNotFound
		}
		return nil
	})
}

// DeleteIdleDocuments removes documents with no activity since idleSince and
// returns their ids
func (r *RepositoryImpl) DeleteIdleDocuments(ctx context.Context, idleSince time.Time) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Document{}).
			Where("last_activity_at < ?", idleSince).
			Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("finding idle documents: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Where("document_id IN ?", ids).Delete(&models.Highlight{}).Error; err != nil {
			return fmt.Errorf("deleting highlights: %w", err)
		}
		if err := tx.Where("id IN ?", ids).Delete(&models.Document{}).Error; err != nil {
			return fmt.Errorf("deleting documents: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
