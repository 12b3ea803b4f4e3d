package models

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DocumentSource records how the reading text was loaded
type DocumentSource string

const (
	SourcePaste  DocumentSource = "paste"
	SourceUpload DocumentSource = "upload"
	SourceSample DocumentSource = "sample"
)

// Document is the immutable source text of a reading session.
// Loading new text always creates a new Document, so highlight offsets
// recorded against it stay valid for its whole lifetime.
type Document struct {
	ID             uint              `json:"id" gorm:"primaryKey"`
	UUID           string            `json:"uuid" gorm:"uniqueIndex;not null"`
	Title          string            `json:"title" gorm:"not null"`
	Text           string            `json:"text" gorm:"type:text;not null"`
	Source         DocumentSource    `json:"source" gorm:"not null;default:paste"`
	CharCount      int               `json:"char_count" gorm:"not null"`
	Metadata       datatypes.JSONMap `json:"metadata,omitempty"`
	LastActivityAt time.Time         `json:"last_activity_at" gorm:"index"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`

	Highlights []Highlight `json:"highlights,omitempty" gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate fills identifiers and derived fields
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.UUID == "" {
		d.UUID = uuid.New().String()
	}
	if d.Title == "" {
		d.Title = "Untitled"
	}
	d.CharCount = utf8.RuneCountInString(d.Text)
	if d.LastActivityAt.IsZero() {
		d.LastActivityAt = tx.NowFunc()
	}
	return nil
}

// TableName returns the table name for the Document model
func (Document) TableName() string {
	return "documents"
}

// Runes returns the document text as code points, the unit highlight offsets use
func (d *Document) Runes() []rune {
	return []rune(d.Text)
}
