package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HighlightColor is one of the fixed highlighter colors
type HighlightColor string

const (
	ColorYellow HighlightColor = "yellow"
	ColorGreen  HighlightColor = "green"
	ColorBlue   HighlightColor = "blue"
	ColorPink   HighlightColor = "pink"
)

// DefaultColor is the first toolbar option
const DefaultColor = ColorYellow

// Colors lists the palette in toolbar order
var Colors = []HighlightColor{ColorYellow, ColorGreen, ColorBlue, ColorPink}

// ParseColor resolves a color name. An empty name means DefaultColor.
func ParseColor(name string) (HighlightColor, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultColor, nil
	}
	for _, c := range Colors {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown highlight color %q", name)
}

// Highlight is a user-marked span of a document with an optional note.
// StartOffset and EndOffset are code point offsets into Document.Text.
type Highlight struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UUID        string         `json:"uuid" gorm:"uniqueIndex;not null"`
	DocumentID  uint           `json:"document_id" gorm:"not null;index"`
	Text        string         `json:"text" gorm:"type:text;not null"`
	Note        string         `json:"note" gorm:"type:text"`
	Color       HighlightColor `json:"color" gorm:"not null;default:yellow"`
	StartOffset int            `json:"start_offset" gorm:"not null"`
	EndOffset   int            `json:"end_offset" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// BeforeCreate generates a UUID and applies the default color
func (h *Highlight) BeforeCreate(tx *gorm.DB) error {
	if h.UUID == "" {
		h.UUID = uuid.New().String()
	}
	if h.Color == "" {
		h.Color = DefaultColor
	}
	return nil
}

// TableName returns the table name for the Highlight model
func (Highlight) TableName() string {
	return "highlights"
}

// Tooltip is the hover text shown for the highlight
func (h *Highlight) Tooltip() string {
	if h.Note == "" {
		return "No note"
	}
	return h.Note
}

// All returns every model owned by the schema, in migration order
func All() []any {
	return []any{&Document{}, &Highlight{}}
}
