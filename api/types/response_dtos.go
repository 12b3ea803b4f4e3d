package types

import (
	"time"

	"github.com/killallgit/readwise-api/internal/models"
)

// DocumentSummary is a document without its full text, used in listings
type DocumentSummary struct {
	ID             uint                  `json:"id" example:"1"`
	UUID           string                `json:"uuid"`
	Title          string                `json:"title" example:"The Science of Learning"`
	Source         models.DocumentSource `json:"source" example:"sample"`
	CharCount      int                   `json:"char_count" example:"1024"`
	Preview        string                `json:"preview"`
	LastActivityAt time.Time             `json:"last_activity_at"`
	CreatedAt      time.Time             `json:"created_at"`
}

// SampleSummary describes a built-in sample text
type SampleSummary struct {
	Index     int    `json:"index" example:"0"`
	Title     string `json:"title" example:"The Science of Learning"`
	CharCount int    `json:"char_count" example:"512"`
	Preview   string `json:"preview"`
}

// HighlightCounts reports how many highlights a document has
type HighlightCounts struct {
	Total int `json:"total"`
	Noted int `json:"noted"`
}
