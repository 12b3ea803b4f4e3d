package types

import (
	"github.com/killallgit/readwise-api/internal/database"
	"github.com/killallgit/readwise-api/internal/services/cache"
	"github.com/killallgit/readwise-api/internal/services/documents"
	"github.com/killallgit/readwise-api/internal/services/highlights"
	"github.com/killallgit/readwise-api/internal/services/rendering"
	"github.com/killallgit/readwise-api/internal/services/selection"
	"github.com/killallgit/readwise-api/pkg/render"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB               *database.DB
	DocumentService  documents.Service
	HighlightService highlights.Service
	SelectionService selection.Service
	RenderService    rendering.Service
	CacheStats       cache.StatsProvider

	// DefaultRenderMode is used when a render request names no mode
	DefaultRenderMode render.Mode
	// MaxUploadBytes bounds multipart uploads before the service sees them
	MaxUploadBytes int64
}
