package rendering

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/killallgit/readwise-api/internal/models"
	"github.com/killallgit/readwise-api/internal/services/cache"
	"github.com/killallgit/readwise-api/pkg/render"
)

// DocumentReader loads the text being rendered
type DocumentReader interface {
	Get(ctx context.Context, id uint) (*models.Document, error)
}

// HighlightLister loads a document's highlights in insertion order
type HighlightLister interface {
	List(ctx context.Context, documentID uint, filter string) ([]models.Highlight, error)
}

// Result is a rendered document
type Result struct {
	DocumentID uint             `json:"document_id"`
	Mode       render.Mode      `json:"mode"`
	Revision   string           `json:"revision"`
	Cached     bool             `json:"cached"`
	Segments   []render.Segment `json:"segments"`
}

// Service renders documents with their highlights
type Service interface {
	Render(ctx context.Context, documentID uint, mode render.Mode) (*Result, error)
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	documents  DocumentReader
	highlights HighlightLister
	cache      cache.Cache
	ttl        time.Duration
}

// Option configures the rendering service
type Option func(*ServiceImpl)

// WithCache stores rendered segments in c for ttl
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *ServiceImpl) {
		s.cache = c
		s.ttl = ttl
	}
}

// NewService creates a new rendering service
func NewService(documents DocumentReader, highlights HighlightLister, opts ...Option) Service {
	s := &ServiceImpl{
		documents:  documents,
		highlights: highlights,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Render segments the document text by its highlights
func (s *ServiceImpl) Render(ctx context.Context, documentID uint, mode render.Mode) (*Result, error) {
	if mode == "" {
		mode = render.ModeOffsets
	}

	doc, err := s.documents.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}
	highlights, err := s.highlights.List(ctx, documentID, "")
	if err != nil {
		return nil, err
	}

	result := &Result{
		DocumentID: documentID,
		Mode:       mode,
		Revision:   Revision(highlights),
	}

	key := cache.RenderKey(doc.UUID, string(mode), result.Revision)
	if s.cache != nil {
		if data, ok := s.cache.Get(ctx, key); ok {
			var segments []render.Segment
			if err := json.Unmarshal(data, &segments); err == nil {
				result.Segments = segments
				result.Cached = true
				return result, nil
			}
			log.Warn().Str("key", key).Msg("discarding undecodable render cache entry")
			_ = s.cache.Delete(ctx, key)
		}
	}

	result.Segments = render.Render(doc.Text, Spans(highlights), mode)

	if s.cache != nil {
		data, err := json.Marshal(result.Segments)
		if err == nil {
			if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("failed to cache rendered document")
			}
		}
	}
	return result, nil
}

// Spans converts stored highlights to renderer spans, preserving order
func Spans(highlights []models.Highlight) []render.Span {
	spans := make([]render.Span, 0, len(highlights))
	for _, h := range highlights {
		spans = append(spans, render.Span{
			ID:    h.ID,
			Start: h.StartOffset,
			End:   h.EndOffset,
			Text:  h.Text,
			Color: string(h.Color),
			Note:  h.Note,
		})
	}
	return spans
}

// Revision summarises a highlight set so that any add, remove or note edit
// produces a different value
func Revision(highlights []models.Highlight) string {
	var maxID uint
	var latest time.Time
	for _, h := range highlights {
		if h.ID > maxID {
			maxID = h.ID
		}
		if h.UpdatedAt.After(latest) {
			latest = h.UpdatedAt
		}
	}
	var stamp int64
	if !latest.IsZero() {
		stamp = latest.UnixNano()
	}
	return fmt.Sprintf("%d-%d-%d", len(highlights), maxID, stamp)
}
