package documents

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/killallgit/readwise-api/internal/models"
	"github.com/killallgit/readwise-api/internal/services/selection"
	apperrors "github.com/killallgit/readwise-api/pkg/errors"
)

const (
	defaultMaxUploadBytes = 1 << 20
	defaultMaxTextRunes   = 200000
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository     Repository
	selections     *selection.Tracker
	maxUploadBytes int64
	maxTextRunes   int
	now            func() time.Time
}

// Option configures the document service
type Option func(*ServiceImpl)

// WithMaxUploadBytes limits the size of uploaded files
func WithMaxUploadBytes(n int64) Option {
	return func(s *ServiceImpl) {
		if n > 0 {
			s.maxUploadBytes = n
		}
	}
}

// WithMaxTextRunes limits the length of reading text
func WithMaxTextRunes(n int) Option {
	return func(s *ServiceImpl) {
		if n > 0 {
			s.maxTextRunes = n
		}
	}
}

// WithSelectionTracker lets the service drop pending selections of deleted documents
func WithSelectionTracker(t *selection.Tracker) Option {
	return func(s *ServiceImpl) {
		s.selections = t
	}
}

// NewService creates a new document service
func NewService(repository Repository, opts ...Option) Service {
	s := &ServiceImpl{
		repository:     repository,
		maxUploadBytes: defaultMaxUploadBytes,
		maxTextRunes:   defaultMaxTextRunes,
		now:            func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores pasted text as a new document
func (s *ServiceImpl) Create(ctx context.Context, title, text string) (*models.Document, error) {
	return s.create(ctx, title, text, models.SourcePaste, nil)
}

// Upload stores the contents of a plain text file as a new document.
// Anything that is not plain text is rejected without changing state.
func (s *ServiceImpl) Upload(ctx context.Context, filename, declaredType string, content []byte) (*models.Document, error) {
	if int64(len(content)) > s.maxUploadBytes {
		return nil, apperrors.Newf(apperrors.ErrCodeFileTooLarge, "file is larger than %d bytes", s.maxUploadBytes).
			WithDetail("max_bytes", s.maxUploadBytes)
	}

	mediaType := DetectMediaType(declaredType, content)
	if mediaType != "text/plain" || !utf8.Valid(content) {
		log.Debug().Str("filename", filename).Str("media_type", mediaType).Msg("rejected upload")
		return nil, apperrors.InvalidFileType(mediaType)
	}

	return s.create(ctx, titleFromFilename(filename), string(content), models.SourceUpload, datatypes.JSONMap{
		"filename":   filepath.Base(filename),
		"media_type": mediaType,
		"bytes":      len(content),
	})
}

// Sample loads a built-in sample text by index or title, the first one when name is empty
func (s *ServiceImpl) Sample(ctx context.Context, name string) (*models.Document, error) {
	sample, ok := FindSample(name)
	if !ok {
		return nil, apperrors.NotFound("sample", name)
	}
	return s.create(ctx, sample.Title, sample.Text, models.SourceSample, nil)
}

func (s *ServiceImpl) create(ctx context.Context, title, text string, source models.DocumentSource, metadata datatypes.JSONMap) (*models.Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.ValidationError("text", "Please enter or upload some text")
	}
	if n := utf8.RuneCountInString(text); n > s.maxTextRunes {
		return nil, apperrors.ValidationError("text", "text is too long").
			WithDetail("max_runes", s.maxTextRunes).
			WithDetail("runes", n)
	}

	doc := &models.Document{
		Title:          strings.TrimSpace(title),
		Text:           text,
		Source:         source,
		Metadata:       metadata,
		LastActivityAt: s.now(),
	}
	if err := s.repository.CreateDocument(ctx, doc); err != nil {
		return nil, apperrors.DatabaseError("create document", err)
	}

	log.Debug().Uint("document_id", doc.ID).Str("source", string(source)).Int("chars", doc.CharCount).Msg("document created")
	return doc, nil
}

// Get retrieves a document by its ID
func (s *ServiceImpl) Get(ctx context.Context, id uint) (*models.Document, error) {
	doc, err := s.repository.GetDocumentByID(ctx, id)
	if err != nil {
		return nil, s.mapError("get document", id, err)
	}
	return doc, nil
}

// List returns every document
func (s *ServiceImpl) List(ctx context.Context) ([]models.Document, error) {
	docs, err := s.repository.ListDocuments(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("list documents", err)
	}
	return docs, nil
}

// Touch records activity on a document so the sweeper keeps it
func (s *ServiceImpl) Touch(ctx context.Context, id uint) error {
	if err := s.repository.TouchDocument(ctx, id, s.now()); err != nil {
		return s.mapError("touch document", id, err)
	}
	return nil
}

// Delete removes a document, its highlights and any pending selection
func (s *ServiceImpl) Delete(ctx context.Context, id uint) error {
	if err := s.repository.DeleteDocument(ctx, id); err != nil {
		return s.mapError("delete document", id, err)
	}
	if s.selections != nil {
		s.selections.Clear(id)
	}
	log.Debug().Uint("document_id", id).Msg("document deleted")
	return nil
}

// ExpireIdle deletes documents idle for longer than ttl
func (s *ServiceImpl) ExpireIdle(ctx context.Context, ttl time.Duration) (int, error) {
	ids, err := s.repository.DeleteIdleDocuments(ctx, s.now().Add(-ttl))
	if err != nil {
		return 0, apperrors.DatabaseError("expire documents", err)
	}
	if s.selections != nil {
		for _, id := range ids {
			s.selections.Clear(id)
		}
	}
	return len(ids), nil
}

func (s *ServiceImpl) mapError(operation string, id uint, err error) error {
	if errors.Is(err, ErrDocumentNotFound) {
		return apperrors.NotFound("document", id)
	}
	return apperrors.DatabaseError(operation, err)
}
