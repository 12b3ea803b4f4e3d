package highlights

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"

	"github.com/killallgit/readwise-api/internal/models"
	"github.com/killallgit/readwise-api/internal/services/selection"
	apperrors "github.com/killallgit/readwise-api/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	documents  DocumentStore
	selections *selection.Tracker
}

// NewService creates a new highlight service
func NewService(repository Repository, documents DocumentStore, selections *selection.Tracker) Service {
	if selections == nil {
		selections = selection.NewTracker()
	}
	return &ServiceImpl{
		repository: repository,
		documents:  documents,
		selections: selections,
	}
}

// Add creates a highlight on a document. The highlighted text must be a
// non-blank substring of the document; the document's pending selection is
// cleared on success.
func (s *ServiceImpl) Add(ctx context.Context, documentID uint, input AddInput) (*models.Highlight, error) {
	doc, err := s.documents.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}

	color, err := models.ParseColor(input.Color)
	if err != nil {
		return nil, apperrors.ValidationError("color", err.Error()).WithDetail("allowed", models.Colors)
	}

	text, start, end, err := resolveSpan(doc.Runes(), input)
	if err != nil {
		return nil, err
	}

	highlight := &models.Highlight{
		DocumentID:  documentID,
		Text:        text,
		Note:        input.Note,
		Color:       color,
		StartOffset: start,
		EndOffset:   end,
	}
	if err := s.repository.CreateHighlight(ctx, highlight); err != nil {
		return nil, apperrors.DatabaseError("create highlight", err)
	}

	s.selections.Clear(documentID)
	s.touch(ctx, documentID)

	log.Debug().
		Uint("document_id", documentID).
		Uint("highlight_id", highlight.ID).
		Int("start", start).
		Int("end", end).
		Msg("highlight created")
	return highlight, nil
}

// resolveSpan validates the requested span against the document text
func resolveSpan(runes []rune, input AddInput) (string, int, int, error) {
	switch {
	case input.StartOffset != nil && input.EndOffset != nil:
		start, end := *input.StartOffset, *input.EndOffset
		if start < 0 || end > len(runes) || start >= end {
			return "", 0, 0, apperrors.ValidationError("start_offset", "offsets are outside the document").
				WithDetail("start_offset", start).
				WithDetail("end_offset", end).
				WithDetail("length", len(runes))
		}
		text := string(runes[start:end])
		if input.Text != "" && input.Text != text {
			return "", 0, 0, apperrors.ValidationError("text", "text does not match the document at the given offsets")
		}
		if strings.TrimSpace(text) == "" {
			return "", 0, 0, apperrors.ValidationError("text", "highlighted text must not be empty")
		}
		return text, start, end, nil

	case input.StartOffset == nil && input.EndOffset == nil:
		if strings.TrimSpace(input.Text) == "" {
			return "", 0, 0, apperrors.ValidationError("text", "highlighted text must not be empty")
		}
		needle := []rune(input.Text)
		start := indexRunes(runes, needle)
		if start < 0 {
			return "", 0, 0, apperrors.ValidationError("text", "text does not occur in the document")
		}
		return input.Text, start, start + len(needle), nil

	default:
		return "", 0, 0, apperrors.ValidationError("start_offset", "start_offset and end_offset must be given together")
	}
}

// indexRunes returns the code point offset of the first occurrence of needle
func indexRunes(haystack, needle []rune) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// ConfirmSelection turns the document's pending selection into a highlight.
// With no pending selection it does nothing and returns nil, nil.
func (s *ServiceImpl) ConfirmSelection(ctx context.Context, documentID uint, note, color string) (*models.Highlight, error) {
	if _, err := s.documents.Get(ctx, documentID); err != nil {
		return nil, err
	}

	sel, ok := s.selections.Take(documentID)
	if !ok {
		log.Debug().Uint("document_id", documentID).Msg("confirm without pending selection ignored")
		return nil, nil
	}

	start, end := sel.StartOffset, sel.EndOffset
	highlight, err := s.Add(ctx, documentID, AddInput{
		Text:        sel.Text,
		Note:        note,
		Color:       color,
		StartOffset: &start,
		EndOffset:   &end,
	})
	if err != nil {
		// Keep the selection so the toolbar can retry, e.g. after a bad color
		s.selections.Restore(documentID, sel)
		return nil, err
	}
	return highlight, nil
}

// Get retrieves a highlight by its ID
func (s *ServiceImpl) Get(ctx context.Context, id uint) (*models.Highlight, error) {
	highlight, err := s.repository.GetHighlightByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrHighlightNotFound) {
			return nil, apperrors.NotFound("highlight", id)
		}
		return nil, apperrors.DatabaseError("get highlight", err)
	}
	return highlight, nil
}

// List returns the document's highlights in insertion order. A non-empty
// filter keeps only highlights whose text or note contains it, ignoring case.
func (s *ServiceImpl) List(ctx context.Context, documentID uint, filter string) ([]models.Highlight, error) {
	if _, err := s.documents.Get(ctx, documentID); err != nil {
		return nil, err
	}

	all, err := s.repository.GetHighlightsByDocumentID(ctx, documentID)
	if err != nil {
		return nil, apperrors.DatabaseError("list highlights", err)
	}
	if all == nil {
		all = []models.Highlight{}
	}
	return Filter(all, filter), nil
}

// Filter keeps highlights whose text or note contains query, using Unicode
// case folding. An empty query returns highlights unchanged.
func Filter(highlights []models.Highlight, query string) []models.Highlight {
	if query == "" {
		return highlights
	}

	fold := cases.Fold()
	q := fold.String(query)
	matched := make([]models.Highlight, 0, len(highlights))
	for _, h := range highlights {
		if strings.Contains(fold.String(h.Text), q) || strings.Contains(fold.String(h.Note), q) {
			matched = append(matched, h)
		}
	}
	return matched
}

// UpdateNote replaces the note of a highlight. An unknown id is a no-op and
// returns nil, nil.
func (s *ServiceImpl) UpdateNote(ctx context.Context, id uint, note string) (*models.Highlight, error) {
	if err := s.repository.UpdateHighlightNote(ctx, id, note); err != nil {
		if errors.Is(err, ErrHighlightNotFound) {
			return nil, nil
		}
		return nil, apperrors.DatabaseError("update highlight", err)
	}

	highlight, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.touch(ctx, highlight.DocumentID)
	return highlight, nil
}

// Remove deletes a highlight. Removing an unknown id is not an error; the
// returned bool reports whether anything was deleted.
func (s *ServiceImpl) Remove(ctx context.Context, id uint) (bool, error) {
	highlight, err := s.repository.GetHighlightByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrHighlightNotFound) {
			return false, nil
		}
		return false, apperrors.DatabaseError("get highlight", err)
	}

	if err := s.repository.DeleteHighlight(ctx, id); err != nil {
		if errors.Is(err, ErrHighlightNotFound) {
			return false, nil
		}
		return false, apperrors.DatabaseError("delete highlight", err)
	}

	s.touch(ctx, highlight.DocumentID)
	log.Debug().Uint("highlight_id", id).Msg("highlight removed")
	return true, nil
}

func (s *ServiceImpl) touch(ctx context.Context, documentID uint) {
	if err := s.documents.Touch(ctx, documentID); err != nil {
		log.Warn().Err(err).Uint("document_id", documentID).Msg("failed to record document activity")
	}
}
