package selection

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/killallgit/readwise-api/internal/models"
	apperrors "github.com/killallgit/readwise-api/pkg/errors"
)

// DocumentReader loads the text a selection is captured from
type DocumentReader interface {
	Get(ctx context.Context, id uint) (*models.Document, error)
}

// Service defines the selection toolbar operations of a document
type Service interface {
	Capture(ctx context.Context, documentID uint, start, end int) (State, *Selection, error)
	Current(ctx context.Context, documentID uint) (State, *Selection, error)
	Cancel(ctx context.Context, documentID uint) error
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	documents DocumentReader
	tracker   *Tracker
}

// NewService creates a selection service backed by tracker
func NewService(documents DocumentReader, tracker *Tracker) Service {
	if tracker == nil {
		tracker = NewTracker()
	}
	return &ServiceImpl{documents: documents, tracker: tracker}
}

// Capture records the trimmed range [start, end) as the document's pending
// selection. An empty or whitespace-only range clears any pending selection
// and leaves the document idle. The highlight store is never touched.
func (s *ServiceImpl) Capture(ctx context.Context, documentID uint, start, end int) (State, *Selection, error) {
	doc, err := s.documents.Get(ctx, documentID)
	if err != nil {
		return StateIdle, nil, err
	}

	sel, err := CaptureRunes(doc.Runes(), start, end)
	if err != nil {
		if errors.Is(err, ErrEmptySelection) {
			s.tracker.Clear(documentID)
			return StateIdle, nil, nil
		}
		var rangeErr *RangeError
		if errors.As(err, &rangeErr) {
			return s.tracker.State(documentID), nil, apperrors.ValidationError("start_offset", rangeErr.Error()).
				WithDetail("length", rangeErr.Length)
		}
		return StateIdle, nil, err
	}

	s.tracker.Set(documentID, *sel)
	log.Debug().
		Uint("document_id", documentID).
		Int("start", sel.StartOffset).
		Int("end", sel.EndOffset).
		Msg("selection captured")
	return StatePending, sel, nil
}

// Current reports the document's toolbar state and pending selection
func (s *ServiceImpl) Current(ctx context.Context, documentID uint) (State, *Selection, error) {
	if _, err := s.documents.Get(ctx, documentID); err != nil {
		return StateIdle, nil, err
	}
	sel, ok := s.tracker.Pending(documentID)
	if !ok {
		return StateIdle, nil, nil
	}
	return StatePending, &sel, nil
}

// Cancel discards the pending selection without creating a highlight
func (s *ServiceImpl) Cancel(ctx context.Context, documentID uint) error {
	if _, err := s.documents.Get(ctx, documentID); err != nil {
		return err
	}
	s.tracker.Clear(documentID)
	return nil
}
