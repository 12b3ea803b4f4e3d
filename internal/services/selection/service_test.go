package selection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/readwise-api/internal/models"
	apperrors "github.com/killallgit/readwise-api/pkg/errors"
)

type mockDocuments struct {
	mock.Mock
}

func (m *mockDocuments) Get(ctx context.Context, id uint) (*models.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Document), args.Error(1)
}

func newTestService(t *testing.T) (Service, *Tracker) {
	t.Helper()
	docs := new(mockDocuments)
	docs.On("Get", mock.Anything, uint(1)).Return(&models.Document{ID: 1, Text: "The cat sat. The cat ran."}, nil)
	docs.On("Get", mock.Anything, uint(9)).Return(nil, apperrors.NotFound("document", uint(9)))
	tracker := NewTracker()
	return NewService(docs, tracker), tracker
}

func TestServiceImpl_Capture(t *testing.T) {
	ctx := context.Background()

	t.Run("records pending selection", func(t *testing.T) {
		service, tracker := newTestService(t)

		state, sel, err := service.Capture(ctx, 1, 16, 21)
		require.NoError(t, err)
		assert.Equal(t, StatePending, state)
		assert.Equal(t, "cat", sel.Text)
		assert.Equal(t, 17, sel.StartOffset)
		assert.Equal(t, 20, sel.EndOffset)
		assert.Equal(t, StatePending, tracker.State(1))
	})

	t.Run("whitespace selection clears pending", func(t *testing.T) {
		service, tracker := newTestService(t)
		tracker.Set(1, Selection{Text: "cat", StartOffset: 4, EndOffset: 7})

		state, sel, err := service.Capture(ctx, 1, 12, 13)
		require.NoError(t, err)
		assert.Equal(t, StateIdle, state)
		assert.Nil(t, sel)
		assert.Equal(t, StateIdle, tracker.State(1))
	})

	t.Run("out of range is a validation error", func(t *testing.T) {
		service, tracker := newTestService(t)

		_, _, err := service.Capture(ctx, 1, 0, 500)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
		assert.Equal(t, StateIdle, tracker.State(1))
	})

	t.Run("unknown document", func(t *testing.T) {
		service, _ := newTestService(t)

		_, _, err := service.Capture(ctx, 9, 0, 3)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
	})
}

func TestServiceImpl_CurrentAndCancel(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t)

	state, sel, err := service.Current(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, StateIdle, state)
	assert.Nil(t, sel)

	_, _, err = service.Capture(ctx, 1, 4, 7)
	require.NoError(t, err)

	state, sel, err = service.Current(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, StatePending, state)
	assert.Equal(t, "cat", sel.Text)

	require.NoError(t, service.Cancel(ctx, 1))
	state, _, err = service.Current(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, StateIdle, state)

	assert.True(t, apperrors.Is(service.Cancel(ctx, 9), apperrors.ErrCodeNotFound))
}
