package highlights

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/killallgit/readwise-api/internal/database"
	"github.com/killallgit/readwise-api/internal/models"
	"github.com/killallgit/readwise-api/internal/services/documents"
	"github.com/killallgit/readwise-api/internal/services/selection"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	t.Cleanup(func() { _ = db.Close() })
	return db.DB
}

func TestRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewRepository(db)

	doc := &models.Document{Text: catText}
	require.NoError(t, db.Create(doc).Error)

	first := &models.Highlight{DocumentID: doc.ID, Text: "cat", StartOffset: 4, EndOffset: 7}
	second := &models.Highlight{DocumentID: doc.ID, Text: "ran", Note: "motion", StartOffset: 21, EndOffset: 24, Color: models.ColorBlue}
	require.NoError(t, repo.CreateHighlight(ctx, first))
	require.NoError(t, repo.CreateHighlight(ctx, second))
	assert.NotEmpty(t, first.UUID)
	assert.Equal(t, models.ColorYellow, first.Color)

	list, err := repo.GetHighlightsByDocumentID(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID, "insertion order")

	require.NoError(t, repo.UpdateHighlightNote(ctx, first.ID, "pet"))
	got, err := repo.GetHighlightByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "pet", got.Note)
	assert.Equal(t, 4, got.StartOffset, "note update leaves the span alone")

	assert.ErrorIs(t, repo.UpdateHighlightNote(ctx, 999, "x"), ErrHighlightNotFound)

	require.NoError(t, repo.DeleteHighlight(ctx, first.ID))
	assert.ErrorIs(t, repo.DeleteHighlight(ctx, first.ID), ErrHighlightNotFound)
	_, err = repo.GetHighlightByID(ctx, first.ID)
	assert.ErrorIs(t, err, ErrHighlightNotFound)
}

func TestService_WithDatabase(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	tracker := selection.NewTracker()
	docService := documents.NewService(documents.NewRepository(db), documents.WithSelectionTracker(tracker))
	service := NewService(NewRepository(db), docService, tracker)

	doc, err := docService.Create(ctx, "Cats", catText)
	require.NoError(t, err)

	h, err := service.Add(ctx, doc.ID, AddInput{Text: "cat", StartOffset: intPtr(17), EndOffset: intPtr(20), Note: "second"})
	require.NoError(t, err)
	assert.Equal(t, 17, h.StartOffset)

	_, err = service.Add(ctx, doc.ID, AddInput{Text: ""})
	require.Error(t, err)

	list, err := service.List(ctx, doc.ID, "SECOND")
	require.NoError(t, err)
	require.Len(t, list, 1)

	updated, err := service.UpdateNote(ctx, h.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "No note", updated.Tooltip())

	removed, err := service.Remove(ctx, h.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = service.Remove(ctx, h.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	list, err = service.List(ctx, doc.ID, "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestService_UpdateNoteTouchesOnlyNote(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	tracker := selection.NewTracker()
	docService := documents.NewService(documents.NewRepository(db), documents.WithSelectionTracker(tracker))
	service := NewService(NewRepository(db), docService, tracker)

	doc, err := docService.Create(ctx, "Cats", catText)
	require.NoError(t, err)
	first, err := service.Add(ctx, doc.ID, AddInput{Text: "cat", StartOffset: intPtr(4), EndOffset: intPtr(7), Note: "pet", Color: "green"})
	require.NoError(t, err)
	second, err := service.Add(ctx, doc.ID, AddInput{Text: "ran", Note: "motion", Color: "pink"})
	require.NoError(t, err)

	before, err := service.List(ctx, doc.ID, "")
	require.NoError(t, err)
	require.Len(t, before, 2)

	_, err = service.UpdateNote(ctx, first.ID, "the first cat")
	require.NoError(t, err)

	after, err := service.List(ctx, doc.ID, "")
	require.NoError(t, err)
	require.Len(t, after, 2)

	assert.Equal(t, "the first cat", after[0].Note)
	assert.Equal(t, "motion", after[1].Note)
	assert.Equal(t, second.ID, after[1].ID)

	withoutNote := func(h models.Highlight) models.Highlight {
		h.Note = ""
		h.UpdatedAt = time.Time{}
		h.CreatedAt = time.Time{}
		return h
	}
	for i := range before {
		assert.Equal(t, withoutNote(before[i]), withoutNote(after[i]), "highlight %d", before[i].ID)
		assert.True(t, before[i].CreatedAt.Equal(after[i].CreatedAt), "highlight %d created_at", before[i].ID)
	}
	assert.Equal(t, before[1].UpdatedAt, after[1].UpdatedAt, "other highlight is not rewritten")
}
