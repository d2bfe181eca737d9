package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookmuse/bookmuse-server/internal/domain"
	apperrors "github.com/bookmuse/bookmuse-server/internal/errors"
	"github.com/bookmuse/bookmuse-server/internal/store"
)

func setupTestStore(t *testing.T) (*store.Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "bookmuse-service-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	s, err := store.New(dbPath, nil)
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
		_ = os.RemoveAll(tmpDir)
	}
	return s, cleanup
}

func TestGetBook_FromCatalog(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	book := domain.Book{Title: "Dune", Author: "Frank Herbert"}
	require.NoError(t, s.PutBook(ctx, &book))

	svc := NewBookService(s, testLogger())

	got, err := svc.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)
}

func TestGetBook_FromFavorites(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	// A favorited recommendation never enters the catalog.
	fav := domain.Book{ID: "rec-1700000000000-0", Title: "Hyperion", Author: "Dan Simmons"}
	_, err := s.AddFavorite(ctx, fav)
	require.NoError(t, err)

	svc := NewBookService(s, testLogger())

	got, err := svc.GetBook(ctx, "rec-1700000000000-0")
	require.NoError(t, err)
	assert.Equal(t, "Hyperion", got.Title)
}

func TestGetBook_RecommendationPlaceholder(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	svc := NewBookService(s, testLogger())

	got, err := svc.GetBook(context.Background(), "rec-1700000000000-3")
	require.NoError(t, err)
	assert.Equal(t, "rec-1700000000000-3", got.ID)
	assert.Equal(t, "Recommended Book", got.Title)
	assert.NotEmpty(t, got.CoverImage)
}

func TestGetBook_UnknownID(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	svc := NewBookService(s, testLogger())

	_, err := svc.GetBook(context.Background(), "book-nope")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestListBooks_SeededCatalog(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, s.SeedCatalog(ctx, domain.SeedBooks()))

	svc := NewBookService(s, testLogger())

	books, err := svc.ListBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 5)
}
