package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookmuse/bookmuse-server/internal/domain"
)

func TestGetPreferencesEmpty(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	prefs, err := s.GetPreferences(context.Background())
	require.NoError(t, err)
	assert.Empty(t, prefs.FavoriteGenres)
	assert.Empty(t, prefs.FavoriteBooks)
	assert.Empty(t, prefs.DislikedBooks)
}

func TestFavoriteEvictsDislike(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	_, err := s.AddDislike(ctx, "book-1")
	require.NoError(t, err)

	prefs, err := s.AddFavorite(ctx, domain.Book{
		ID:     "book-1",
		Title:  "Dune",
		Genres: []string{"Science Fiction", "Adventure"},
	})
	require.NoError(t, err)

	assert.True(t, prefs.IsFavorite("book-1"))
	assert.False(t, prefs.IsDisliked("book-1"))
	assert.Equal(t, []string{"Science Fiction", "Adventure"}, prefs.FavoriteGenres)
}

func TestDislikeEvictsFavorite(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	_, err := s.AddFavorite(ctx, domain.Book{ID: "book-1", Title: "Dune", Genres: []string{"Science Fiction"}})
	require.NoError(t, err)

	prefs, err := s.AddDislike(ctx, "book-1")
	require.NoError(t, err)

	assert.True(t, prefs.IsDisliked("book-1"))
	assert.False(t, prefs.IsFavorite("book-1"))
	// Genres carried in by the favorite survive its eviction.
	assert.Contains(t, prefs.FavoriteGenres, "Science Fiction")
}

func TestRemoveFavoriteIdempotent(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	_, err := s.AddFavorite(ctx, domain.Book{ID: "book-1", Title: "Dune"})
	require.NoError(t, err)

	prefs, err := s.RemoveFavorite(ctx, "book-1")
	require.NoError(t, err)
	assert.False(t, prefs.IsFavorite("book-1"))

	prefs, err = s.RemoveFavorite(ctx, "book-1")
	require.NoError(t, err)
	assert.False(t, prefs.IsFavorite("book-1"))
}

func TestGenreMutations(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	_, err := s.AddFavoriteGenre(ctx, "Mystery")
	require.NoError(t, err)
	prefs, err := s.AddFavoriteGenre(ctx, "Mystery")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mystery"}, prefs.FavoriteGenres)

	prefs, err = s.RemoveFavoriteGenre(ctx, "Mystery")
	require.NoError(t, err)
	assert.Empty(t, prefs.FavoriteGenres)
}

func TestClearPreferences(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	_, err := s.AddFavorite(ctx, domain.Book{ID: "book-1", Title: "Dune", Genres: []string{"Science Fiction"}})
	require.NoError(t, err)
	_, err = s.AddDislike(ctx, "book-2")
	require.NoError(t, err)

	require.NoError(t, s.ClearPreferences(ctx))

	prefs, err := s.GetPreferences(ctx)
	require.NoError(t, err)
	assert.Empty(t, prefs.FavoriteGenres)
	assert.Empty(t, prefs.FavoriteBooks)
	assert.Empty(t, prefs.DislikedBooks)
}

func TestPreferencesPersist(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	_, err := s.AddFavorite(ctx, domain.Book{ID: "book-1", Title: "Dune", Genres: []string{"Science Fiction"}})
	require.NoError(t, err)

	prefs, err := s.GetPreferences(ctx)
	require.NoError(t, err)
	require.Len(t, prefs.FavoriteBooks, 1)
	assert.Equal(t, "Dune", prefs.FavoriteBooks[0].Title)
	assert.Equal(t, []string{"Science Fiction"}, prefs.FavoriteGenres)
}
