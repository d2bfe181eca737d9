package gemini

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func mustPayload(t *testing.T, text string) *Payload {
	t.Helper()
	p, err := ExtractPayload(text)
	require.NoError(t, err)
	return p
}

func TestNormalize_AssignsPositionalIDs(t *testing.T) {
	p := mustPayload(t, `{"books": [
		{"title": "Dune", "author": "Frank Herbert"},
		{"title": "Hyperion", "author": "Dan Simmons"},
		{"title": "Foundation", "author": "Isaac Asimov"}
	]}`)

	batch := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	books := Normalize(p, batch, testLogger())

	require.Len(t, books, 3)
	for i, book := range books {
		assert.Equal(t, fmt.Sprintf("rec-%d-%d", batch.UnixMilli(), i), book.ID)
	}
	assert.Equal(t, "Dune", books[0].Title)
	assert.Equal(t, "Frank Herbert", books[0].Author)
}

func TestNormalize_ScalarGenreBecomesList(t *testing.T) {
	p := mustPayload(t, `{"books": [{"title": "Dune", "genre": "Science Fiction"}]}`)

	books := Normalize(p, time.Now(), testLogger())

	require.Len(t, books, 1)
	assert.Equal(t, []string{"Science Fiction"}, books[0].Genres)
}

func TestNormalize_MissingGenreIsEmptyList(t *testing.T) {
	p := mustPayload(t, `{"books": [{"title": "Dune"}]}`)

	books := Normalize(p, time.Now(), testLogger())

	require.Len(t, books, 1)
	assert.NotNil(t, books[0].Genres)
	assert.Empty(t, books[0].Genres)
}

func TestNormalize_YearAlias(t *testing.T) {
	p := mustPayload(t, `{"books": [
		{"title": "A", "year": 1965},
		{"title": "B", "publicationYear": 1951, "year": 1999},
		{"title": "C", "publicationYear": "nineteen sixty-five"}
	]}`)

	books := Normalize(p, time.Now(), testLogger())
	require.Len(t, books, 3)

	require.NotNil(t, books[0].PublicationYear)
	assert.Equal(t, 1965, *books[0].PublicationYear)

	require.NotNil(t, books[1].PublicationYear)
	assert.Equal(t, 1951, *books[1].PublicationYear)

	assert.Nil(t, books[2].PublicationYear)
}

func TestNormalize_RatingNumbersOnly(t *testing.T) {
	p := mustPayload(t, `{"books": [
		{"title": "A", "rating": 4.5},
		{"title": "B", "rating": "five stars"}
	]}`)

	books := Normalize(p, time.Now(), testLogger())
	require.Len(t, books, 2)

	require.NotNil(t, books[0].Rating)
	assert.InDelta(t, 4.5, *books[0].Rating, 1e-9)
	assert.Nil(t, books[1].Rating)
}

func TestNormalize_SkipsMalformedEntryKeepsPositions(t *testing.T) {
	p := mustPayload(t, `{"books": [
		{"title": "A"},
		"not a book",
		{"title": "C"}
	]}`)

	batch := time.Now()
	books := Normalize(p, batch, testLogger())

	require.Len(t, books, 2)
	assert.Equal(t, fmt.Sprintf("rec-%d-0", batch.UnixMilli()), books[0].ID)
	assert.Equal(t, fmt.Sprintf("rec-%d-2", batch.UnixMilli()), books[1].ID)
}

func TestNormalize_PlaceholderCover(t *testing.T) {
	p := mustPayload(t, `{"books": [{"title": "War and Peace"}]}`)

	books := Normalize(p, time.Now(), testLogger())

	require.Len(t, books, 1)
	assert.Equal(t, "https://picsum.photos/seed/War%20and%20Peace/300/450", books[0].CoverImage)
}
