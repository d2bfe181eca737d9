package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookmuse/bookmuse-server/internal/domain"
	apperrors "github.com/bookmuse/bookmuse-server/internal/errors"
)

func TestListBooks(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	require.NoError(t, ts.store.SeedCatalog(context.Background(), domain.SeedBooks()))

	resp := ts.api.Get("/api/v1/books")
	require.Equal(t, http.StatusOK, resp.Code)

	var body ListBooksResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Books, 5)
	for _, b := range body.Books {
		assert.NotEmpty(t, b.ID)
		assert.NotEmpty(t, b.Title)
	}
}

func TestGetBook(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	book := domain.Book{Title: "Dune", Author: "Frank Herbert"}
	require.NoError(t, ts.store.PutBook(context.Background(), &book))

	resp := ts.api.Get("/api/v1/books/" + book.ID)
	require.Equal(t, http.StatusOK, resp.Code)

	var body BookResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Dune", body.Title)
}

func TestGetBook_RecommendationPlaceholder(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/books/rec-1700000000000-0")
	require.Equal(t, http.StatusOK, resp.Code)

	var body BookResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "rec-1700000000000-0", body.ID)
	assert.Equal(t, "Recommended Book", body.Title)
}

func TestGetBook_NotFound(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/books/book-missing")
	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), string(apperrors.CodeNotFound))
}
