package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bookmuse/bookmuse-server/internal/errors"
	"github.com/bookmuse/bookmuse-server/internal/gemini"
)

func testPayload(t *testing.T, text string) *gemini.Payload {
	t.Helper()
	p, err := gemini.ExtractPayload(text)
	require.NoError(t, err)
	return p
}

func TestCreateRecommendations(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	ts.recommender.payload = testPayload(t, `{"books": [
		{"title": "Gone Girl", "author": "Gillian Flynn", "genre": ["Thriller"], "publicationYear": 2012}
	]}`)

	resp := ts.api.Post("/api/v1/recommendations", map[string]any{
		"favoriteGenres": []string{"Thriller"},
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body RecommendationsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Books, 1)

	book := body.Books[0]
	assert.Equal(t, "Gone Girl", book.Title)
	assert.Contains(t, book.ID, "rec-")
	assert.Contains(t, book.CoverImage, "picsum.photos")
}

func TestCreateRecommendations_NoSignal(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Post("/api/v1/recommendations", map[string]any{})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), string(apperrors.CodeNoSignal))
}

func TestCreateRecommendations_ProviderExhausted(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	ts.recommender.err = apperrors.ProviderExhausted("all models failed")

	resp := ts.api.Post("/api/v1/recommendations", map[string]any{
		"favoriteGenres": []string{"Thriller"},
	})
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), string(apperrors.CodeProviderExhausted))
}

func TestGetRecommendations_QueryForm(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	ts.recommender.payload = testPayload(t, `{"books": [{"title": "Dune"}]}`)

	resp := ts.api.Get("/api/v1/recommendations?genres=Science%20Fiction,Adventure&limit=3")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body RecommendationsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Books, 1)
	assert.Equal(t, "Dune", body.Books[0].Title)
}

func TestGetRecommendations_EmptyQueryRejected(t *testing.T) {
	ts := setupTestServer(t)
	defer ts.cleanup()

	resp := ts.api.Get("/api/v1/recommendations")
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), string(apperrors.CodeNoSignal))
}

func TestSplitCommaList(t *testing.T) {
	assert.Nil(t, splitCommaList(""))
	assert.Nil(t, splitCommaList(" , ,"))
	assert.Equal(t, []string{"a", "b"}, splitCommaList("a,b"))
	assert.Equal(t, []string{"Science Fiction", "Adventure"}, splitCommaList(" Science Fiction , Adventure "))
}
