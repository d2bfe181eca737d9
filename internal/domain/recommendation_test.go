package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationID(t *testing.T) {
	batch := time.UnixMilli(1700000000000)

	assert.Equal(t, "rec-1700000000000-0", RecommendationID(batch, 0))
	assert.Equal(t, "rec-1700000000000-7", RecommendationID(batch, 7))
}

func TestIsRecommendationID(t *testing.T) {
	assert.True(t, IsRecommendationID("rec-1700000000000-0"))
	assert.False(t, IsRecommendationID("book-V1StGXR8_Z5jdHi6B-myT"))
	assert.False(t, IsRecommendationID(""))
}

func TestEffectiveLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"absent", 0, 5},
		{"negative", -3, 5},
		{"explicit", 2, 2},
		{"large", 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := RecommendationRequest{Limit: tt.limit}
			assert.Equal(t, tt.want, r.EffectiveLimit())
		})
	}
}

func TestHasSignal(t *testing.T) {
	assert.False(t, (&RecommendationRequest{}).HasSignal())
	assert.False(t, (&RecommendationRequest{Limit: 10}).HasSignal())
	assert.True(t, (&RecommendationRequest{FavoriteGenres: []string{"Mystery"}}).HasSignal())
	assert.True(t, (&RecommendationRequest{FavoriteBooks: []string{"Dune"}}).HasSignal())
}

func TestPlaceholderCover_EscapesSeed(t *testing.T) {
	url := PlaceholderCover("The Left Hand of Darkness")

	assert.Contains(t, url, "picsum.photos/seed/")
	assert.NotContains(t, url, " ")
}

func TestPlaceholderBook(t *testing.T) {
	b := PlaceholderBook("rec-1700000000000-3")

	require.NotNil(t, b)
	assert.Equal(t, "rec-1700000000000-3", b.ID)
	assert.NotEmpty(t, b.Title)
	assert.NotEmpty(t, b.CoverImage)
	require.NotNil(t, b.PublicationYear)
	assert.Equal(t, time.Now().Year(), *b.PublicationYear)
}
