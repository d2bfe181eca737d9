package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// RecommendationIDPrefix marks ids of model-sourced books that were never
// persisted to the catalog.
const RecommendationIDPrefix = "rec-"

// DefaultRecommendationLimit is used when a request carries no limit or a
// non-positive one.
const DefaultRecommendationLimit = 5

// RecommendationRequest carries the user's signals for a recommendation run.
// FavoriteBooks holds titles, not ids; they are informal prompt material.
type RecommendationRequest struct {
	FavoriteGenres []string `json:"favoriteGenres,omitempty" validate:"omitempty,dive,min=1,max=100"`
	FavoriteBooks  []string `json:"favoriteBooks,omitempty" validate:"omitempty,dive,min=1,max=500"`
	Limit          int      `json:"limit,omitempty"`
}

// HasSignal reports whether the request carries at least one genre or seed title.
func (r *RecommendationRequest) HasSignal() bool {
	return len(r.FavoriteGenres) > 0 || len(r.FavoriteBooks) > 0
}

// EffectiveLimit returns the requested limit, defaulting when absent or non-positive.
func (r *RecommendationRequest) EffectiveLimit() int {
	if r.Limit <= 0 {
		return DefaultRecommendationLimit
	}
	return r.Limit
}

// RecommendationID builds a synthetic book id for a model-sourced book.
// All books of one response share the batch timestamp and differ by index.
func RecommendationID(batch time.Time, index int) string {
	return fmt.Sprintf("%s%d-%d", RecommendationIDPrefix, batch.UnixMilli(), index)
}

// IsRecommendationID reports whether an id was generated for a model-sourced book.
func IsRecommendationID(id string) bool {
	return strings.HasPrefix(id, RecommendationIDPrefix)
}

// PlaceholderCover returns a deterministic placeholder cover URL seeded by
// the given string. Model responses never supply usable cover art.
func PlaceholderCover(seed string) string {
	return "https://picsum.photos/seed/" + url.PathEscape(seed) + "/300/450"
}

// PlaceholderBook synthesizes a book for a recommendation id whose details
// were never persisted. Lookups by such ids succeed with a stub instead of
// failing, since the id is known to originate from a prior model response.
func PlaceholderBook(id string) *Book {
	year := time.Now().Year()
	rating := 4.0
	return &Book{
		ID:              id,
		Title:           "Recommended Book",
		Author:          "Unknown",
		Description:     "This book was suggested by the recommendation model. Detailed information is not available yet.",
		CoverImage:      PlaceholderCover(id),
		Genres:          []string{"Recommended"},
		PublicationYear: &year,
		Rating:          &rating,
	}
}
