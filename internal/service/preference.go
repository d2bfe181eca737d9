package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bookmuse/bookmuse-server/internal/domain"
	apperrors "github.com/bookmuse/bookmuse-server/internal/errors"
	"github.com/bookmuse/bookmuse-server/internal/store"
	"github.com/bookmuse/bookmuse-server/internal/validation"
)

// PreferenceService orchestrates preference mutations.
type PreferenceService struct {
	store     *store.Store
	logger    *slog.Logger
	validator *validation.Validator
}

// NewPreferenceService creates a new preference service.
func NewPreferenceService(store *store.Store, logger *slog.Logger) *PreferenceService {
	return &PreferenceService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
	}
}

// GetPreferences returns the current aggregate.
func (s *PreferenceService) GetPreferences(ctx context.Context) (*domain.Preferences, error) {
	return s.store.GetPreferences(ctx)
}

// ClearPreferences resets the aggregate to empty.
func (s *PreferenceService) ClearPreferences(ctx context.Context) error {
	return s.store.ClearPreferences(ctx)
}

// FavoriteBookRequest carries the full book to favorite. Recommended
// books are not in the catalog, so the client sends the whole record.
type FavoriteBookRequest struct {
	ID              string   `json:"id" validate:"required,min=1"`
	Title           string   `json:"title" validate:"required,min=1,max=500"`
	Author          string   `json:"author" validate:"max=500"`
	Description     string   `json:"description"`
	CoverImage      string   `json:"coverImage" validate:"omitempty,url"`
	Genres          []string `json:"genre"`
	Rating          *float64 `json:"rating"`
	PublicationYear *int     `json:"publicationYear"`
}

// AddFavorite favorites a book and returns the updated aggregate. The
// book's genres are unioned into the favorite genres and any dislike on
// the same id is evicted.
func (s *PreferenceService) AddFavorite(ctx context.Context, req FavoriteBookRequest) (*domain.Preferences, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	book := domain.Book{
		ID:              req.ID,
		Title:           req.Title,
		Author:          req.Author,
		Description:     req.Description,
		CoverImage:      req.CoverImage,
		Genres:          req.Genres,
		Rating:          req.Rating,
		PublicationYear: req.PublicationYear,
	}

	s.logger.Info("favoriting book", "bookId", book.ID, "title", book.Title)
	return s.store.AddFavorite(ctx, book)
}

// RemoveFavorite unfavorites a book id. Removing an id that is not
// favorited succeeds without effect.
func (s *PreferenceService) RemoveFavorite(ctx context.Context, bookID string) (*domain.Preferences, error) {
	return s.store.RemoveFavorite(ctx, bookID)
}

// AddDislike marks a book id as disliked, evicting any favorite on it.
func (s *PreferenceService) AddDislike(ctx context.Context, bookID string) (*domain.Preferences, error) {
	return s.store.AddDislike(ctx, bookID)
}

// RemoveDislike clears a dislike. Clearing an absent dislike succeeds
// without effect.
func (s *PreferenceService) RemoveDislike(ctx context.Context, bookID string) (*domain.Preferences, error) {
	return s.store.RemoveDislike(ctx, bookID)
}

// AddFavoriteGenre adds a genre to the favorite genres.
func (s *PreferenceService) AddFavoriteGenre(ctx context.Context, genre string) (*domain.Preferences, error) {
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return nil, apperrors.Validation("genre must not be empty")
	}
	return s.store.AddFavoriteGenre(ctx, genre)
}

// RemoveFavoriteGenre removes a genre from the favorite genres.
func (s *PreferenceService) RemoveFavoriteGenre(ctx context.Context, genre string) (*domain.Preferences, error) {
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return nil, apperrors.Validation("genre must not be empty")
	}
	return s.store.RemoveFavoriteGenre(ctx, genre)
}
