package service

import (
	"context"
	"log/slog"

	"github.com/bookmuse/bookmuse-server/internal/domain"
	apperrors "github.com/bookmuse/bookmuse-server/internal/errors"
	"github.com/bookmuse/bookmuse-server/internal/store"
)

// BookService orchestrates catalog lookups.
type BookService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewBookService creates a new book service.
func NewBookService(store *store.Store, logger *slog.Logger) *BookService {
	return &BookService{
		store:  store,
		logger: logger,
	}
}

// ListBooks returns the whole catalog.
func (s *BookService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return s.store.ListBooks(ctx)
}

// GetBook resolves a book id. The catalog is checked first, then the
// favorited books, since a favorited recommendation never enters the
// catalog. A recommendation id that is in neither resolves to a
// placeholder stub rather than a 404: the id proves the book existed in
// an earlier model response whose details were never persisted.
func (s *BookService) GetBook(ctx context.Context, bookID string) (*domain.Book, error) {
	book, err := s.store.GetBook(ctx, bookID)
	if err == nil {
		return book, nil
	}
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	prefs, err := s.store.GetPreferences(ctx)
	if err != nil {
		return nil, err
	}
	if fav := prefs.FavoriteByID(bookID); fav != nil {
		return fav, nil
	}

	if domain.IsRecommendationID(bookID) {
		s.logger.Debug("synthesizing placeholder for recommendation id", "bookId", bookID)
		return domain.PlaceholderBook(bookID), nil
	}

	return nil, store.ErrBookNotFound
}
