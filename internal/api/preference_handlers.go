package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookmuse/bookmuse-server/internal/domain"
	"github.com/bookmuse/bookmuse-server/internal/service"
)

func (s *Server) registerPreferenceRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getPreferences",
		Method:      http.MethodGet,
		Path:        "/api/v1/preferences",
		Summary:     "Get preferences",
		Description: "Returns the preference aggregate",
		Tags:        []string{"Preferences"},
	}, s.handleGetPreferences)

	huma.Register(s.api, huma.Operation{
		OperationID: "clearPreferences",
		Method:      http.MethodDelete,
		Path:        "/api/v1/preferences",
		Summary:     "Clear preferences",
		Description: "Resets the preference aggregate to empty",
		Tags:        []string{"Preferences"},
	}, s.handleClearPreferences)

	huma.Register(s.api, huma.Operation{
		OperationID: "addFavorite",
		Method:      http.MethodPut,
		Path:        "/api/v1/preferences/favorites",
		Summary:     "Favorite a book",
		Description: "Adds a book to favorites, evicting any dislike on it and unioning its genres",
		Tags:        []string{"Preferences"},
	}, s.handleAddFavorite)

	huma.Register(s.api, huma.Operation{
		OperationID: "removeFavorite",
		Method:      http.MethodDelete,
		Path:        "/api/v1/preferences/favorites/{id}",
		Summary:     "Unfavorite a book",
		Description: "Removes a book from favorites; missing ids are a no-op",
		Tags:        []string{"Preferences"},
	}, s.handleRemoveFavorite)

	huma.Register(s.api, huma.Operation{
		OperationID: "addDislike",
		Method:      http.MethodPut,
		Path:        "/api/v1/preferences/dislikes/{id}",
		Summary:     "Dislike a book",
		Description: "Marks a book as disliked, evicting any favorite on it",
		Tags:        []string{"Preferences"},
	}, s.handleAddDislike)

	huma.Register(s.api, huma.Operation{
		OperationID: "removeDislike",
		Method:      http.MethodDelete,
		Path:        "/api/v1/preferences/dislikes/{id}",
		Summary:     "Remove a dislike",
		Description: "Clears a dislike; missing ids are a no-op",
		Tags:        []string{"Preferences"},
	}, s.handleRemoveDislike)

	huma.Register(s.api, huma.Operation{
		OperationID: "addFavoriteGenre",
		Method:      http.MethodPut,
		Path:        "/api/v1/preferences/genres/{genre}",
		Summary:     "Add favorite genre",
		Tags:        []string{"Preferences"},
	}, s.handleAddFavoriteGenre)

	huma.Register(s.api, huma.Operation{
		OperationID: "removeFavoriteGenre",
		Method:      http.MethodDelete,
		Path:        "/api/v1/preferences/genres/{genre}",
		Summary:     "Remove favorite genre",
		Tags:        []string{"Preferences"},
	}, s.handleRemoveFavoriteGenre)
}

// === DTOs ===

// PreferencesResponse contains the preference aggregate in API responses.
type PreferencesResponse struct {
	FavoriteGenres []string       `json:"favoriteGenres" doc:"Favorite genres in insertion order"`
	FavoriteBooks  []BookResponse `json:"favoriteBooks" doc:"Favorited books"`
	DislikedBooks  []string       `json:"dislikedBooks" doc:"Disliked book ids"`
}

func toPreferencesResponse(p *domain.Preferences) PreferencesResponse {
	books := make([]BookResponse, len(p.FavoriteBooks))
	for i, b := range p.FavoriteBooks {
		books[i] = toBookResponse(b)
	}

	genres := p.FavoriteGenres
	if genres == nil {
		genres = []string{}
	}
	disliked := p.DislikedBooks
	if disliked == nil {
		disliked = []string{}
	}

	return PreferencesResponse{
		FavoriteGenres: genres,
		FavoriteBooks:  books,
		DislikedBooks:  disliked,
	}
}

// PreferencesOutput wraps the preferences response for Huma.
type PreferencesOutput struct {
	Body PreferencesResponse
}

// FavoriteBookBody is the request body for favoriting a book.
type FavoriteBookBody struct {
	ID              string   `json:"id" doc:"Book ID"`
	Title           string   `json:"title" doc:"Title"`
	Author          string   `json:"author,omitempty" doc:"Author name"`
	Description     string   `json:"description,omitempty" doc:"Short description"`
	CoverImage      string   `json:"coverImage,omitempty" doc:"Cover image URL"`
	Genres          []string `json:"genre,omitempty" doc:"Genres"`
	Rating          *float64 `json:"rating,omitempty" doc:"Average rating"`
	PublicationYear *int     `json:"publicationYear,omitempty" doc:"Year of publication"`
}

// AddFavoriteInput wraps the favorite book body for Huma.
type AddFavoriteInput struct {
	Body FavoriteBookBody
}

// BookIDInput contains a book id path parameter.
type BookIDInput struct {
	ID string `path:"id" doc:"Book ID"`
}

// GenreInput contains a genre path parameter.
type GenreInput struct {
	Genre string `path:"genre" doc:"Genre name"`
}

// === Handlers ===

func (s *Server) handleGetPreferences(ctx context.Context, _ *struct{}) (*PreferencesOutput, error) {
	prefs, err := s.services.Preference.GetPreferences(ctx)
	if err != nil {
		return nil, err
	}
	return &PreferencesOutput{Body: toPreferencesResponse(prefs)}, nil
}

func (s *Server) handleClearPreferences(ctx context.Context, _ *struct{}) (*PreferencesOutput, error) {
	if err := s.services.Preference.ClearPreferences(ctx); err != nil {
		return nil, err
	}
	return &PreferencesOutput{Body: toPreferencesResponse(domain.NewPreferences())}, nil
}

func (s *Server) handleAddFavorite(ctx context.Context, input *AddFavoriteInput) (*PreferencesOutput, error) {
	prefs, err := s.services.Preference.AddFavorite(ctx, service.FavoriteBookRequest{
		ID:              input.Body.ID,
		Title:           input.Body.Title,
		Author:          input.Body.Author,
		Description:     input.Body.Description,
		CoverImage:      input.Body.CoverImage,
		Genres:          input.Body.Genres,
		Rating:          input.Body.Rating,
		PublicationYear: input.Body.PublicationYear,
	})
	if err != nil {
		return nil, err
	}
	return &PreferencesOutput{Body: toPreferencesResponse(prefs)}, nil
}

func (s *Server) handleRemoveFavorite(ctx context.Context, input *BookIDInput) (*PreferencesOutput, error) {
	prefs, err := s.services.Preference.RemoveFavorite(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &PreferencesOutput{Body: toPreferencesResponse(prefs)}, nil
}

func (s *Server) handleAddDislike(ctx context.Context, input *BookIDInput) (*PreferencesOutput, error) {
	prefs, err := s.services.Preference.AddDislike(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &PreferencesOutput{Body: toPreferencesResponse(prefs)}, nil
}

func (s *Server) handleRemoveDislike(ctx context.Context, input *BookIDInput) (*PreferencesOutput, error) {
	prefs, err := s.services.Preference.RemoveDislike(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &PreferencesOutput{Body: toPreferencesResponse(prefs)}, nil
}

func (s *Server) handleAddFavoriteGenre(ctx context.Context, input *GenreInput) (*PreferencesOutput, error) {
	prefs, err := s.services.Preference.AddFavoriteGenre(ctx, input.Genre)
	if err != nil {
		return nil, err
	}
	return &PreferencesOutput{Body: toPreferencesResponse(prefs)}, nil
}

func (s *Server) handleRemoveFavoriteGenre(ctx context.Context, input *GenreInput) (*PreferencesOutput, error) {
	prefs, err := s.services.Preference.RemoveFavoriteGenre(ctx, input.Genre)
	if err != nil {
		return nil, err
	}
	return &PreferencesOutput{Body: toPreferencesResponse(prefs)}, nil
}
