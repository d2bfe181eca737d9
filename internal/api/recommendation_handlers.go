package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookmuse/bookmuse-server/internal/domain"
)

func (s *Server) registerRecommendationRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "createRecommendations",
		Method:      http.MethodPost,
		Path:        "/api/v1/recommendations",
		Summary:     "Get recommendations",
		Description: "Returns model-sourced book recommendations for the given preferences",
		Tags:        []string{"Recommendations"},
	}, s.handleCreateRecommendations)

	huma.Register(s.api, huma.Operation{
		OperationID: "getRecommendations",
		Method:      http.MethodGet,
		Path:        "/api/v1/recommendations",
		Summary:     "Get recommendations (query form)",
		Description: "Query-parameter variant of the recommendations endpoint",
		Tags:        []string{"Recommendations"},
	}, s.handleGetRecommendations)
}

// === DTOs ===

// RecommendationRequestBody is the request body for recommendations.
type RecommendationRequestBody struct {
	FavoriteGenres []string `json:"favoriteGenres,omitempty" doc:"Favorite genres"`
	FavoriteBooks  []string `json:"favoriteBooks,omitempty" doc:"Titles of favorite books"`
	Limit          int      `json:"limit,omitempty" doc:"Number of books to recommend (default 5)"`
}

// CreateRecommendationsInput wraps the request body for Huma.
type CreateRecommendationsInput struct {
	Body RecommendationRequestBody
}

// GetRecommendationsInput contains query parameters for recommendations.
type GetRecommendationsInput struct {
	Genres string `query:"genres" doc:"Comma-separated favorite genres"`
	Books  string `query:"books" doc:"Comma-separated favorite book titles"`
	Limit  int    `query:"limit" doc:"Number of books to recommend (default 5)"`
}

// RecommendationsResponse contains recommended books.
type RecommendationsResponse struct {
	Books []BookResponse `json:"books" doc:"Recommended books"`
}

// RecommendationsOutput wraps the recommendations response for Huma.
type RecommendationsOutput struct {
	Body RecommendationsResponse
}

// === Handlers ===

func (s *Server) handleCreateRecommendations(ctx context.Context, input *CreateRecommendationsInput) (*RecommendationsOutput, error) {
	return s.recommend(ctx, &domain.RecommendationRequest{
		FavoriteGenres: input.Body.FavoriteGenres,
		FavoriteBooks:  input.Body.FavoriteBooks,
		Limit:          input.Body.Limit,
	})
}

func (s *Server) handleGetRecommendations(ctx context.Context, input *GetRecommendationsInput) (*RecommendationsOutput, error) {
	return s.recommend(ctx, &domain.RecommendationRequest{
		FavoriteGenres: splitCommaList(input.Genres),
		FavoriteBooks:  splitCommaList(input.Books),
		Limit:          input.Limit,
	})
}

func (s *Server) recommend(ctx context.Context, req *domain.RecommendationRequest) (*RecommendationsOutput, error) {
	books, err := s.services.Recommendation.Recommend(ctx, req)
	if err != nil {
		return nil, err
	}

	resp := make([]BookResponse, len(books))
	for i, b := range books {
		resp[i] = toBookResponse(b)
	}

	return &RecommendationsOutput{Body: RecommendationsResponse{Books: resp}}, nil
}

// splitCommaList splits a comma separated query value, dropping empty parts.
func splitCommaList(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
