package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/bookmuse/bookmuse-server/internal/domain"
	apperrors "github.com/bookmuse/bookmuse-server/internal/errors"
	"github.com/bookmuse/bookmuse-server/internal/gemini"
	"github.com/bookmuse/bookmuse-server/internal/validation"
)

// Recommender fetches raw recommendation payloads for a prompt.
// Implemented by the Gemini client; tests substitute fakes.
type Recommender interface {
	FetchRecommendations(ctx context.Context, prompt string) (*gemini.Payload, error)
}

// RecommendationService orchestrates recommendation runs.
type RecommendationService struct {
	recommender Recommender
	logger      *slog.Logger
	validator   *validation.Validator
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(recommender Recommender, logger *slog.Logger) *RecommendationService {
	return &RecommendationService{
		recommender: recommender,
		logger:      logger,
		validator:   validation.New(),
	}
}

// Recommend validates the request, builds a prompt from its signals, and
// returns normalized books from the first model that answers usably.
// Requests with neither genres nor seed titles are rejected outright; an
// empty prompt would only produce generic filler.
func (s *RecommendationService) Recommend(ctx context.Context, req *domain.RecommendationRequest) ([]domain.Book, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if !req.HasSignal() {
		return nil, apperrors.NoSignal("provide at least one favorite genre or favorite book")
	}

	limit := req.EffectiveLimit()
	prompt := gemini.BuildPrompt(req.FavoriteGenres, req.FavoriteBooks, limit)

	s.logger.Info("fetching recommendations",
		"genres", len(req.FavoriteGenres),
		"seedBooks", len(req.FavoriteBooks),
		"limit", limit)

	payload, err := s.recommender.FetchRecommendations(ctx, prompt)
	if err != nil {
		return nil, err
	}

	books := gemini.Normalize(payload, time.Now(), s.logger)
	s.logger.Info("recommendations ready", "count", len(books))
	return books, nil
}
