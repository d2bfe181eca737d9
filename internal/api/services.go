package api

import (
	"github.com/bookmuse/bookmuse-server/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Recommendation *service.RecommendationService
	Book           *service.BookService
	Preference     *service.PreferenceService
}
