package providers

import (
	"github.com/samber/do/v2"

	"github.com/bookmuse/bookmuse-server/internal/gemini"
	"github.com/bookmuse/bookmuse-server/internal/logger"
	"github.com/bookmuse/bookmuse-server/internal/service"
)

// ProvideRecommendationService provides the recommendation service.
func ProvideRecommendationService(i do.Injector) (*service.RecommendationService, error) {
	client := do.MustInvoke[*gemini.Client](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewRecommendationService(client, log.Logger), nil
}

// ProvideBookService provides the book service.
func ProvideBookService(i do.Injector) (*service.BookService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBookService(storeHandle.Store, log.Logger), nil
}

// ProvidePreferenceService provides the preference service.
func ProvidePreferenceService(i do.Injector) (*service.PreferenceService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewPreferenceService(storeHandle.Store, log.Logger), nil
}
