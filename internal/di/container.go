// Package di provides dependency injection configuration for the BookMuse server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/bookmuse/bookmuse-server/internal/config"
	"github.com/bookmuse/bookmuse-server/internal/di/providers"
	"github.com/bookmuse/bookmuse-server/internal/gemini"
	"github.com/bookmuse/bookmuse-server/internal/logger"
	"github.com/bookmuse/bookmuse-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Provider layer
	do.Provide(injector, providers.ProvideGeminiClient)

	// Business services
	do.Provide(injector, providers.ProvideRecommendationService)
	do.Provide(injector, providers.ProvideBookService)
	do.Provide(injector, providers.ProvidePreferenceService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*gemini.Client](injector)

	_ = do.MustInvoke[*service.RecommendationService](injector)
	_ = do.MustInvoke[*service.BookService](injector)
	_ = do.MustInvoke[*service.PreferenceService](injector)

	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
