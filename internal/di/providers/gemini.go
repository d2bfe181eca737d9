package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/bookmuse/bookmuse-server/internal/config"
	"github.com/bookmuse/bookmuse-server/internal/gemini"
	"github.com/bookmuse/bookmuse-server/internal/logger"
)

// ProvideGeminiClient provides the recommendation provider client.
func ProvideGeminiClient(i do.Injector) (*gemini.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	opts := gemini.Options{
		Models:            cfg.Gemini.Models,
		AttemptTimeout:    cfg.Gemini.AttemptTimeout,
		RequestsPerMinute: cfg.Gemini.RequestsPerMinute,
	}

	if cfg.Gemini.APIKey == "" {
		log.Warn("GEMINI_API_KEY not set, recommendation requests will fail")
		return gemini.NewClientWithGenerator(gemini.UnconfiguredGenerator{}, opts, log.Logger), nil
	}

	client, err := gemini.NewClient(context.Background(), cfg.Gemini.APIKey, opts, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Gemini client initialized", "models", len(cfg.Gemini.Models))
	return client, nil
}
