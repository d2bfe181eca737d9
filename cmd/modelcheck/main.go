// Command modelcheck probes each configured Gemini model and reports
// whether it answers. Useful when the model fallback list needs pruning
// after provider deprecations.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/bookmuse/bookmuse-server/internal/config"
	"github.com/bookmuse/bookmuse-server/internal/gemini"
	"github.com/bookmuse/bookmuse-server/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Gemini.APIKey == "" {
		fmt.Fprintln(os.Stderr, "GEMINI_API_KEY is not set")
		os.Exit(1)
	}

	logg := logger.New(logger.Config{
		Level:       logger.ParseLevel("error"),
		Environment: cfg.App.Environment,
	})

	ctx := context.Background()
	client, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, gemini.Options{
		Models:         cfg.Gemini.Models,
		AttemptTimeout: cfg.Gemini.AttemptTimeout,
	}, logg.Logger)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	fmt.Println("=== Gemini Model Check ===")
	fmt.Println()

	working := 0
	for _, model := range client.Models() {
		probeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		start := time.Now()
		answer, err := client.Probe(probeCtx, model)
		elapsed := time.Since(start).Round(time.Millisecond)
		cancel()

		if err != nil {
			fmt.Printf("FAIL %-40s %8s  %v\n", model, elapsed, err)
			continue
		}

		preview := answer
		if len(preview) > 60 {
			preview = preview[:60] + "..."
		}
		fmt.Printf("OK   %-40s %8s  %q\n", model, elapsed, preview)
		working++
	}

	fmt.Println()
	fmt.Printf("%d/%d models answered\n", working, len(client.Models()))
	if working == 0 {
		os.Exit(1)
	}
}
