package gemini

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	apperrors "github.com/bookmuse/bookmuse-server/internal/errors"
)

// Options configures a recommendation client.
type Options struct {
	// Models is the ordered list of model identifiers to try.
	Models []string
	// AttemptTimeout bounds each individual model call.
	AttemptTimeout time.Duration
	// RequestsPerMinute caps outbound provider calls. Zero disables the
	// limiter.
	RequestsPerMinute int
}

// Client fetches book recommendations from the Gemini API, walking an
// ordered model list until one returns a parseable payload.
type Client struct {
	gen            TextGenerator
	models         []string
	limiter        *rate.Limiter
	attemptTimeout time.Duration
	logger         *slog.Logger
}

// NewClient creates a Gemini-backed recommendation client.
func NewClient(ctx context.Context, apiKey string, opts Options, logger *slog.Logger) (*Client, error) {
	gen, err := newGenAIGenerator(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	return NewClientWithGenerator(gen, opts, logger), nil
}

// NewClientWithGenerator creates a client over an arbitrary text
// generator. Used by tests and diagnostics.
func NewClientWithGenerator(gen TextGenerator, opts Options, logger *slog.Logger) *Client {
	var limiter *rate.Limiter
	if opts.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(opts.RequestsPerMinute)/60.0), 1)
	}

	return &Client{
		gen:            gen,
		models:         opts.Models,
		limiter:        limiter,
		attemptTimeout: opts.AttemptTimeout,
		logger:         logger,
	}
}

// Models returns the ordered model list the client walks.
func (c *Client) Models() []string {
	return c.models
}

// FetchRecommendations sends the prompt to each configured model in
// order and returns the first parseable payload. A model that errors,
// returns no JSON object, or returns JSON without a recommendation list
// is skipped; its successors are still tried. When every model fails
// the combined error carries the last attempt's failure.
func (c *Client) FetchRecommendations(ctx context.Context, prompt string) (*Payload, error) {
	if len(c.models) == 0 {
		return nil, apperrors.Internal("no models configured")
	}

	var lastErr error
	for _, model := range c.models {
		payload, err := c.tryModel(ctx, model, prompt)
		if err == nil {
			return payload, nil
		}

		lastErr = &AttemptError{Model: model, Err: err}
		c.logger.Warn("model attempt failed", "model", model, "error", err)

		// A cancelled caller should not burn through the remaining
		// models.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, apperrors.ProviderExhausted("all models failed").WithCause(lastErr)
}

func (c *Client) tryModel(ctx context.Context, model, prompt string) (*Payload, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	attemptCtx := ctx
	if c.attemptTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, c.attemptTimeout)
		defer cancel()
	}

	text, err := c.gen.GenerateText(attemptCtx, model, prompt)
	if err != nil {
		return nil, err
	}

	return ExtractPayload(text)
}

// Probe sends a minimal prompt to a single model and reports whether it
// answered. Used by the modelcheck diagnostic command.
func (c *Client) Probe(ctx context.Context, model string) (string, error) {
	return c.gen.GenerateText(ctx, model, "Hello, are you available?")
}
