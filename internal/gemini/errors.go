package gemini

import (
	"errors"
	"fmt"
)

// Sentinel errors for provider responses.
var (
	ErrNoJSONObject  = errors.New("gemini: no JSON object in model output")
	ErrNoBooksKey    = errors.New(`gemini: model output has no "books" key`)
	ErrEmptyResponse = errors.New("gemini: empty response from model")
	ErrMissingAPIKey = errors.New("gemini: API key is not configured")
)

// AttemptError wraps a failure of one candidate model.
type AttemptError struct {
	Model string
	Err   error
}

func (e *AttemptError) Error() string {
	return fmt.Sprintf("gemini model %s: %v", e.Model, e.Err)
}

func (e *AttemptError) Unwrap() error {
	return e.Err
}
