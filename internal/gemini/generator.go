package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// TextGenerator produces free text from a model identifier and a prompt.
// The concrete implementation talks to the Gemini API; tests substitute
// scripted generators.
type TextGenerator interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}

// safetySettings is the fixed content-safety policy applied to every
// provider call: block medium-and-above for all four harm categories.
var safetySettings = []*genai.SafetySetting{
	{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
	{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
	{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
	{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
}

// UnconfiguredGenerator fails every call with ErrMissingAPIKey. It lets
// the server boot without a key; recommendation requests then fail with
// a clear error instead of the process refusing to start.
type UnconfiguredGenerator struct{}

// GenerateText implements TextGenerator.
func (UnconfiguredGenerator) GenerateText(context.Context, string, string) (string, error) {
	return "", ErrMissingAPIKey
}

// genaiGenerator implements TextGenerator against the Gemini API.
type genaiGenerator struct {
	client *genai.Client
}

// newGenAIGenerator creates a Gemini-backed text generator.
func newGenAIGenerator(ctx context.Context, apiKey string) (*genaiGenerator, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &genaiGenerator{client: client}, nil
}

// GenerateText implements TextGenerator.
func (g *genaiGenerator) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	res, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{SafetySettings: safetySettings},
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var b strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	if b.Len() == 0 {
		return "", ErrEmptyResponse
	}

	return b.String(), nil
}
