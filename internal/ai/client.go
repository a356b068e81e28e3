// Package ai generates nutrition content through an LLM provider, with a
// demo fallback when no credential is configured.
package ai

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Kind identifies the content schema to generate.
type Kind string

const (
	KindFoodAnalysis   Kind = "food-analysis"
	KindMealPlan       Kind = "meal-plan"
	KindRecipe         Kind = "recipe"
	KindMealSuggestion Kind = "meal-suggestion"
)

// Client generates structured JSON content of the given kind. The payload
// carries kind-specific input such as a food description or calorie targets.
type Client interface {
	Generate(ctx context.Context, kind Kind, payload json.RawMessage) (json.RawMessage, error)
}

// NewClient returns an OpenAI-backed client, or the demo client when apiKey
// is empty so the application works without a credential.
func NewClient(apiKey string, logger *slog.Logger) Client {
	if apiKey == "" {
		logger.Info("no OpenAI API key configured, using demo content generator")
		return newDemoClient(logger)
	}
	return newOpenAIClient(apiKey, logger)
}
