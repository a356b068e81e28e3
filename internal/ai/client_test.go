package ai_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/marleybr/Treningsapp-sub000/internal/ai"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestNewClientWithoutKeyUsesDemo verifies that an empty API key yields a
// client that serves valid JSON for every content kind.
func TestNewClientWithoutKeyUsesDemo(t *testing.T) {
	client := ai.NewClient("", discardLogger())

	kinds := []ai.Kind{
		ai.KindFoodAnalysis,
		ai.KindMealPlan,
		ai.KindRecipe,
		ai.KindMealSuggestion,
	}

	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			payload, err := client.Generate(t.Context(), kind, json.RawMessage(`{}`))
			if err != nil {
				t.Fatalf("Generate(%s) returned error: %v", kind, err)
			}
			if !json.Valid(payload) {
				t.Errorf("Generate(%s) returned invalid JSON: %s", kind, payload)
			}
			var decoded map[string]any
			if err := json.Unmarshal(payload, &decoded); err != nil {
				t.Errorf("Generate(%s) is not a JSON object: %v", kind, err)
			}
		})
	}
}

func TestGenerateUnknownKind(t *testing.T) {
	client := ai.NewClient("", discardLogger())

	if _, err := client.Generate(t.Context(), ai.Kind("horoscope"), nil); err == nil {
		t.Error("expected error for unknown content kind")
	}
}
