package ai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/marleybr/Treningsapp-sub000/internal/errors"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// openaiClient generates content through the OpenAI chat completions API.
type openaiClient struct {
	client openai.Client
	logger *slog.Logger
}

func newOpenAIClient(apiKey string, logger *slog.Logger) *openaiClient {
	return &openaiClient{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		logger: logger,
	}
}

// systemPrompts describe the required JSON schema per content kind. The
// model is instructed to answer with a single JSON object and nothing else.
//
//nolint:gochecknoglobals // static lookup table.
var systemPrompts = map[Kind]string{
	KindFoodAnalysis: `You are a nutrition analysis assistant. The user message contains a description of a meal.
Respond with a single JSON object and no other text:
{"name": string, "calories": int, "protein_g": int, "carbs_g": int, "fat_g": int, "confidence": "low"|"medium"|"high"}`,
	KindMealPlan: `You are a meal planning assistant. The user message contains daily calorie and macro targets as JSON.
Respond with a single JSON object and no other text:
{"meals": [{"kind": "breakfast"|"lunch"|"dinner"|"snack", "name": string, "calories": int, "protein_g": int, "carbs_g": int, "fat_g": int}]}
The meal calories must sum to roughly the calorie target.`,
	KindRecipe: `You are a recipe assistant. The user message contains a dish name and optional constraints as JSON.
Respond with a single JSON object and no other text:
{"name": string, "servings": int, "ingredients": [{"name": string, "amount": string}], "steps": [string], "calories_per_serving": int}`,
	KindMealSuggestion: `You are a meal suggestion assistant. The user message contains remaining daily calories and macros as JSON.
Respond with a single JSON object and no other text:
{"suggestions": [{"name": string, "calories": int, "protein_g": int, "carbs_g": int, "fat_g": int}]}`,
}

func (c *openaiClient) Generate(ctx context.Context, kind Kind, payload json.RawMessage) (json.RawMessage, error) {
	prompt, ok := systemPrompts[kind]
	if !ok {
		return nil, errors.New("unknown content kind: " + string(kind))
	}

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt),
			openai.UserMessage(string(payload)),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "openai chat completion", slog.String("kind", string(kind)))
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("openai returned no choices")
	}

	content := extractJSON(completion.Choices[0].Message.Content)
	if !json.Valid([]byte(content)) {
		return nil, errors.New("openai returned invalid JSON")
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "generated ai content",
		slog.String("kind", string(kind)),
		slog.Int64("total_tokens", completion.Usage.TotalTokens))

	return json.RawMessage(content), nil
}

// extractJSON strips markdown code fences that models sometimes wrap around
// JSON output.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)
	if after, found := strings.CutPrefix(content, "```json"); found {
		content = after
	} else if after, found = strings.CutPrefix(content, "```"); found {
		content = after
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
