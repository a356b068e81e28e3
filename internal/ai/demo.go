package ai

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/marleybr/Treningsapp-sub000/internal/errors"
)

// demoClient serves canned content so the application is fully usable
// without an API credential.
type demoClient struct {
	logger *slog.Logger
}

func newDemoClient(logger *slog.Logger) *demoClient {
	return &demoClient{logger: logger}
}

//nolint:gochecknoglobals // static lookup table.
var demoPayloads = map[Kind]string{
	KindFoodAnalysis: `{
		"name": "Kyllingsalat med fullkornsbrød",
		"calories": 520,
		"protein_g": 42,
		"carbs_g": 38,
		"fat_g": 21,
		"confidence": "medium"
	}`,
	KindMealPlan: `{
		"meals": [
			{"kind": "breakfast", "name": "Havregrøt med bær og nøtter", "calories": 450, "protein_g": 18, "carbs_g": 62, "fat_g": 14},
			{"kind": "lunch", "name": "Kyllingwrap med grønnsaker", "calories": 620, "protein_g": 45, "carbs_g": 58, "fat_g": 22},
			{"kind": "dinner", "name": "Laks med potet og brokkoli", "calories": 680, "protein_g": 48, "carbs_g": 52, "fat_g": 30},
			{"kind": "snack", "name": "Gresk yoghurt med honning", "calories": 250, "protein_g": 20, "carbs_g": 28, "fat_g": 6}
		]
	}`,
	KindRecipe: `{
		"name": "Laks med potet og brokkoli",
		"servings": 2,
		"ingredients": [
			{"name": "Laksefilet", "amount": "400 g"},
			{"name": "Poteter", "amount": "500 g"},
			{"name": "Brokkoli", "amount": "300 g"},
			{"name": "Olivenolje", "amount": "1 ss"},
			{"name": "Sitron", "amount": "1 stk"}
		],
		"steps": [
			"Sett ovnen på 200 grader.",
			"Del potetene i båter og bak dem i 25 minutter.",
			"Krydre laksen og bak den sammen med brokkolien de siste 15 minuttene.",
			"Server med sitron."
		],
		"calories_per_serving": 680
	}`,
	KindMealSuggestion: `{
		"suggestions": [
			{"name": "Cottage cheese med ananas", "calories": 220, "protein_g": 24, "carbs_g": 18, "fat_g": 5},
			{"name": "Proteinshake med banan", "calories": 280, "protein_g": 30, "carbs_g": 32, "fat_g": 4},
			{"name": "Eggomelett med spinat", "calories": 310, "protein_g": 22, "carbs_g": 4, "fat_g": 23}
		]
	}`,
}

func (c *demoClient) Generate(ctx context.Context, kind Kind, _ json.RawMessage) (json.RawMessage, error) {
	payload, ok := demoPayloads[kind]
	if !ok {
		return nil, errors.New("unknown content kind: " + string(kind))
	}

	c.logger.LogAttrs(ctx, slog.LevelDebug, "serving demo ai content",
		slog.String("kind", string(kind)))

	return json.RawMessage(payload), nil
}
