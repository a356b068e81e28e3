package main

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/marleybr/Treningsapp-sub000/internal/ai"
	"github.com/marleybr/Treningsapp-sub000/internal/errors"
)

// mealContentPOST generates structured meal content of the requested kind.
// The body is passed through to the generator as the kind-specific payload.
func (app *application) mealContentPOST(w http.ResponseWriter, r *http.Request) {
	kind := ai.Kind(r.PathValue("kind"))
	switch kind {
	case ai.KindFoodAnalysis, ai.KindMealPlan, ai.KindRecipe, ai.KindMealSuggestion:
	default:
		app.clientError(w, r, http.StatusNotFound, "unknown content kind")
		return
	}

	const maxBodyBytes = 1 << 20
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest, "read request body")
		return
	}
	if len(payload) == 0 {
		payload = []byte(`{}`)
	}
	if !json.Valid(payload) {
		app.clientError(w, r, http.StatusBadRequest, "payload must be valid JSON")
		return
	}

	content, err := app.aiClient.Generate(r.Context(), kind, payload)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "generate meal content"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, envelope{"kind": kind, "content": content})
}
