package main

import (
	"net/http"

	"github.com/marleybr/Treningsapp-sub000/internal/errors"
	"github.com/marleybr/Treningsapp-sub000/internal/plan"
)

// planGeneratePOST generates and stores a new training plan from the posted
// configuration. Malformed-but-plausible values are clamped, not rejected.
func (app *application) planGeneratePOST(w http.ResponseWriter, r *http.Request) {
	var cfg plan.Config
	if !app.readJSON(w, r, &cfg) {
		return
	}

	generated, err := app.planService.Generate(r.Context(), cfg)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "generate plan"))
		return
	}

	app.writeJSON(w, r, http.StatusCreated, generated)
}

func (app *application) plansGET(w http.ResponseWriter, r *http.Request) {
	plans, err := app.planService.List(r.Context())
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "list plans"))
		return
	}
	if plans == nil {
		plans = []plan.TrainingPlan{}
	}

	app.writeJSON(w, r, http.StatusOK, envelope{"plans": plans})
}

func (app *application) planGET(w http.ResponseWriter, r *http.Request) {
	planID := r.PathValue("id")

	found, err := app.planService.Get(r.Context(), planID)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			app.clientError(w, r, http.StatusNotFound, "plan not found")
			return
		}
		app.serverError(w, r, errors.Wrap(err, "get plan"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, found)
}

func (app *application) planDELETE(w http.ResponseWriter, r *http.Request) {
	planID := r.PathValue("id")

	if err := app.planService.Delete(r.Context(), planID); err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			app.clientError(w, r, http.StatusNotFound, "plan not found")
			return
		}
		app.serverError(w, r, errors.Wrap(err, "delete plan"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
