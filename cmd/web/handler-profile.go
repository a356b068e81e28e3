package main

import (
	"net/http"

	"github.com/marleybr/Treningsapp-sub000/internal/errors"
	"github.com/marleybr/Treningsapp-sub000/internal/nutrition"
)

func (app *application) profileGET(w http.ResponseWriter, r *http.Request) {
	profile, err := app.nutritionService.Profile(r.Context())
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "get profile"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, profile)
}

func (app *application) profilePUT(w http.ResponseWriter, r *http.Request) {
	var profile nutrition.Profile
	if !app.readJSON(w, r, &profile) {
		return
	}

	if err := app.nutritionService.SaveProfile(r.Context(), profile); err != nil {
		if errors.Is(err, nutrition.ErrInvalidProfile) {
			app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		app.serverError(w, r, errors.Wrap(err, "save profile"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, profile)
}

func (app *application) nutritionTargetsGET(w http.ResponseWriter, r *http.Request) {
	targets, err := app.nutritionService.Targets(r.Context())
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "compute nutrition targets"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, targets)
}
