package main

import (
	"net/http"

	"github.com/marleybr/Treningsapp-sub000/internal/errors"
)

func (app *application) statsGET(w http.ResponseWriter, r *http.Request) {
	stats, err := app.gamificationService.Stats(r.Context())
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "load stats"))
		return
	}
	if stats.AchievementIDs == nil {
		stats.AchievementIDs = []string{}
	}

	app.writeJSON(w, r, http.StatusOK, stats)
}

func (app *application) achievementsGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, envelope{
		"achievements": app.gamificationService.Achievements(),
	})
}
