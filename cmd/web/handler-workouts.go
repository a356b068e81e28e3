package main

import (
	"net/http"
	"time"

	"github.com/marleybr/Treningsapp-sub000/internal/errors"
	"github.com/marleybr/Treningsapp-sub000/internal/gamification"
)

type completeWorkoutRequest struct {
	Date string                      `json:"date,omitempty"`
	Sets []gamification.CompletedSet `json:"sets"`
}

// workoutCompletePOST records a finished workout and returns the updated
// stats, the awarded XP, and any newly unlocked achievements.
func (app *application) workoutCompletePOST(w http.ResponseWriter, r *http.Request) {
	var req completeWorkoutRequest
	if !app.readJSON(w, r, &req) {
		return
	}

	workout := gamification.Workout{Sets: req.Sets}
	if req.Date != "" {
		date, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			app.clientError(w, r, http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
			return
		}
		workout.Date = date
	}

	for _, set := range req.Sets {
		if set.Reps < 0 || set.WeightKg < 0 {
			app.clientError(w, r, http.StatusBadRequest, "sets must have non-negative reps and weight")
			return
		}
	}

	result, err := app.gamificationService.CompleteWorkout(r.Context(), workout)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "complete workout"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, result)
}
