package main

import (
	"net/http"
)

func (app *application) routes() *http.ServeMux {
	mux := http.NewServeMux()

	var (
		base = func(next http.Handler) http.Handler {
			return app.recoverPanic(app.logAndTraceRequest(secureHeaders(
				app.crossOriginProtection(next))))
		}
		session = func(next http.Handler) http.Handler {
			return base(app.sessionManager.LoadAndSave(app.authenticate(next)))
		}
	)

	mux.Handle("POST /api/plans", session(http.HandlerFunc(app.planGeneratePOST)))
	mux.Handle("GET /api/plans", session(http.HandlerFunc(app.plansGET)))
	mux.Handle("GET /api/plans/{id}", session(http.HandlerFunc(app.planGET)))
	mux.Handle("DELETE /api/plans/{id}", session(http.HandlerFunc(app.planDELETE)))

	mux.Handle("POST /api/workouts/complete", session(http.HandlerFunc(app.workoutCompletePOST)))
	mux.Handle("GET /api/stats", session(http.HandlerFunc(app.statsGET)))
	mux.Handle("GET /api/achievements", session(http.HandlerFunc(app.achievementsGET)))

	mux.Handle("GET /api/profile", session(http.HandlerFunc(app.profileGET)))
	mux.Handle("PUT /api/profile", session(http.HandlerFunc(app.profilePUT)))
	mux.Handle("GET /api/nutrition/targets", session(http.HandlerFunc(app.nutritionTargetsGET)))
	mux.Handle("POST /api/meals/{kind}", session(http.HandlerFunc(app.mealContentPOST)))

	mux.Handle("GET /api/healthy", base(http.HandlerFunc(app.healthy)))

	return mux
}
