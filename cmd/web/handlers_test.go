package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/marleybr/Treningsapp-sub000/internal/ai"
	"github.com/marleybr/Treningsapp-sub000/internal/gamification"
	"github.com/marleybr/Treningsapp-sub000/internal/nutrition"
	"github.com/marleybr/Treningsapp-sub000/internal/plan"
	"github.com/marleybr/Treningsapp-sub000/internal/sqlite"
	"github.com/marleybr/Treningsapp-sub000/internal/testhelpers"
)

// testClient drives the application through its routes while carrying the
// session cookie between requests so the anonymous user stays the same.
type testClient struct {
	t       *testing.T
	handler http.Handler
	cookies []*http.Cookie
}

func newTestClient(t *testing.T) *testClient {
	t.Helper()

	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(t.Context(), ":memory:", logger)
	if err != nil {
		t.Fatalf("open in-memory database: %v", err)
	}

	app := &application{
		logger:              logger,
		db:                  db,
		sessionManager:      initializeSessionManager(db),
		aiClient:            ai.NewClient("", logger),
		planService:         plan.NewService(db, logger),
		gamificationService: gamification.NewService(db, logger),
		nutritionService:    nutrition.NewService(db, logger),
	}

	return &testClient{t: t, handler: app.routes()}
}

func (c *testClient) do(method, target, body string) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestHealthy(t *testing.T) {
	client := newTestClient(t)

	w := client.do(http.MethodGet, "/api/healthy", "")

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestPlanLifecycle(t *testing.T) {
	client := newTestClient(t)

	created := client.do(http.MethodPost, "/api/plans", `{
		"goal": "strength",
		"days_per_week": 3,
		"experience": "intermediate",
		"equipment": ["gym"],
		"duration_minutes": 60
	}`)
	if created.Code != http.StatusCreated {
		t.Fatalf("create: got status %d, body %s", created.Code, created.Body.String())
	}

	var createdPlan plan.TrainingPlan
	decodeBody(t, created, &createdPlan)
	if createdPlan.ID == "" {
		t.Fatal("created plan has no id")
	}
	if got, want := len(createdPlan.Days), 3; got != want {
		t.Errorf("got %d days, want %d", got, want)
	}

	listed := client.do(http.MethodGet, "/api/plans", "")
	if listed.Code != http.StatusOK {
		t.Fatalf("list: got status %d", listed.Code)
	}
	var listResponse struct {
		Plans []plan.TrainingPlan `json:"plans"`
	}
	decodeBody(t, listed, &listResponse)
	if len(listResponse.Plans) != 1 || listResponse.Plans[0].ID != createdPlan.ID {
		t.Errorf("got plans %+v, want the created plan", listResponse.Plans)
	}

	fetched := client.do(http.MethodGet, "/api/plans/"+createdPlan.ID, "")
	if fetched.Code != http.StatusOK {
		t.Fatalf("get: got status %d", fetched.Code)
	}
	var fetchedPlan plan.TrainingPlan
	decodeBody(t, fetched, &fetchedPlan)
	if fetchedPlan.Name != createdPlan.Name {
		t.Errorf("got name %q, want %q", fetchedPlan.Name, createdPlan.Name)
	}

	deleted := client.do(http.MethodDelete, "/api/plans/"+createdPlan.ID, "")
	if deleted.Code != http.StatusNoContent {
		t.Fatalf("delete: got status %d", deleted.Code)
	}

	missing := client.do(http.MethodGet, "/api/plans/"+createdPlan.ID, "")
	if missing.Code != http.StatusNotFound {
		t.Errorf("get after delete: got status %d, want %d", missing.Code, http.StatusNotFound)
	}
}

func TestPlanNotFound(t *testing.T) {
	client := newTestClient(t)

	w := client.do(http.MethodGet, "/api/plans/nonexistent", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("got status %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestWorkoutCompletionUpdatesStats(t *testing.T) {
	client := newTestClient(t)

	completed := client.do(http.MethodPost, "/api/workouts/complete", `{
		"sets": [
			{"exercise_name": "Knebøy", "weight_kg": 100, "reps": 5},
			{"exercise_name": "Knebøy", "weight_kg": 100, "reps": 5}
		]
	}`)
	if completed.Code != http.StatusOK {
		t.Fatalf("complete: got status %d, body %s", completed.Code, completed.Body.String())
	}

	var result gamification.CompletionResult
	decodeBody(t, completed, &result)
	if result.XPAwarded <= 0 {
		t.Errorf("got %d xp awarded, want positive", result.XPAwarded)
	}
	if result.Stats.TotalWorkouts != 1 {
		t.Errorf("got %d total workouts, want 1", result.Stats.TotalWorkouts)
	}
	if !result.Stats.HasAchievement("first-workout") {
		t.Error("expected first-workout achievement to unlock")
	}

	statsResponse := client.do(http.MethodGet, "/api/stats", "")
	if statsResponse.Code != http.StatusOK {
		t.Fatalf("stats: got status %d", statsResponse.Code)
	}
	var stats gamification.Stats
	decodeBody(t, statsResponse, &stats)
	if stats.XP != result.Stats.XP {
		t.Errorf("got persisted xp %d, want %d", stats.XP, result.Stats.XP)
	}
}

func TestWorkoutCompletionRejectsNegativeReps(t *testing.T) {
	client := newTestClient(t)

	w := client.do(http.MethodPost, "/api/workouts/complete", `{
		"sets": [{"exercise_name": "Knebøy", "weight_kg": 100, "reps": -1}]
	}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestProfileAndNutritionTargets(t *testing.T) {
	client := newTestClient(t)

	saved := client.do(http.MethodPut, "/api/profile", `{
		"gender": "male",
		"weight_kg": 80,
		"height_cm": 180,
		"activity_level": "moderate",
		"fitness_goal": "maintain"
	}`)
	if saved.Code != http.StatusOK {
		t.Fatalf("save profile: got status %d, body %s", saved.Code, saved.Body.String())
	}

	targetsResponse := client.do(http.MethodGet, "/api/nutrition/targets", "")
	if targetsResponse.Code != http.StatusOK {
		t.Fatalf("targets: got status %d", targetsResponse.Code)
	}
	var targets nutrition.Targets
	decodeBody(t, targetsResponse, &targets)

	// Mifflin-St Jeor with the default age of 30.
	if targets.BMR != 1780 {
		t.Errorf("got BMR %d, want 1780", targets.BMR)
	}
	if targets.TargetCalories != targets.TDEE {
		t.Errorf("maintain goal: target %d should equal TDEE %d", targets.TargetCalories, targets.TDEE)
	}
}

func TestProfileValidation(t *testing.T) {
	client := newTestClient(t)

	w := client.do(http.MethodPut, "/api/profile", `{
		"gender": "other",
		"weight_kg": 80,
		"height_cm": 180,
		"activity_level": "moderate",
		"fitness_goal": "maintain"
	}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("got status %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
}

func TestMealContentDemo(t *testing.T) {
	client := newTestClient(t)

	w := client.do(http.MethodPost, "/api/meals/meal-plan", `{"target_calories": 2500}`)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body %s", w.Code, w.Body.String())
	}

	var response struct {
		Kind    string          `json:"kind"`
		Content json.RawMessage `json:"content"`
	}
	decodeBody(t, w, &response)
	if response.Kind != "meal-plan" {
		t.Errorf("got kind %q, want meal-plan", response.Kind)
	}
	if !json.Valid(response.Content) {
		t.Errorf("content is not valid JSON: %s", response.Content)
	}
}

func TestMealContentUnknownKind(t *testing.T) {
	client := newTestClient(t)

	w := client.do(http.MethodPost, "/api/meals/horoscope", `{}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("got status %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestUsersAreIsolatedBySession(t *testing.T) {
	first := newTestClient(t)

	created := first.do(http.MethodPost, "/api/plans", `{"goal": "fitness", "days_per_week": 2, "equipment": ["bodyweight"]}`)
	if created.Code != http.StatusCreated {
		t.Fatalf("create: got status %d", created.Code)
	}
	var createdPlan plan.TrainingPlan
	decodeBody(t, created, &createdPlan)

	// A fresh client on the same handler has no session cookie and becomes a
	// different anonymous user.
	second := &testClient{t: t, handler: first.handler}
	w := second.do(http.MethodGet, "/api/plans/"+createdPlan.ID, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("got status %d, want %d for another user's plan", w.Code, http.StatusNotFound)
	}
}
