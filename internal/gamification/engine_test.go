package gamification_test

import (
	"testing"
	"time"

	"github.com/marleybr/Treningsapp-sub000/internal/gamification"
)

var today = time.Date(2025, 6, 18, 15, 30, 0, 0, time.UTC) // a Wednesday

func daysAgo(n int) time.Time {
	return today.AddDate(0, 0, -n)
}

func TestComputeStreak(t *testing.T) {
	testCases := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{
			name:  "no workouts",
			dates: nil,
			want:  0,
		},
		{
			name:  "three consecutive days ending today",
			dates: []time.Time{today, daysAgo(1), daysAgo(2)},
			want:  3,
		},
		{
			name:  "yesterday only keeps the streak alive",
			dates: []time.Time{daysAgo(1)},
			want:  1,
		},
		{
			name:  "yesterday and before extends the streak",
			dates: []time.Time{daysAgo(1), daysAgo(2), daysAgo(3)},
			want:  3,
		},
		{
			name:  "gap before today breaks the streak",
			dates: []time.Time{today, daysAgo(2), daysAgo(3)},
			want:  1,
		},
		{
			name:  "last workout three days ago is broken",
			dates: []time.Time{daysAgo(3), daysAgo(4)},
			want:  0,
		},
		{
			name:  "duplicate same-day workouts count once",
			dates: []time.Time{today, today.Add(-2 * time.Hour), daysAgo(1)},
			want:  2,
		},
		{
			name:  "unsorted input",
			dates: []time.Time{daysAgo(2), today, daysAgo(1)},
			want:  3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := gamification.ComputeStreak(tc.dates, today); got != tc.want {
				t.Errorf("got streak %d, want %d", got, tc.want)
			}
		})
	}
}

func TestVolume(t *testing.T) {
	sets := []gamification.CompletedSet{
		{ExerciseName: "Knebøy", WeightKg: 100, Reps: 5},
		{ExerciseName: "Knebøy", WeightKg: 100, Reps: 5},
		{ExerciseName: "Plank", WeightKg: 0, Reps: 1},
	}
	if got, want := gamification.Volume(sets), 1000.0; got != want {
		t.Errorf("got volume %v, want %v", got, want)
	}
}

func TestProcessCompletionFirstWorkout(t *testing.T) {
	workout := gamification.Workout{
		Date:        today,
		CompletedAt: today,
		Sets: []gamification.CompletedSet{
			{ExerciseName: "Benkpress", WeightKg: 60, Reps: 10},
			{ExerciseName: "Benkpress", WeightKg: 60, Reps: 10},
		},
	}
	stats := gamification.Stats{Level: 1, WeekStartDate: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)}

	result := gamification.ProcessCompletion(workout, stats, nil, today)

	// Base 50, volume 1200*0.1=120, streak 1*25=25, first-workout reward 50.
	if got, want := result.XPAwarded, 50+120+25+50; got != want {
		t.Errorf("got %d xp, want %d", got, want)
	}
	if got, want := result.Stats.TotalWorkouts, 1; got != want {
		t.Errorf("got %d total workouts, want %d", got, want)
	}
	if got, want := result.Stats.CurrentStreak, 1; got != want {
		t.Errorf("got streak %d, want %d", got, want)
	}
	if got, want := result.Stats.Level, 1; got != want {
		t.Errorf("got level %d, want %d", got, want)
	}
	if len(result.Unlocked) != 1 || result.Unlocked[0].ID != "first-workout" {
		t.Errorf("got unlocks %v, want only first-workout", result.Unlocked)
	}
	if result.Stats.WeeklyXP != result.XPAwarded {
		t.Errorf("got weekly xp %d, want %d", result.Stats.WeeklyXP, result.XPAwarded)
	}
}

func TestProcessCompletionLevelAdvancesEveryFiveWorkouts(t *testing.T) {
	stats := gamification.Stats{
		Level:          1,
		TotalWorkouts:  4,
		WeekStartDate:  time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		AchievementIDs: []string{"first-workout", "streak-3"},
	}
	history := []time.Time{daysAgo(1), daysAgo(2), daysAgo(3), daysAgo(4)}
	workout := gamification.Workout{Date: today, CompletedAt: today}

	result := gamification.ProcessCompletion(workout, stats, history, today)

	if got, want := result.Stats.Level, 2; got != want {
		t.Errorf("got level %d, want %d after fifth workout", got, want)
	}
	if got, want := result.Stats.CurrentStreak, 5; got != want {
		t.Errorf("got streak %d, want %d", got, want)
	}
	if result.Stats.LongestStreak < result.Stats.CurrentStreak {
		t.Errorf("longest streak %d below current streak %d",
			result.Stats.LongestStreak, result.Stats.CurrentStreak)
	}
}

func TestProcessCompletionDoesNotReunlockAchievements(t *testing.T) {
	stats := gamification.Stats{
		Level:          1,
		TotalWorkouts:  1,
		WeekStartDate:  time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		AchievementIDs: []string{"first-workout"},
	}
	workout := gamification.Workout{Date: today, CompletedAt: today}

	result := gamification.ProcessCompletion(workout, stats, []time.Time{daysAgo(5)}, today)

	for _, achievement := range result.Unlocked {
		if achievement.ID == "first-workout" {
			t.Error("first-workout unlocked twice")
		}
	}
	count := 0
	for _, id := range result.Stats.AchievementIDs {
		if id == "first-workout" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("first-workout appears %d times in stats, want 1", count)
	}
}

func TestProcessCompletionResetsWeeklyXPInNewWeek(t *testing.T) {
	stats := gamification.Stats{
		Level:          1,
		TotalWorkouts:  3,
		WeeklyXP:       400,
		WeekStartDate:  time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), // previous Monday
		AchievementIDs: []string{"first-workout"},
	}
	workout := gamification.Workout{Date: today, CompletedAt: today}

	result := gamification.ProcessCompletion(workout, stats, nil, today)

	if result.Stats.WeeklyXP != result.XPAwarded {
		t.Errorf("got weekly xp %d, want reset to this completion's %d",
			result.Stats.WeeklyXP, result.XPAwarded)
	}
	wantWeekStart := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	if !result.Stats.WeekStartDate.Equal(wantWeekStart) {
		t.Errorf("got week start %v, want %v", result.Stats.WeekStartDate, wantWeekStart)
	}
	if got, want := result.Stats.XP, stats.XP+result.XPAwarded; got != want {
		t.Errorf("got total xp %d, want %d", got, want)
	}
}

func TestEvaluateAchievementsAgainstUpdatedTotals(t *testing.T) {
	stats := gamification.Stats{
		TotalWorkouts: 10,
		CurrentStreak: 7,
		TotalVolumeKg: 1500,
		Level:         3,
	}

	unlocked := gamification.EvaluateAchievements(gamification.DefaultAchievements(), stats)

	wantIDs := map[string]bool{
		"first-workout": true,
		"workouts-10":   true,
		"streak-3":      true,
		"streak-7":      true,
		"volume-1000":   true,
	}
	if len(unlocked) != len(wantIDs) {
		t.Fatalf("got %d unlocks %v, want %d", len(unlocked), unlocked, len(wantIDs))
	}
	for _, achievement := range unlocked {
		if !wantIDs[achievement.ID] {
			t.Errorf("unexpected unlock %q", achievement.ID)
		}
	}
}
