// Package gamification tracks XP, levels, streaks, and achievements earned
// from completed workouts.
package gamification

import (
	"slices"
	"time"
)

// Stats is the per-user gamification state. A user has exactly one Stats row
// which is updated atomically on every workout completion.
type Stats struct {
	XP             int       `json:"xp"`
	Level          int       `json:"level"`
	CurrentStreak  int       `json:"current_streak"`
	LongestStreak  int       `json:"longest_streak"`
	TotalWorkouts  int       `json:"total_workouts"`
	TotalVolumeKg  float64   `json:"total_volume_kg"`
	WeeklyXP       int       `json:"weekly_xp"`
	WeekStartDate  time.Time `json:"week_start_date"`
	AchievementIDs []string  `json:"achievement_ids"`
}

// HasAchievement reports whether the achievement is already unlocked.
func (s Stats) HasAchievement(id string) bool {
	return slices.Contains(s.AchievementIDs, id)
}

// Workout is one completed training session.
type Workout struct {
	ID          int64          `json:"id"`
	Date        time.Time      `json:"date"`
	CompletedAt time.Time      `json:"completed_at"`
	Sets        []CompletedSet `json:"sets"`
}

// CompletedSet is one performed set. Bodyweight sets carry zero weight and
// contribute no volume.
type CompletedSet struct {
	ExerciseName string  `json:"exercise_name"`
	WeightKg     float64 `json:"weight_kg"`
	Reps         int     `json:"reps"`
}

// CompletionResult is the outcome of processing one workout completion.
type CompletionResult struct {
	Stats     Stats         `json:"stats"`
	XPAwarded int           `json:"xp_awarded"`
	Unlocked  []Achievement `json:"unlocked"`
}
