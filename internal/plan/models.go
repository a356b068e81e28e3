// Package plan generates multi-day training plans from user preferences.
package plan

import (
	"time"
)

// TrainingPlan is a complete generated plan. It is immutable once generated;
// regeneration replaces the plan wholesale and deletion removes it by id.
type TrainingPlan struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Goal        Goal          `json:"goal"`
	DaysPerWeek int           `json:"days_per_week"`
	Days        []TrainingDay `json:"days"`
	CreatedAt   time.Time     `json:"created_at"`
}

// TrainingDay is one day of a plan. DayNumber is 1-based and matches the
// day's position in the plan.
type TrainingDay struct {
	DayNumber int               `json:"day_number"`
	Name      string            `json:"name"`
	Exercises []PlannedExercise `json:"exercises"`
}

// PlannedExercise is an exercise with its computed prescription. Reps is a
// rep range such as "8-12", or a time range such as "15-20 min" for cardio.
type PlannedExercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	RestSeconds int    `json:"rest_seconds"`
}
