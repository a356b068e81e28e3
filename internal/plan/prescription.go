package plan

import (
	"github.com/marleybr/Treningsapp-sub000/internal/catalog"
)

// prescription is the computed training dose for one exercise.
type prescription struct {
	sets        int
	reps        string
	restSeconds int
}

// goalDose is the base sets/reps/rest table per goal.
type goalDose struct {
	sets        int
	reps        string
	restSeconds int
}

//nolint:gochecknoglobals // static lookup table.
var dosesByGoal = map[Goal]goalDose{
	GoalStrength:   {sets: 5, reps: "4-6", restSeconds: 180},
	GoalMuscle:     {sets: 4, reps: "8-12", restSeconds: 90},
	GoalWeightloss: {sets: 3, reps: "12-15", restSeconds: 45},
	GoalFitness:    {sets: 3, reps: "10-15", restSeconds: 60},
}

const minSets = 2

// prescribe computes sets, reps, and rest for an exercise.
//
// Cardio exercises short-circuit to a single timed block sized by session
// length. Otherwise the base dose per goal is adjusted first for isolation
// movements and then for beginners, each reduction bottoming out at two sets.
func prescribe(exercise catalog.Exercise, goal Goal, experience catalog.Difficulty, durationMinutes int) prescription {
	if exercise.Category == catalog.CategoryCardio {
		reps := "10-15 min"
		if durationMinutes >= 60 {
			reps = "15-20 min"
		}
		return prescription{sets: 1, reps: reps, restSeconds: 60}
	}

	dose, ok := dosesByGoal[goal]
	if !ok {
		dose = dosesByGoal[GoalFitness]
	}
	result := prescription{sets: dose.sets, reps: dose.reps, restSeconds: dose.restSeconds}

	if exercise.Category == catalog.CategoryIsolation {
		result.sets = max(minSets, result.sets-1)
		if goal == GoalStrength {
			result.reps = "8-12"
		} else {
			result.reps = "12-15"
		}
	}

	if experience == catalog.DifficultyBeginner {
		result.sets = max(minSets, result.sets-1)
	}

	return result
}
