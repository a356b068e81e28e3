package plan

import (
	"math"
	"math/rand/v2"

	"github.com/marleybr/Treningsapp-sub000/internal/catalog"
)

// Session time budget constants.
const (
	warmupMinutes = 5
	// compoundShare is the fraction of a tag's slots reserved for compound
	// movements before isolations fill the remainder.
	compoundShare = 0.6
	// coreAddOnChance is the probability of appending extra core work to a
	// day that doesn't already train the core.
	coreAddOnChance = 0.5
	coreAddOnCount  = 2
	// minExercisesPerDay is the guaranteed lower bound on a generated day.
	// Days that end up below it after filtering are replaced by the fallback
	// routine.
	minExercisesPerDay = 3
)

// perExerciseMinutes estimates how long one exercise takes for a goal,
// including rest between sets.
func perExerciseMinutes(goal Goal) int {
	switch goal {
	case GoalStrength:
		return 8 //nolint:mnd // long rests between heavy sets.
	case GoalWeightloss:
		return 4 //nolint:mnd // short rests, high pace.
	default:
		return 6 //nolint:mnd // moderate pace.
	}
}

// maxExercisesFor computes how many exercises fit in the session after
// warmup.
func maxExercisesFor(durationMinutes int, goal Goal) int {
	return (durationMinutes - warmupMinutes) / perExerciseMinutes(goal)
}

// generator holds the state of one plan-generation pass.
type generator struct {
	cfg      Config
	eligible []catalog.Exercise
	rng      *rand.Rand
}

// synthesizeDay selects and prescribes the exercises for one split day.
//
// Selection runs per tag, the combined list is truncated to the session time
// budget and deduplicated by name (first occurrence wins). A day that ends up
// with fewer than three exercises, which happens when the equipment set
// eliminates nearly every candidate, falls back to a fixed bodyweight
// micro-routine so that every generated day has at least three exercises.
func (g *generator) synthesizeDay(spec daySpec) []PlannedExercise {
	maxExercises := maxExercisesFor(g.cfg.DurationMinutes, g.cfg.Goal)

	var selected []catalog.Exercise
	for _, tag := range spec.tags {
		if tag.kind == tagCardio {
			selected = append(selected, g.selectCardio(tag.exerciseCap())...)
			continue
		}
		selected = append(selected, g.selectForMuscles(tag.targetMuscles(), tag.exerciseCap())...)
	}

	if !coversCore(spec.tags) && g.rng.Float64() < coreAddOnChance {
		selected = append(selected, g.selectCoreIsolation(coreAddOnCount)...)
	}

	if len(selected) > maxExercises {
		selected = selected[:maxExercises]
	}
	selected = dedupeByName(selected)

	if len(selected) < minExercisesPerDay {
		return fallbackRoutine()
	}

	planned := make([]PlannedExercise, 0, len(selected))
	for _, exercise := range selected {
		dose := prescribe(exercise, g.cfg.Goal, g.cfg.Experience, g.cfg.DurationMinutes)
		planned = append(planned, PlannedExercise{
			Name:        exercise.Name,
			Sets:        dose.sets,
			Reps:        dose.reps,
			RestSeconds: dose.restSeconds,
		})
	}
	return planned
}

// selectForMuscles picks exercises targeting the given muscles, favoring
// compound movements: up to ceil(cap*0.6) shuffled compounds first, then
// shuffled isolations fill the remaining slots.
func (g *generator) selectForMuscles(muscles []catalog.MuscleGroup, cap int) []catalog.Exercise {
	var compounds, isolations []catalog.Exercise
	for _, exercise := range g.eligible {
		if exercise.Category == catalog.CategoryCardio {
			continue
		}
		if !exercise.Targets(muscles) {
			continue
		}
		if exercise.Category == catalog.CategoryCompound {
			compounds = append(compounds, exercise)
		} else {
			isolations = append(isolations, exercise)
		}
	}

	compoundQuota := int(math.Ceil(float64(cap) * compoundShare))
	if compoundQuota > cap {
		compoundQuota = cap
	}

	g.shuffle(compounds)
	g.shuffle(isolations)

	selected := takeUpTo(compounds, compoundQuota)
	selected = append(selected, takeUpTo(isolations, cap-len(selected))...)
	return selected
}

// selectCardio picks cardio exercises directly by category.
func (g *generator) selectCardio(cap int) []catalog.Exercise {
	var cardio []catalog.Exercise
	for _, exercise := range g.eligible {
		if exercise.Category == catalog.CategoryCardio {
			cardio = append(cardio, exercise)
		}
	}
	g.shuffle(cardio)
	return takeUpTo(cardio, cap)
}

// selectCoreIsolation picks isolation exercises with the core as a primary
// muscle.
func (g *generator) selectCoreIsolation(count int) []catalog.Exercise {
	var core []catalog.Exercise
	for _, exercise := range g.eligible {
		if exercise.Category != catalog.CategoryIsolation {
			continue
		}
		if exercise.Targets([]catalog.MuscleGroup{catalog.MuscleCore}) {
			core = append(core, exercise)
		}
	}
	g.shuffle(core)
	return takeUpTo(core, count)
}

func (g *generator) shuffle(exercises []catalog.Exercise) {
	g.rng.Shuffle(len(exercises), func(i, j int) {
		exercises[i], exercises[j] = exercises[j], exercises[i]
	})
}

func takeUpTo(exercises []catalog.Exercise, count int) []catalog.Exercise {
	if count <= 0 {
		return nil
	}
	if count > len(exercises) {
		count = len(exercises)
	}
	return exercises[:count]
}

// dedupeByName removes duplicate exercises, keeping the first occurrence and
// preserving selection order.
func dedupeByName(exercises []catalog.Exercise) []catalog.Exercise {
	seen := make(map[string]bool, len(exercises))
	deduped := exercises[:0:0]
	for _, exercise := range exercises {
		if seen[exercise.Name] {
			continue
		}
		seen[exercise.Name] = true
		deduped = append(deduped, exercise)
	}
	return deduped
}

// fallbackRoutine is the fixed bodyweight micro-routine that guarantees
// every generated day has at least three exercises.
func fallbackRoutine() []PlannedExercise {
	return []PlannedExercise{
		{Name: "Push-ups", Sets: 3, Reps: "10-15", RestSeconds: 60},
		{Name: "Bodyweight squats", Sets: 3, Reps: "15-20", RestSeconds: 60},
		{Name: "Plank", Sets: 3, Reps: "30-45 sek", RestSeconds: 45},
	}
}
