package plan

import (
	"math/rand/v2"

	"github.com/marleybr/Treningsapp-sub000/internal/catalog"
)

// advancedAdmissionChance is the probability that an intermediate user gets
// an advanced exercise admitted into the eligible pool. The coin flip is
// re-rolled on every generation so that regenerating a plan varies which
// advanced movements show up.
const advancedAdmissionChance = 0.5

// eligibleExercises filters the catalog down to exercises the user can and
// should perform. All three rules must pass: equipment availability, injury
// safety, and the experience-based difficulty gate.
//
// An empty equipment set yields an empty result; the day synthesizer falls
// back to a bodyweight micro-routine in that case.
func eligibleExercises(pool []catalog.Exercise, cfg Config, rng *rand.Rand) []catalog.Exercise {
	var eligible []catalog.Exercise
	for _, exercise := range pool {
		if !exercise.UsableWith(cfg.Equipment) {
			continue
		}
		if exercise.ContraindicatedBy(cfg.Injuries) {
			continue
		}
		if !passesDifficultyGate(exercise, cfg.Experience, rng) {
			continue
		}
		eligible = append(eligible, exercise)
	}
	return eligible
}

// passesDifficultyGate applies the experience gate. Beginners never get
// advanced exercises. Intermediates get each advanced exercise with 50%
// probability. Advanced users are not gated.
func passesDifficultyGate(exercise catalog.Exercise, experience catalog.Difficulty, rng *rand.Rand) bool {
	if exercise.Difficulty != catalog.DifficultyAdvanced {
		return true
	}
	switch experience {
	case catalog.DifficultyBeginner:
		return false
	case catalog.DifficultyIntermediate:
		return rng.Float64() < advancedAdmissionChance
	default:
		return true
	}
}
