package plan

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marleybr/Treningsapp-sub000/internal/catalog"
)

// Norwegian plan name labels per goal.
//
//nolint:gochecknoglobals // static lookup table.
var goalLabels = map[Goal]string{
	GoalStrength:   "Styrkeplan",
	GoalMuscle:     "Muskelbygging",
	GoalWeightloss: "Vektnedgang",
	GoalFitness:    "Kondisjon og helse",
}

// maxNamedFocusAreas caps how many focus areas appear in the plan name.
const maxNamedFocusAreas = 2

// Generate builds a complete training plan from a raw configuration.
//
// The configuration is normalized first, so callers may pass user input
// directly. The rng drives all randomized selection; passing a seeded rng
// makes generation fully deterministic.
func Generate(raw Config, cat *catalog.Catalog, rng *rand.Rand) TrainingPlan {
	cfg := ResolveConfig(raw)

	g := &generator{
		cfg:      cfg,
		eligible: eligibleExercises(cat.Exercises(), cfg, rng),
		rng:      rng,
	}

	specs := planSplit(cfg)
	days := make([]TrainingDay, 0, len(specs))
	for i, spec := range specs {
		days = append(days, TrainingDay{
			DayNumber: i + 1,
			Name:      spec.name,
			Exercises: g.synthesizeDay(spec),
		})
	}

	return TrainingPlan{
		ID:          uuid.NewString(),
		Name:        planName(cfg),
		Goal:        cfg.Goal,
		DaysPerWeek: cfg.DaysPerWeek,
		Days:        days,
		CreatedAt:   time.Now(),
	}
}

// planName derives the descriptive Norwegian plan name, for example
// "Styrkeplan (bryst og skuldre fokus) - 4x/uke".
func planName(cfg Config) string {
	label := goalLabels[cfg.Goal]

	if len(cfg.FocusAreas) > 0 {
		named := cfg.FocusAreas
		if len(named) > maxNamedFocusAreas {
			named = named[:maxNamedFocusAreas]
		}
		labels := make([]string, 0, len(named))
		for _, focus := range named {
			labels = append(labels, muscleLabels[focus])
		}
		label = fmt.Sprintf("%s (%s fokus)", label, strings.Join(labels, " og "))
	}

	return fmt.Sprintf("%s - %dx/uke", label, cfg.DaysPerWeek)
}
