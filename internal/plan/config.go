package plan

import (
	"github.com/marleybr/Treningsapp-sub000/internal/catalog"
)

// Goal is the primary training goal of a plan.
type Goal string

const (
	GoalStrength   Goal = "strength"
	GoalMuscle     Goal = "muscle"
	GoalWeightloss Goal = "weightloss"
	GoalFitness    Goal = "fitness"
)

// Preferences are optional training-style flags.
type Preferences struct {
	PreferCardio      bool `json:"prefer_cardio"`
	PreferHIIT        bool `json:"prefer_hiit"`
	PreferStrength    bool `json:"prefer_strength"`
	PreferFlexibility bool `json:"prefer_flexibility"`
}

// Config is a normalized plan-generation request. Build one with
// ResolveConfig so that all invariants hold.
type Config struct {
	Goal            Goal                  `json:"goal"`
	DaysPerWeek     int                   `json:"days_per_week"`
	Experience      catalog.Difficulty    `json:"experience"`
	Equipment       []catalog.Equipment   `json:"equipment"`
	FocusAreas      []catalog.MuscleGroup `json:"focus_areas"`
	Injuries        []string              `json:"injuries"`
	DurationMinutes int                   `json:"duration_minutes"`
	Preferences     Preferences           `json:"preferences"`
}

// Clamping bounds for plan configuration.
const (
	minDaysPerWeek = 2
	maxDaysPerWeek = 6
	maxFocusAreas  = 3
)

//nolint:gochecknoglobals // static lookup table.
var allowedDurations = []int{30, 45, 60, 90}

// ResolveConfig normalizes a raw request into a canonical configuration.
//
// Out-of-range values are clamped rather than rejected: the generator never
// fails on malformed-but-plausible input. Unknown equipment and focus-area
// tags are dropped. An empty equipment set is passed through; the day
// synthesizer handles it with its fallback routine.
func ResolveConfig(raw Config) Config {
	cfg := raw

	switch cfg.Goal {
	case GoalStrength, GoalMuscle, GoalWeightloss, GoalFitness:
	default:
		cfg.Goal = GoalFitness
	}

	if cfg.DaysPerWeek < minDaysPerWeek {
		cfg.DaysPerWeek = minDaysPerWeek
	}
	if cfg.DaysPerWeek > maxDaysPerWeek {
		cfg.DaysPerWeek = maxDaysPerWeek
	}

	switch cfg.Experience {
	case catalog.DifficultyBeginner, catalog.DifficultyIntermediate, catalog.DifficultyAdvanced:
	default:
		cfg.Experience = catalog.DifficultyBeginner
	}

	cfg.Equipment = validEquipment(raw.Equipment)
	cfg.FocusAreas = validFocusAreas(raw.FocusAreas)
	cfg.DurationMinutes = snapDuration(raw.DurationMinutes)

	return cfg
}

func validEquipment(tags []catalog.Equipment) []catalog.Equipment {
	var valid []catalog.Equipment
	for _, tag := range tags {
		switch tag {
		case catalog.EquipmentGym, catalog.EquipmentHomeBasic, catalog.EquipmentHomeFull, catalog.EquipmentBodyweight:
			valid = append(valid, tag)
		}
	}
	return valid
}

func validFocusAreas(areas []catalog.MuscleGroup) []catalog.MuscleGroup {
	var valid []catalog.MuscleGroup
	for _, area := range areas {
		for _, known := range catalog.MuscleGroups {
			if area == known {
				valid = append(valid, area)
				break
			}
		}
		if len(valid) == maxFocusAreas {
			break
		}
	}
	return valid
}

// snapDuration snaps the requested session length to the nearest allowed
// duration, defaulting to 45 minutes when unset.
func snapDuration(minutes int) int {
	if minutes <= 0 {
		return 45
	}
	nearest := allowedDurations[0]
	for _, allowed := range allowedDurations[1:] {
		if abs(minutes-allowed) < abs(minutes-nearest) {
			nearest = allowed
		}
	}
	return nearest
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
