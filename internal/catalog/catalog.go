// Package catalog holds the static exercise catalog the training-plan
// generator selects from. Catalog entries are read-only at runtime.
package catalog

// Category classifies how an exercise recruits muscles.
type Category string

const (
	CategoryCompound  Category = "compound"
	CategoryIsolation Category = "isolation"
	CategoryCardio    Category = "cardio"
)

// Equipment tags the gear an exercise can be performed with. An exercise is
// usable when at least one of its tags is in the user's available set.
type Equipment string

const (
	EquipmentGym        Equipment = "gym"
	EquipmentHomeBasic  Equipment = "home_basic"
	EquipmentHomeFull   Equipment = "home_full"
	EquipmentBodyweight Equipment = "bodyweight"
)

// MuscleGroup identifies a trainable muscle group.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "chest"
	MuscleBack      MuscleGroup = "back"
	MuscleLegs      MuscleGroup = "legs"
	MuscleCore      MuscleGroup = "core"
	MuscleGlutes    MuscleGroup = "glutes"
	MuscleBiceps    MuscleGroup = "biceps"
	MuscleTriceps   MuscleGroup = "triceps"
	MuscleShoulders MuscleGroup = "shoulders"
)

// MuscleGroups lists every muscle group in a stable order.
//
//nolint:gochecknoglobals // static lookup table.
var MuscleGroups = []MuscleGroup{
	MuscleChest, MuscleBack, MuscleLegs, MuscleCore,
	MuscleGlutes, MuscleBiceps, MuscleTriceps, MuscleShoulders,
}

// Difficulty gates exercises by training experience.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Injury names recognized by the catalog's exclusion tags.
const (
	InjuryKnee     = "Kneproblemer"
	InjuryBack     = "Ryggproblemer"
	InjuryShoulder = "Skulderproblemer"
	InjuryWrist    = "Håndleddsproblemer"
	InjuryAnkle    = "Ankelproblemer"
)

// Exercise is a single immutable catalog entry.
type Exercise struct {
	Name              string
	Category          Category
	Equipment         []Equipment
	PrimaryMuscles    []MuscleGroup
	SecondaryMuscles  []MuscleGroup
	Difficulty        Difficulty
	AvoidWithInjuries []string
}

// UsableWith reports whether the exercise can be performed with any of the
// given equipment tags.
func (e Exercise) UsableWith(available []Equipment) bool {
	for _, required := range e.Equipment {
		for _, have := range available {
			if required == have {
				return true
			}
		}
	}
	return false
}

// Targets reports whether any of the given muscle groups is a primary muscle
// of the exercise.
func (e Exercise) Targets(muscles []MuscleGroup) bool {
	for _, primary := range e.PrimaryMuscles {
		for _, muscle := range muscles {
			if primary == muscle {
				return true
			}
		}
	}
	return false
}

// ContraindicatedBy reports whether any of the user's injuries appears in the
// exercise's exclusion tags.
func (e Exercise) ContraindicatedBy(injuries []string) bool {
	for _, avoid := range e.AvoidWithInjuries {
		for _, injury := range injuries {
			if avoid == injury {
				return true
			}
		}
	}
	return false
}

// Catalog is an immutable collection of exercises with name lookup.
type Catalog struct {
	exercises []Exercise
	byName    map[string]int
}

// New constructs a catalog from the given exercises.
func New(exercises []Exercise) *Catalog {
	byName := make(map[string]int, len(exercises))
	for i, exercise := range exercises {
		byName[exercise.Name] = i
	}
	return &Catalog{exercises: exercises, byName: byName}
}

// Exercises returns the catalog entries. Callers must treat the returned
// slice as read-only.
func (c *Catalog) Exercises() []Exercise {
	return c.exercises
}

// ByName looks up an exercise by its display name.
func (c *Catalog) ByName(name string) (Exercise, bool) {
	idx, ok := c.byName[name]
	if !ok {
		return Exercise{}, false
	}
	return c.exercises[idx], true
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.exercises)
}
