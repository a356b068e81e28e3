package plan

import (
	"fmt"
	"strings"

	"github.com/marleybr/Treningsapp-sub000/internal/catalog"
)

// tagKind enumerates the kinds of emphasis a day specification can carry.
type tagKind int

const (
	tagPush tagKind = iota
	tagPull
	tagLegs
	tagUpper
	tagFullBody
	tagCardio
	tagMuscle
)

// dayTag is one emphasis of a training day: either a named split segment
// (push, pull, legs, upper, full body), a cardio block, or a single muscle
// group. muscle is set only for tagMuscle.
type dayTag struct {
	kind   tagKind
	muscle catalog.MuscleGroup
}

func muscleTag(muscle catalog.MuscleGroup) dayTag {
	return dayTag{kind: tagMuscle, muscle: muscle}
}

// daySpec describes one day of the weekly split.
type daySpec struct {
	name string
	tags []dayTag
}

// muscleLabels are the Norwegian display labels used in day and plan names.
//
//nolint:gochecknoglobals // static lookup table.
var muscleLabels = map[catalog.MuscleGroup]string{
	catalog.MuscleChest:     "bryst",
	catalog.MuscleBack:      "rygg",
	catalog.MuscleLegs:      "ben",
	catalog.MuscleCore:      "kjerne",
	catalog.MuscleGlutes:    "sete",
	catalog.MuscleBiceps:    "biceps",
	catalog.MuscleTriceps:   "triceps",
	catalog.MuscleShoulders: "skuldre",
}

// planSplit decides the weekly split topology. It is a deterministic table
// lookup keyed by days per week and refined by focus areas and cardio
// preference; predictable, explainable splits are preferred over optimal
// ones.
func planSplit(cfg Config) []daySpec {
	wantsCardio := cfg.Preferences.PreferCardio || cfg.Goal == GoalWeightloss

	switch cfg.DaysPerWeek {
	case 2: //nolint:mnd // days per week.
		return []daySpec{
			{name: "Hele kroppen 1", tags: []dayTag{{kind: tagFullBody}}},
			{name: "Hele kroppen 2", tags: []dayTag{{kind: tagFullBody}}},
		}

	case 3: //nolint:mnd // days per week.
		days := []daySpec{
			{name: "Push dag", tags: []dayTag{{kind: tagPush}}},
			{name: "Pull dag", tags: []dayTag{{kind: tagPull}}},
			{name: "Ben dag", tags: []dayTag{{kind: tagLegs}}},
		}
		// Focus areas ride along on every day of a three-day split.
		for i := range days {
			for _, focus := range cfg.FocusAreas {
				days[i].tags = append(days[i].tags, muscleTag(focus))
			}
		}
		return days

	case 4: //nolint:mnd // days per week.
		if wantsCardio {
			return []daySpec{
				{name: "Overkropp", tags: []dayTag{{kind: tagUpper}}},
				{name: "Underkropp", tags: []dayTag{{kind: tagLegs}}},
				{name: "Push + kondisjon", tags: []dayTag{{kind: tagPush}, {kind: tagCardio}}},
				{name: "Pull + kondisjon", tags: []dayTag{{kind: tagPull}, {kind: tagCardio}}},
			}
		}
		return []daySpec{
			{name: "Overkropp", tags: []dayTag{{kind: tagUpper}}},
			{name: "Underkropp", tags: []dayTag{{kind: tagLegs}}},
			{name: "Push dag", tags: []dayTag{{kind: tagPush}}},
			{name: "Pull dag", tags: []dayTag{{kind: tagPull}}},
		}

	case 5: //nolint:mnd // days per week.
		days := []daySpec{
			{name: "Push dag", tags: []dayTag{{kind: tagPush}}},
			{name: "Pull dag", tags: []dayTag{{kind: tagPull}}},
			{name: "Ben dag", tags: []dayTag{{kind: tagLegs}}},
			{name: "Overkropp", tags: []dayTag{{kind: tagUpper}}},
		}
		if len(cfg.FocusAreas) > 0 {
			days = append(days, focusDay(cfg.FocusAreas))
		} else {
			days = append(days, daySpec{name: "Hele kroppen", tags: []dayTag{{kind: tagFullBody}}})
		}
		if cfg.Preferences.PreferCardio || cfg.Goal == GoalFitness {
			for i := 3; i < len(days); i++ {
				days[i].tags = append(days[i].tags, dayTag{kind: tagCardio})
			}
		}
		return days

	case 6: //nolint:mnd // days per week.
		if cfg.Goal == GoalWeightloss || cfg.Preferences.PreferHIIT {
			legDay := daySpec{name: "Ben + kondisjon", tags: []dayTag{{kind: tagLegs}, {kind: tagCardio}}}
			return []daySpec{
				{name: "Push dag", tags: []dayTag{{kind: tagPush}}},
				{name: "Pull dag", tags: []dayTag{{kind: tagPull}}},
				legDay,
				{name: "Push dag 2", tags: []dayTag{{kind: tagPush}}},
				{name: "Pull dag 2", tags: []dayTag{{kind: tagPull}}},
				{name: "Ben + kondisjon 2", tags: legDay.tags},
			}
		}
		bodyPartDays := []daySpec{
			{name: "Bryst og skuldre", tags: []dayTag{
				muscleTag(catalog.MuscleChest), muscleTag(catalog.MuscleShoulders),
			}},
			{name: "Rygg og armer", tags: []dayTag{
				muscleTag(catalog.MuscleBack), muscleTag(catalog.MuscleBiceps), muscleTag(catalog.MuscleTriceps),
			}},
			{name: "Ben og sete", tags: []dayTag{
				muscleTag(catalog.MuscleLegs), muscleTag(catalog.MuscleGlutes),
			}},
		}
		days := make([]daySpec, 0, 6) //nolint:mnd // days per week.
		days = append(days, bodyPartDays...)
		for _, day := range bodyPartDays {
			days = append(days, daySpec{name: day.name + " 2", tags: day.tags})
		}
		return days

	default:
		// ResolveConfig clamps days per week to [2,6]; treat anything else
		// as the two-day split.
		return planSplit(Config{DaysPerWeek: 2, Goal: cfg.Goal, Preferences: cfg.Preferences})
	}
}

// focusDay builds a dedicated day for the user's focus areas.
func focusDay(focusAreas []catalog.MuscleGroup) daySpec {
	tags := make([]dayTag, 0, len(focusAreas))
	labels := make([]string, 0, len(focusAreas))
	for _, focus := range focusAreas {
		tags = append(tags, muscleTag(focus))
		labels = append(labels, muscleLabels[focus])
	}
	return daySpec{
		name: fmt.Sprintf("Fokusdag: %s", strings.Join(labels, " og ")),
		tags: tags,
	}
}

// targetMuscles resolves the muscle groups a tag selects exercises for.
// Cardio tags select by exercise category instead and return nil here.
func (t dayTag) targetMuscles() []catalog.MuscleGroup {
	switch t.kind {
	case tagPush:
		return []catalog.MuscleGroup{catalog.MuscleChest, catalog.MuscleShoulders, catalog.MuscleTriceps}
	case tagPull:
		return []catalog.MuscleGroup{catalog.MuscleBack, catalog.MuscleBiceps}
	case tagLegs:
		return []catalog.MuscleGroup{catalog.MuscleLegs, catalog.MuscleGlutes}
	case tagUpper:
		return []catalog.MuscleGroup{
			catalog.MuscleChest, catalog.MuscleBack, catalog.MuscleShoulders,
			catalog.MuscleBiceps, catalog.MuscleTriceps,
		}
	case tagFullBody:
		return catalog.MuscleGroups
	case tagMuscle:
		return []catalog.MuscleGroup{t.muscle}
	default:
		return nil
	}
}

// exerciseCap returns how many exercises a tag may contribute to a day.
func (t dayTag) exerciseCap() int {
	switch t.kind {
	case tagPush, tagPull:
		return 5 //nolint:mnd // documented per-tag cap.
	case tagLegs, tagUpper, tagFullBody:
		return 6 //nolint:mnd // documented per-tag cap.
	case tagCardio:
		return 3 //nolint:mnd // documented per-tag cap.
	case tagMuscle:
		switch t.muscle {
		case catalog.MuscleShoulders, catalog.MuscleBiceps, catalog.MuscleTriceps:
			return 2 //nolint:mnd // small single-joint groups get fewer slots.
		default:
			return 3 //nolint:mnd // documented per-tag cap.
		}
	default:
		return 0
	}
}

// coversCore reports whether any tag already trains the core, in which case
// the synthesizer skips its random core add-on.
func coversCore(tags []dayTag) bool {
	for _, tag := range tags {
		if tag.kind == tagFullBody {
			return true
		}
		if tag.kind == tagMuscle && tag.muscle == catalog.MuscleCore {
			return true
		}
	}
	return false
}
