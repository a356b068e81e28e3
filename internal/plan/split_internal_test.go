package plan

import (
	"testing"

	"github.com/marleybr/Treningsapp-sub000/internal/catalog"
)

func dayNames(specs []daySpec) []string {
	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		names = append(names, spec.name)
	}
	return names
}

func TestPlanSplit(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       Config
		wantNames []string
	}{
		{
			name:      "two days is full body",
			cfg:       Config{DaysPerWeek: 2, Goal: GoalMuscle},
			wantNames: []string{"Hele kroppen 1", "Hele kroppen 2"},
		},
		{
			name:      "three days is push pull legs",
			cfg:       Config{DaysPerWeek: 3, Goal: GoalStrength},
			wantNames: []string{"Push dag", "Pull dag", "Ben dag"},
		},
		{
			name: "four days without cardio",
			cfg:  Config{DaysPerWeek: 4, Goal: GoalMuscle},
			wantNames: []string{
				"Overkropp", "Underkropp", "Push dag", "Pull dag",
			},
		},
		{
			name: "four days weightloss adds cardio",
			cfg:  Config{DaysPerWeek: 4, Goal: GoalWeightloss},
			wantNames: []string{
				"Overkropp", "Underkropp", "Push + kondisjon", "Pull + kondisjon",
			},
		},
		{
			name: "five days with focus areas gets a focus day",
			cfg: Config{
				DaysPerWeek: 5,
				Goal:        GoalMuscle,
				FocusAreas:  []catalog.MuscleGroup{catalog.MuscleShoulders, catalog.MuscleCore},
			},
			wantNames: []string{
				"Push dag", "Pull dag", "Ben dag", "Overkropp", "Fokusdag: skuldre og kjerne",
			},
		},
		{
			name: "five days without focus gets full body",
			cfg:  Config{DaysPerWeek: 5, Goal: GoalStrength},
			wantNames: []string{
				"Push dag", "Pull dag", "Ben dag", "Overkropp", "Hele kroppen",
			},
		},
		{
			name: "six days weightloss doubles push pull legs with cardio",
			cfg:  Config{DaysPerWeek: 6, Goal: GoalWeightloss},
			wantNames: []string{
				"Push dag", "Pull dag", "Ben + kondisjon",
				"Push dag 2", "Pull dag 2", "Ben + kondisjon 2",
			},
		},
		{
			name: "six days muscle uses body part split",
			cfg:  Config{DaysPerWeek: 6, Goal: GoalMuscle},
			wantNames: []string{
				"Bryst og skuldre", "Rygg og armer", "Ben og sete",
				"Bryst og skuldre 2", "Rygg og armer 2", "Ben og sete 2",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := dayNames(planSplit(tc.cfg))
			if len(got) != len(tc.wantNames) {
				t.Fatalf("got %v, want %v", got, tc.wantNames)
			}
			for i := range got {
				if got[i] != tc.wantNames[i] {
					t.Errorf("day %d: got %q, want %q", i+1, got[i], tc.wantNames[i])
				}
			}
		})
	}
}

// TestPlanSplitFocusRidesAlongThreeDays verifies that focus areas attach to
// every day of a three-day split instead of getting a dedicated day.
func TestPlanSplitFocusRidesAlongThreeDays(t *testing.T) {
	cfg := Config{
		DaysPerWeek: 3,
		Goal:        GoalMuscle,
		FocusAreas:  []catalog.MuscleGroup{catalog.MuscleCore},
	}

	for _, spec := range planSplit(cfg) {
		var hasFocus bool
		for _, tag := range spec.tags {
			if tag.kind == tagMuscle && tag.muscle == catalog.MuscleCore {
				hasFocus = true
			}
		}
		if !hasFocus {
			t.Errorf("day %q: expected core focus tag", spec.name)
		}
	}
}

func TestExerciseCap(t *testing.T) {
	testCases := []struct {
		tag  dayTag
		want int
	}{
		{tag: dayTag{kind: tagPush}, want: 5},
		{tag: dayTag{kind: tagPull}, want: 5},
		{tag: dayTag{kind: tagLegs}, want: 6},
		{tag: dayTag{kind: tagUpper}, want: 6},
		{tag: dayTag{kind: tagFullBody}, want: 6},
		{tag: dayTag{kind: tagCardio}, want: 3},
		{tag: muscleTag(catalog.MuscleBiceps), want: 2},
		{tag: muscleTag(catalog.MuscleChest), want: 3},
	}
	for _, tc := range testCases {
		if got := tc.tag.exerciseCap(); got != tc.want {
			t.Errorf("exerciseCap(%+v) = %d, want %d", tc.tag, got, tc.want)
		}
	}
}

func TestCoversCore(t *testing.T) {
	if !coversCore([]dayTag{{kind: tagFullBody}}) {
		t.Error("full body should cover the core")
	}
	if !coversCore([]dayTag{muscleTag(catalog.MuscleCore)}) {
		t.Error("core focus should cover the core")
	}
	if coversCore([]dayTag{{kind: tagPush}, {kind: tagCardio}}) {
		t.Error("push plus cardio should not cover the core")
	}
}
