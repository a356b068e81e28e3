package plan

import (
	"testing"

	"github.com/marleybr/Treningsapp-sub000/internal/catalog"
)

func testPool() []catalog.Exercise {
	return []catalog.Exercise{
		{
			Name:           "Barbell press",
			Category:       catalog.CategoryCompound,
			Equipment:      []catalog.Equipment{catalog.EquipmentGym},
			PrimaryMuscles: []catalog.MuscleGroup{catalog.MuscleChest},
			Difficulty:     catalog.DifficultyIntermediate,
		},
		{
			Name:           "Pistol squat",
			Category:       catalog.CategoryCompound,
			Equipment:      []catalog.Equipment{catalog.EquipmentBodyweight},
			PrimaryMuscles: []catalog.MuscleGroup{catalog.MuscleLegs},
			Difficulty:     catalog.DifficultyAdvanced,
			AvoidWithInjuries: []string{
				catalog.InjuryKnee,
			},
		},
		{
			Name:           "Wall sit",
			Category:       catalog.CategoryIsolation,
			Equipment:      []catalog.Equipment{catalog.EquipmentBodyweight},
			PrimaryMuscles: []catalog.MuscleGroup{catalog.MuscleLegs},
			Difficulty:     catalog.DifficultyBeginner,
		},
	}
}

func TestEligibleExercises(t *testing.T) {
	testCases := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "equipment restricts the pool",
			cfg: Config{
				Equipment:  []catalog.Equipment{catalog.EquipmentGym},
				Experience: catalog.DifficultyAdvanced,
			},
			want: []string{"Barbell press"},
		},
		{
			name: "injury excludes contraindicated exercises",
			cfg: Config{
				Equipment:  []catalog.Equipment{catalog.EquipmentBodyweight},
				Experience: catalog.DifficultyAdvanced,
				Injuries:   []string{catalog.InjuryKnee},
			},
			want: []string{"Wall sit"},
		},
		{
			name: "beginner never sees advanced exercises",
			cfg: Config{
				Equipment:  []catalog.Equipment{catalog.EquipmentBodyweight},
				Experience: catalog.DifficultyBeginner,
			},
			want: []string{"Wall sit"},
		},
		{
			name: "empty equipment yields empty pool",
			cfg: Config{
				Experience: catalog.DifficultyAdvanced,
			},
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			eligible := eligibleExercises(testPool(), tc.cfg, testRNG())

			var got []string
			for _, exercise := range eligible {
				got = append(got, exercise.Name)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}

// TestDifficultyGateIntermediate verifies that intermediates are admitted to
// advanced exercises roughly half the time.
func TestDifficultyGateIntermediate(t *testing.T) {
	advanced := catalog.Exercise{
		Name:       "Muscle-up",
		Difficulty: catalog.DifficultyAdvanced,
	}

	rng := testRNG()
	admitted := 0
	const trials = 1000
	for range trials {
		if passesDifficultyGate(advanced, catalog.DifficultyIntermediate, rng) {
			admitted++
		}
	}

	if admitted < 400 || admitted > 600 {
		t.Errorf("got %d admissions out of %d, want roughly half", admitted, trials)
	}
}
