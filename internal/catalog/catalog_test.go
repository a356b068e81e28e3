package catalog_test

import (
	"testing"

	"github.com/marleybr/Treningsapp-sub000/internal/catalog"
)

func TestDefaultCatalogNamesAreUnique(t *testing.T) {
	cat := catalog.Default()
	seen := make(map[string]bool, cat.Len())
	for _, exercise := range cat.Exercises() {
		if seen[exercise.Name] {
			t.Errorf("duplicate exercise name %q", exercise.Name)
		}
		seen[exercise.Name] = true
	}
}

func TestDefaultCatalogEntriesAreComplete(t *testing.T) {
	for _, exercise := range catalog.Default().Exercises() {
		if exercise.Name == "" {
			t.Error("exercise with empty name")
		}
		if len(exercise.Equipment) == 0 {
			t.Errorf("%s: no equipment tags", exercise.Name)
		}
		if len(exercise.PrimaryMuscles) == 0 {
			t.Errorf("%s: no primary muscles", exercise.Name)
		}
		switch exercise.Category {
		case catalog.CategoryCompound, catalog.CategoryIsolation, catalog.CategoryCardio:
		default:
			t.Errorf("%s: unknown category %q", exercise.Name, exercise.Category)
		}
		switch exercise.Difficulty {
		case catalog.DifficultyBeginner, catalog.DifficultyIntermediate, catalog.DifficultyAdvanced:
		default:
			t.Errorf("%s: unknown difficulty %q", exercise.Name, exercise.Difficulty)
		}
	}
}

func TestUsableWith(t *testing.T) {
	cat := catalog.Default()
	benkpress, ok := cat.ByName("Benkpress")
	if !ok {
		t.Fatal("Benkpress not in catalog")
	}
	pushups, ok := cat.ByName("Push-ups")
	if !ok {
		t.Fatal("Push-ups not in catalog")
	}

	bodyweightOnly := []catalog.Equipment{catalog.EquipmentBodyweight}
	if benkpress.UsableWith(bodyweightOnly) {
		t.Error("Benkpress should not be usable with bodyweight equipment only")
	}
	if !pushups.UsableWith(bodyweightOnly) {
		t.Error("Push-ups should be usable with bodyweight equipment only")
	}
}

func TestFallbackExercisesExist(t *testing.T) {
	// The day synthesizer's fallback routine references these by name.
	cat := catalog.Default()
	for _, name := range []string{"Push-ups", "Bodyweight squats", "Plank"} {
		if _, ok := cat.ByName(name); !ok {
			t.Errorf("fallback exercise %q missing from catalog", name)
		}
	}
}
