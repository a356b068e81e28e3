package catalog

// Default returns the built-in exercise catalog.
//
// Display names follow the Norwegian convention of the rest of the app except
// for movements that are commonly referred to by their English names.
func Default() *Catalog {
	return New([]Exercise{
		// Compound movements.
		{
			Name:             "Benkpress",
			Category:         CategoryCompound,
			Equipment:        []Equipment{EquipmentGym, EquipmentHomeFull},
			PrimaryMuscles:   []MuscleGroup{MuscleChest},
			SecondaryMuscles: []MuscleGroup{MuscleTriceps, MuscleShoulders},
			Difficulty:       DifficultyIntermediate,
			AvoidWithInjuries: []string{
				InjuryShoulder,
			},
		},
		{
			Name:              "Skråbenkpress med manualer",
			Category:          CategoryCompound,
			Equipment:         []Equipment{EquipmentGym, EquipmentHomeFull, EquipmentHomeBasic},
			PrimaryMuscles:    []MuscleGroup{MuscleChest},
			SecondaryMuscles:  []MuscleGroup{MuscleTriceps, MuscleShoulders},
			Difficulty:        DifficultyIntermediate,
			AvoidWithInjuries: []string{InjuryShoulder},
		},
		{
			Name:              "Knebøy",
			Category:          CategoryCompound,
			Equipment:         []Equipment{EquipmentGym, EquipmentHomeFull},
			PrimaryMuscles:    []MuscleGroup{MuscleLegs},
			SecondaryMuscles:  []MuscleGroup{MuscleGlutes, MuscleCore},
			Difficulty:        DifficultyIntermediate,
			AvoidWithInjuries: []string{InjuryKnee},
		},
		{
			Name:              "Frontbøy",
			Category:          CategoryCompound,
			Equipment:         []Equipment{EquipmentGym},
			PrimaryMuscles:    []MuscleGroup{MuscleLegs},
			SecondaryMuscles:  []MuscleGroup{MuscleCore, MuscleGlutes},
			Difficulty:        DifficultyAdvanced,
			AvoidWithInjuries: []string{InjuryKnee, InjuryWrist},
		},
		{
			Name:              "Markløft",
			Category:          CategoryCompound,
			Equipment:         []Equipment{EquipmentGym, EquipmentHomeFull},
			PrimaryMuscles:    []MuscleGroup{MuscleBack},
			SecondaryMuscles:  []MuscleGroup{MuscleLegs, MuscleGlutes, MuscleCore},
			Difficulty:        DifficultyAdvanced,
			AvoidWithInjuries: []string{InjuryBack},
		},
		{
			Name:              "Rumensk markløft",
			Category:          CategoryCompound,
			Equipment:         []Equipment{EquipmentGym, EquipmentHomeFull},
			PrimaryMuscles:    []MuscleGroup{MuscleLegs},
			SecondaryMuscles:  []MuscleGroup{MuscleGlutes, MuscleBack},
			Difficulty:        DifficultyIntermediate,
			AvoidWithInjuries: []string{InjuryBack},
		},
		{
			Name:              "Skulderpress",
			Category:          CategoryCompound,
			Equipment:         []Equipment{EquipmentGym, EquipmentHomeFull, EquipmentHomeBasic},
			PrimaryMuscles:    []MuscleGroup{MuscleShoulders},
			SecondaryMuscles:  []MuscleGroup{MuscleTriceps},
			Difficulty:        DifficultyIntermediate,
			AvoidWithInjuries: []string{InjuryShoulder},
		},
		{
			Name:              "Roing med stang",
			Category:          CategoryCompound,
			Equipment:         []Equipment{EquipmentGym, EquipmentHomeFull},
			PrimaryMuscles:    []MuscleGroup{MuscleBack},
			SecondaryMuscles:  []MuscleGroup{MuscleBiceps},
			Difficulty:        DifficultyIntermediate,
			AvoidWithInjuries: []string{InjuryBack},
		},
		{
			Name:             "Enarms roing med manual",
			Category:         CategoryCompound,
			Equipment:        []Equipment{EquipmentGym, EquipmentHomeFull, EquipmentHomeBasic},
			PrimaryMuscles:   []MuscleGroup{MuscleBack},
			SecondaryMuscles: []MuscleGroup{MuscleBiceps},
			Difficulty:       DifficultyBeginner,
		},
		{
			Name:             "Nedtrekk",
			Category:         CategoryCompound,
			Equipment:        []Equipment{EquipmentGym},
			PrimaryMuscles:   []MuscleGroup{MuscleBack},
			SecondaryMuscles: []MuscleGroup{MuscleBiceps},
			Difficulty:       DifficultyBeginner,
		},
		{
			Name:             "Pull-ups",
			Category:         CategoryCompound,
			Equipment:        []Equipment{EquipmentGym, EquipmentBodyweight},
			PrimaryMuscles:   []MuscleGroup{MuscleBack},
			SecondaryMuscles: []MuscleGroup{MuscleBiceps, MuscleCore},
			Difficulty:       DifficultyAdvanced,
		},
		{
			Name:             "Push-ups",
			Category:         CategoryCompound,
			Equipment:        []Equipment{EquipmentBodyweight, EquipmentHomeBasic},
			PrimaryMuscles:   []MuscleGroup{MuscleChest},
			SecondaryMuscles: []MuscleGroup{MuscleTriceps, MuscleShoulders, MuscleCore},
			Difficulty:       DifficultyBeginner,
		},
		{
			Name:              "Dips",
			Category:          CategoryCompound,
			Equipment:         []Equipment{EquipmentGym, EquipmentBodyweight},
			PrimaryMuscles:    []MuscleGroup{MuscleTriceps},
			SecondaryMuscles:  []MuscleGroup{MuscleChest, MuscleShoulders},
			Difficulty:        DifficultyIntermediate,
			AvoidWithInjuries: []string{InjuryShoulder},
		},
		{
			Name:              "Pike push-ups",
			Category:          CategoryCompound,
			Equipment:         []Equipment{EquipmentBodyweight},
			PrimaryMuscles:    []MuscleGroup{MuscleShoulders},
			SecondaryMuscles:  []MuscleGroup{MuscleTriceps},
			Difficulty:        DifficultyIntermediate,
			AvoidWithInjuries: []string{InjuryShoulder, InjuryWrist},
		},
		{
			Name:              "Leg press",
			Category:          CategoryCompound,
			Equipment:         []Equipment{EquipmentGym},
			PrimaryMuscles:    []MuscleGroup{MuscleLegs},
			SecondaryMuscles:  []MuscleGroup{MuscleGlutes},
			Difficulty:        DifficultyBeginner,
			AvoidWithInjuries: []string{InjuryKnee},
		},
		{
			Name:              "Utfall",
			Category:          CategoryCompound,
			Equipment:         []Equipment{EquipmentBodyweight, EquipmentHomeBasic, EquipmentHomeFull, EquipmentGym},
			PrimaryMuscles:    []MuscleGroup{MuscleLegs},
			SecondaryMuscles:  []MuscleGroup{MuscleGlutes},
			Difficulty:        DifficultyBeginner,
			AvoidWithInjuries: []string{InjuryKnee},
		},
		{
			Name:              "Bulgarske utfall",
			Category:          CategoryCompound,
			Equipment:         []Equipment{EquipmentBodyweight, EquipmentHomeBasic, EquipmentGym},
			PrimaryMuscles:    []MuscleGroup{MuscleLegs},
			SecondaryMuscles:  []MuscleGroup{MuscleGlutes, MuscleCore},
			Difficulty:        DifficultyAdvanced,
			AvoidWithInjuries: []string{InjuryKnee},
		},
		{
			Name:             "Bodyweight squats",
			Category:         CategoryCompound,
			Equipment:        []Equipment{EquipmentBodyweight},
			PrimaryMuscles:   []MuscleGroup{MuscleLegs},
			SecondaryMuscles: []MuscleGroup{MuscleGlutes},
			Difficulty:       DifficultyBeginner,
		},
		{
			Name:              "Gobletbøy",
			Category:          CategoryCompound,
			Equipment:         []Equipment{EquipmentHomeBasic, EquipmentHomeFull, EquipmentGym},
			PrimaryMuscles:    []MuscleGroup{MuscleLegs},
			SecondaryMuscles:  []MuscleGroup{MuscleGlutes, MuscleCore},
			Difficulty:        DifficultyBeginner,
			AvoidWithInjuries: []string{InjuryKnee},
		},
		{
			Name:             "Hip thrust",
			Category:         CategoryCompound,
			Equipment:        []Equipment{EquipmentGym, EquipmentHomeFull},
			PrimaryMuscles:   []MuscleGroup{MuscleGlutes},
			SecondaryMuscles: []MuscleGroup{MuscleLegs},
			Difficulty:       DifficultyIntermediate,
		},
		{
			Name:              "Step-ups",
			Category:          CategoryCompound,
			Equipment:         []Equipment{EquipmentBodyweight, EquipmentHomeBasic},
			PrimaryMuscles:    []MuscleGroup{MuscleLegs},
			SecondaryMuscles:  []MuscleGroup{MuscleGlutes},
			Difficulty:        DifficultyBeginner,
			AvoidWithInjuries: []string{InjuryKnee},
		},

		// Isolation movements.
		{
			Name:           "Bicepscurl med manualer",
			Category:       CategoryIsolation,
			Equipment:      []Equipment{EquipmentGym, EquipmentHomeFull, EquipmentHomeBasic},
			PrimaryMuscles: []MuscleGroup{MuscleBiceps},
			Difficulty:     DifficultyBeginner,
		},
		{
			Name:           "Hammercurl",
			Category:       CategoryIsolation,
			Equipment:      []Equipment{EquipmentGym, EquipmentHomeFull, EquipmentHomeBasic},
			PrimaryMuscles: []MuscleGroup{MuscleBiceps},
			Difficulty:     DifficultyBeginner,
		},
		{
			Name:           "Tricepspress i kabel",
			Category:       CategoryIsolation,
			Equipment:      []Equipment{EquipmentGym},
			PrimaryMuscles: []MuscleGroup{MuscleTriceps},
			Difficulty:     DifficultyBeginner,
		},
		{
			Name:           "Franskpress",
			Category:       CategoryIsolation,
			Equipment:      []Equipment{EquipmentGym, EquipmentHomeFull, EquipmentHomeBasic},
			PrimaryMuscles: []MuscleGroup{MuscleTriceps},
			Difficulty:     DifficultyIntermediate,
		},
		{
			Name:              "Sidehev",
			Category:          CategoryIsolation,
			Equipment:         []Equipment{EquipmentGym, EquipmentHomeFull, EquipmentHomeBasic},
			PrimaryMuscles:    []MuscleGroup{MuscleShoulders},
			Difficulty:        DifficultyBeginner,
			AvoidWithInjuries: []string{InjuryShoulder},
		},
		{
			Name:              "Fronthev",
			Category:          CategoryIsolation,
			Equipment:         []Equipment{EquipmentGym, EquipmentHomeFull, EquipmentHomeBasic},
			PrimaryMuscles:    []MuscleGroup{MuscleShoulders},
			Difficulty:        DifficultyBeginner,
			AvoidWithInjuries: []string{InjuryShoulder},
		},
		{
			Name:           "Flyes med manualer",
			Category:       CategoryIsolation,
			Equipment:      []Equipment{EquipmentGym, EquipmentHomeFull, EquipmentHomeBasic},
			PrimaryMuscles: []MuscleGroup{MuscleChest},
			Difficulty:     DifficultyBeginner,
		},
		{
			Name:           "Kabelkryss",
			Category:       CategoryIsolation,
			Equipment:      []Equipment{EquipmentGym},
			PrimaryMuscles: []MuscleGroup{MuscleChest},
			Difficulty:     DifficultyIntermediate,
		},
		{
			Name:              "Leg extension",
			Category:          CategoryIsolation,
			Equipment:         []Equipment{EquipmentGym},
			PrimaryMuscles:    []MuscleGroup{MuscleLegs},
			Difficulty:        DifficultyBeginner,
			AvoidWithInjuries: []string{InjuryKnee},
		},
		{
			Name:           "Leg curl",
			Category:       CategoryIsolation,
			Equipment:      []Equipment{EquipmentGym},
			PrimaryMuscles: []MuscleGroup{MuscleLegs},
			Difficulty:     DifficultyBeginner,
		},
		{
			Name:           "Tåhev",
			Category:       CategoryIsolation,
			Equipment:      []Equipment{EquipmentBodyweight, EquipmentHomeBasic, EquipmentHomeFull, EquipmentGym},
			PrimaryMuscles: []MuscleGroup{MuscleLegs},
			Difficulty:     DifficultyBeginner,
		},
		{
			Name:           "Bekkenløft",
			Category:       CategoryIsolation,
			Equipment:      []Equipment{EquipmentBodyweight},
			PrimaryMuscles: []MuscleGroup{MuscleGlutes},
			Difficulty:     DifficultyBeginner,
		},
		{
			Name:              "Hyperextensions",
			Category:          CategoryIsolation,
			Equipment:         []Equipment{EquipmentGym},
			PrimaryMuscles:    []MuscleGroup{MuscleBack},
			SecondaryMuscles:  []MuscleGroup{MuscleGlutes},
			Difficulty:        DifficultyBeginner,
			AvoidWithInjuries: []string{InjuryBack},
		},
		{
			Name:           "Plank",
			Category:       CategoryIsolation,
			Equipment:      []Equipment{EquipmentBodyweight},
			PrimaryMuscles: []MuscleGroup{MuscleCore},
			Difficulty:     DifficultyBeginner,
		},
		{
			Name:           "Sideplanke",
			Category:       CategoryIsolation,
			Equipment:      []Equipment{EquipmentBodyweight},
			PrimaryMuscles: []MuscleGroup{MuscleCore},
			Difficulty:     DifficultyIntermediate,
		},
		{
			Name:              "Sit-ups",
			Category:          CategoryIsolation,
			Equipment:         []Equipment{EquipmentBodyweight},
			PrimaryMuscles:    []MuscleGroup{MuscleCore},
			Difficulty:        DifficultyBeginner,
			AvoidWithInjuries: []string{InjuryBack},
		},
		{
			Name:           "Crunches",
			Category:       CategoryIsolation,
			Equipment:      []Equipment{EquipmentBodyweight},
			PrimaryMuscles: []MuscleGroup{MuscleCore},
			Difficulty:     DifficultyBeginner,
		},
		{
			Name:              "Russian twists",
			Category:          CategoryIsolation,
			Equipment:         []Equipment{EquipmentBodyweight, EquipmentHomeBasic},
			PrimaryMuscles:    []MuscleGroup{MuscleCore},
			Difficulty:        DifficultyIntermediate,
			AvoidWithInjuries: []string{InjuryBack},
		},
		{
			Name:           "Hengende benløft",
			Category:       CategoryIsolation,
			Equipment:      []Equipment{EquipmentGym, EquipmentBodyweight},
			PrimaryMuscles: []MuscleGroup{MuscleCore},
			Difficulty:     DifficultyAdvanced,
		},
		{
			Name:           "Superman",
			Category:       CategoryIsolation,
			Equipment:      []Equipment{EquipmentBodyweight},
			PrimaryMuscles: []MuscleGroup{MuscleBack},
			Difficulty:     DifficultyBeginner,
		},

		// Cardio.
		{
			Name:           "Løping",
			Category:       CategoryCardio,
			Equipment:      []Equipment{EquipmentBodyweight, EquipmentGym},
			PrimaryMuscles: []MuscleGroup{MuscleLegs},
			Difficulty:     DifficultyBeginner,
		},
		{
			Name:              "Romaskin",
			Category:          CategoryCardio,
			Equipment:         []Equipment{EquipmentGym},
			PrimaryMuscles:    []MuscleGroup{MuscleBack, MuscleLegs},
			Difficulty:        DifficultyIntermediate,
			AvoidWithInjuries: []string{InjuryBack},
		},
		{
			Name:              "Burpees",
			Category:          CategoryCardio,
			Equipment:         []Equipment{EquipmentBodyweight},
			PrimaryMuscles:    []MuscleGroup{MuscleLegs, MuscleChest, MuscleCore},
			Difficulty:        DifficultyIntermediate,
			AvoidWithInjuries: []string{InjuryKnee, InjuryWrist},
		},
		{
			Name:              "Hoppetau",
			Category:          CategoryCardio,
			Equipment:         []Equipment{EquipmentBodyweight, EquipmentHomeBasic},
			PrimaryMuscles:    []MuscleGroup{MuscleLegs},
			Difficulty:        DifficultyBeginner,
			AvoidWithInjuries: []string{InjuryAnkle},
		},
		{
			Name:           "Fjellklatrere",
			Category:       CategoryCardio,
			Equipment:      []Equipment{EquipmentBodyweight},
			PrimaryMuscles: []MuscleGroup{MuscleCore, MuscleLegs},
			Difficulty:     DifficultyBeginner,
		},
		{
			Name:           "Jumping jacks",
			Category:       CategoryCardio,
			Equipment:      []Equipment{EquipmentBodyweight},
			PrimaryMuscles: []MuscleGroup{MuscleLegs},
			Difficulty:     DifficultyBeginner,
		},
		{
			Name:           "Spinning",
			Category:       CategoryCardio,
			Equipment:      []Equipment{EquipmentGym},
			PrimaryMuscles: []MuscleGroup{MuscleLegs},
			Difficulty:     DifficultyBeginner,
		},
		{
			Name:           "Ellipsemaskin",
			Category:       CategoryCardio,
			Equipment:      []Equipment{EquipmentGym},
			PrimaryMuscles: []MuscleGroup{MuscleLegs},
			Difficulty:     DifficultyBeginner,
		},
	})
}
