// Package nutrition computes calorie and macronutrient targets from a user
// profile.
package nutrition

import (
	"math"
	"time"
)

// Gender selects the Mifflin-St Jeor constant.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel scales BMR into daily energy expenditure.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// FitnessGoal drives the calorie adjustment and macro split.
type FitnessGoal string

const (
	GoalLoseWeight     FitnessGoal = "lose_weight"
	GoalMaintain       FitnessGoal = "maintain"
	GoalBuildMuscle    FitnessGoal = "build_muscle"
	GoalImproveFitness FitnessGoal = "improve_fitness"
)

// Profile is the user's nutrition-relevant body data. CustomCalories, when
// set, replaces the computed calorie target entirely.
type Profile struct {
	Gender         Gender        `json:"gender"`
	WeightKg       float64       `json:"weight_kg"`
	HeightCm       float64       `json:"height_cm"`
	BirthDate      *time.Time    `json:"birth_date,omitempty"`
	ActivityLevel  ActivityLevel `json:"activity_level"`
	FitnessGoal    FitnessGoal   `json:"fitness_goal"`
	CustomCalories *int          `json:"custom_calories,omitempty"`
}

// Macros are daily macronutrient targets in grams.
type Macros struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// Targets are the derived daily nutrition targets. They are recomputed on
// demand from the profile and never stored as authoritative data.
type Targets struct {
	BMR            int    `json:"bmr"`
	TDEE           int    `json:"tdee"`
	TargetCalories int    `json:"target_calories"`
	Macros         Macros `json:"macros"`
}

// defaultAge is assumed when the profile has no birth date.
const defaultAge = 30

//nolint:gochecknoglobals // static lookup tables.
var (
	activityMultipliers = map[ActivityLevel]float64{
		ActivitySedentary:  1.2,
		ActivityLight:      1.375,
		ActivityModerate:   1.55,
		ActivityActive:     1.725,
		ActivityVeryActive: 1.9,
	}

	goalAdjustments = map[FitnessGoal]int{
		GoalLoseWeight:     -500,
		GoalMaintain:       0,
		GoalBuildMuscle:    300,
		GoalImproveFitness: 0,
	}

	// macroRatios are protein/carbs/fat fractions of target calories.
	macroRatios = map[FitnessGoal][3]float64{
		GoalLoseWeight:     {0.35, 0.35, 0.30},
		GoalMaintain:       {0.30, 0.40, 0.30},
		GoalBuildMuscle:    {0.30, 0.45, 0.25},
		GoalImproveFitness: {0.25, 0.50, 0.25},
	}
)

// Calories per gram of macronutrient.
const (
	caloriesPerGramProtein = 4
	caloriesPerGramCarbs   = 4
	caloriesPerGramFat     = 9
)

// ComputeTargets derives BMR, TDEE, target calories, and macros from the
// profile using the Mifflin-St Jeor equation. now is needed to derive age
// from the birth date.
func ComputeTargets(profile Profile, now time.Time) Targets {
	bmr := computeBMR(profile, now)

	multiplier, ok := activityMultipliers[profile.ActivityLevel]
	if !ok {
		multiplier = activityMultipliers[ActivityModerate]
	}
	tdee := int(math.Round(float64(bmr) * multiplier))

	goal := profile.FitnessGoal
	if _, ok = macroRatios[goal]; !ok {
		goal = GoalMaintain
	}

	targetCalories := tdee + goalAdjustments[goal]
	if profile.CustomCalories != nil {
		targetCalories = *profile.CustomCalories
	}

	ratios := macroRatios[goal]
	calories := float64(targetCalories)

	return Targets{
		BMR:            bmr,
		TDEE:           tdee,
		TargetCalories: targetCalories,
		Macros: Macros{
			ProteinG: int(math.Round(calories * ratios[0] / caloriesPerGramProtein)),
			CarbsG:   int(math.Round(calories * ratios[1] / caloriesPerGramCarbs)),
			FatG:     int(math.Round(calories * ratios[2] / caloriesPerGramFat)),
		},
	}
}

// computeBMR evaluates Mifflin-St Jeor rounded to the nearest calorie.
func computeBMR(profile Profile, now time.Time) int {
	age := defaultAge
	if profile.BirthDate != nil {
		age = ageAt(*profile.BirthDate, now)
	}

	bmr := 10*profile.WeightKg + 6.25*profile.HeightCm - 5*float64(age)
	if profile.Gender == GenderFemale {
		bmr -= 161
	} else {
		bmr += 5
	}
	return int(math.Round(bmr))
}

// ageAt computes whole years between birth date and now.
func ageAt(birthDate, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
