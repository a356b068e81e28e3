package gamification

// RequirementType selects which stats field an achievement tests.
type RequirementType string

const (
	RequirementWorkouts RequirementType = "workouts"
	RequirementStreak   RequirementType = "streak"
	RequirementVolume   RequirementType = "volume"
	RequirementLevel    RequirementType = "level"
)

// Requirement is the unlock condition of an achievement.
type Requirement struct {
	Type  RequirementType `json:"type"`
	Value int             `json:"value"`
}

// Achievement is one entry of the static achievement catalog.
type Achievement struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	XPReward    int         `json:"xp_reward"`
	Requirement Requirement `json:"requirement"`
}

// DefaultAchievements is the built-in achievement catalog. IDs are stable;
// persisted unlocks reference them.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{ID: "first-workout", Name: "Første økt", XPReward: 50,
			Requirement: Requirement{Type: RequirementWorkouts, Value: 1}},
		{ID: "workouts-10", Name: "10 økter", XPReward: 100,
			Requirement: Requirement{Type: RequirementWorkouts, Value: 10}},
		{ID: "workouts-50", Name: "50 økter", XPReward: 250,
			Requirement: Requirement{Type: RequirementWorkouts, Value: 50}},
		{ID: "workouts-100", Name: "Hundreklubben", XPReward: 500,
			Requirement: Requirement{Type: RequirementWorkouts, Value: 100}},
		{ID: "streak-3", Name: "3 dager på rad", XPReward: 75,
			Requirement: Requirement{Type: RequirementStreak, Value: 3}},
		{ID: "streak-7", Name: "En hel uke", XPReward: 150,
			Requirement: Requirement{Type: RequirementStreak, Value: 7}},
		{ID: "streak-30", Name: "30-dagers maskin", XPReward: 500,
			Requirement: Requirement{Type: RequirementStreak, Value: 30}},
		{ID: "volume-1000", Name: "Ett tonn løftet", XPReward: 100,
			Requirement: Requirement{Type: RequirementVolume, Value: 1000}},
		{ID: "volume-10000", Name: "Ti tonn løftet", XPReward: 300,
			Requirement: Requirement{Type: RequirementVolume, Value: 10000}},
		{ID: "level-5", Name: "Nivå 5", XPReward: 150,
			Requirement: Requirement{Type: RequirementLevel, Value: 5}},
		{ID: "level-10", Name: "Nivå 10", XPReward: 400,
			Requirement: Requirement{Type: RequirementLevel, Value: 10}},
	}
}

// EvaluateAchievements returns the catalog entries whose requirements the
// stats now satisfy, excluding already-unlocked ones. It never revokes an
// unlock.
func EvaluateAchievements(catalog []Achievement, stats Stats) []Achievement {
	var unlocked []Achievement
	for _, achievement := range catalog {
		if stats.HasAchievement(achievement.ID) {
			continue
		}
		if meetsRequirement(achievement.Requirement, stats) {
			unlocked = append(unlocked, achievement)
		}
	}
	return unlocked
}

func meetsRequirement(req Requirement, stats Stats) bool {
	switch req.Type {
	case RequirementWorkouts:
		return stats.TotalWorkouts >= req.Value
	case RequirementStreak:
		return stats.CurrentStreak >= req.Value
	case RequirementVolume:
		return stats.TotalVolumeKg >= float64(req.Value)
	case RequirementLevel:
		return stats.Level >= req.Value
	default:
		return false
	}
}
