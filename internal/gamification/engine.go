package gamification

import (
	"math"
	"slices"
	"time"
)

// XP and progression constants.
const (
	xpPerWorkout     = 50
	xpPerKg          = 0.1
	xpStreakBonus    = 25
	workoutsPerLevel = 5
)

// Volume sums weight times reps over the completed sets.
func Volume(sets []CompletedSet) float64 {
	var volume float64
	for _, set := range sets {
		volume += set.WeightKg * float64(set.Reps)
	}
	return volume
}

// levelFor derives the level from the workout count. Levels start at 1 and
// advance every workoutsPerLevel workouts.
func levelFor(totalWorkouts int) int {
	return totalWorkouts/workoutsPerLevel + 1
}

// ComputeStreak counts consecutive training days ending at today or
// yesterday.
//
// The dates are reduced to day granularity, deduplicated, and walked in
// descending order against a sliding anchor. A workout yesterday keeps the
// streak alive even when today's workout hasn't happened yet; any other gap
// breaks it.
func ComputeStreak(dates []time.Time, today time.Time) int {
	days := distinctDaysDescending(dates)
	todayDay := toDay(today)

	streak := 0
	anchor := todayDay
	for _, day := range days {
		switch {
		case day.Equal(anchor.AddDate(0, 0, -streak)):
			streak++
		case streak == 0 && day.Equal(todayDay.AddDate(0, 0, -1)):
			streak = 1
			anchor = todayDay.AddDate(0, 0, -1)
		default:
			return streak
		}
	}
	return streak
}

// ProcessCompletion applies one completed workout to the user's stats.
//
// historyDates must contain the dates of all previously completed workouts;
// the just-completed workout's date is added before the streak is recomputed.
// Achievements are evaluated against the updated totals so a workout can both
// cross a threshold and unlock the corresponding achievement in one step.
func ProcessCompletion(workout Workout, stats Stats, historyDates []time.Time, now time.Time) CompletionResult {
	stats = applyWeeklyReset(stats, now)

	volume := Volume(workout.Sets)
	xp := xpPerWorkout + int(math.Floor(volume*xpPerKg))

	streak := ComputeStreak(append(slices.Clone(historyDates), workout.Date), now)
	xp += streak * xpStreakBonus

	updated := stats
	updated.TotalWorkouts++
	updated.TotalVolumeKg += volume
	updated.CurrentStreak = streak
	updated.LongestStreak = max(updated.LongestStreak, streak)
	updated.Level = levelFor(updated.TotalWorkouts)

	unlocked := EvaluateAchievements(DefaultAchievements(), updated)
	for _, achievement := range unlocked {
		xp += achievement.XPReward
		updated.AchievementIDs = append(updated.AchievementIDs, achievement.ID)
	}

	updated.XP += xp
	updated.WeeklyXP += xp

	return CompletionResult{
		Stats:     updated,
		XPAwarded: xp,
		Unlocked:  unlocked,
	}
}

// applyWeeklyReset zeroes weekly XP when the stats were last touched in an
// earlier ISO week. The check is lazy: it runs whenever stats are loaded or
// updated, there is no scheduled job.
func applyWeeklyReset(stats Stats, now time.Time) Stats {
	weekStart := isoWeekStart(now)
	if stats.WeekStartDate.Before(weekStart) {
		stats.WeeklyXP = 0
		stats.WeekStartDate = weekStart
	}
	return stats
}

// isoWeekStart returns the Monday of the week containing t, at day
// granularity.
func isoWeekStart(t time.Time) time.Time {
	day := toDay(t)
	offset := int(day.Weekday() - time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

func toDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func distinctDaysDescending(dates []time.Time) []time.Time {
	seen := make(map[time.Time]bool, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, date := range dates {
		day := toDay(date)
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	slices.SortFunc(days, func(a, b time.Time) int {
		return b.Compare(a)
	})
	return days
}
