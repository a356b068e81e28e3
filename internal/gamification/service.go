package gamification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/marleybr/Treningsapp-sub000/internal/contexthelpers"
	"github.com/marleybr/Treningsapp-sub000/internal/sqlite"
)

// Service handles the business logic for workout completion and progress
// tracking.
type Service struct {
	repo   *sqliteRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new gamification service.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		repo:   newSQLiteRepository(db, logger),
		logger: logger,
		now:    time.Now,
	}
}

// CompleteWorkout records a finished workout and returns the awarded XP and
// any newly unlocked achievements.
func (s *Service) CompleteWorkout(ctx context.Context, workout Workout) (CompletionResult, error) {
	userID := contexthelpers.UserID(ctx)
	now := s.now()

	if workout.Date.IsZero() {
		workout.Date = now
	}
	if workout.CompletedAt.IsZero() {
		workout.CompletedAt = now
	}

	stats, err := s.repo.getStats(ctx, userID, now)
	if err != nil {
		return CompletionResult{}, fmt.Errorf("load stats: %w", err)
	}

	historyDates, err := s.repo.listWorkoutDates(ctx, userID)
	if err != nil {
		return CompletionResult{}, fmt.Errorf("load workout history: %w", err)
	}

	result := ProcessCompletion(workout, stats, historyDates, now)

	if err = s.repo.saveCompletion(ctx, userID, workout, result); err != nil {
		return CompletionResult{}, fmt.Errorf("save completion: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "workout completed",
		slog.Int("xp_awarded", result.XPAwarded),
		slog.Int("streak", result.Stats.CurrentStreak),
		slog.Int("unlocked_achievements", len(result.Unlocked)))

	return result, nil
}

// Stats returns the user's current stats with the lazy weekly XP reset
// applied. A reset is persisted so subsequent reads agree.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	userID := contexthelpers.UserID(ctx)
	now := s.now()

	stats, err := s.repo.getStats(ctx, userID, now)
	if err != nil {
		return Stats{}, fmt.Errorf("load stats: %w", err)
	}

	reset := applyWeeklyReset(stats, now)
	if reset.WeekStartDate != stats.WeekStartDate {
		if err = s.repo.saveStats(ctx, userID, reset); err != nil {
			return Stats{}, fmt.Errorf("persist weekly reset: %w", err)
		}
	}

	return reset, nil
}

// Achievements returns the static achievement catalog.
func (s *Service) Achievements() []Achievement {
	return DefaultAchievements()
}
