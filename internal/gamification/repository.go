package gamification

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/marleybr/Treningsapp-sub000/internal/errors"
	"github.com/marleybr/Treningsapp-sub000/internal/sqlite"
)

const (
	timestampFormat = "2006-01-02T15:04:05.000Z"
	dateFormat      = time.DateOnly
)

// sqliteRepository persists workouts, stats, and achievement unlocks.
type sqliteRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newSQLiteRepository(db *sqlite.Database, logger *slog.Logger) *sqliteRepository {
	return &sqliteRepository{
		db:     db,
		logger: logger,
	}
}

// getStats loads the user's stats row with unlocked achievement ids. A user
// without a row gets fresh stats anchored at the current ISO week.
func (r *sqliteRepository) getStats(ctx context.Context, userID int64, now time.Time) (Stats, error) {
	var (
		stats        Stats
		weekStartStr string
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT xp, level, current_streak, longest_streak,
		       total_workouts, total_volume_kg, weekly_xp, week_start_date
		FROM game_stats
		WHERE user_id = ?`, userID).
		Scan(&stats.XP, &stats.Level, &stats.CurrentStreak, &stats.LongestStreak,
			&stats.TotalWorkouts, &stats.TotalVolumeKg, &stats.WeeklyXP, &weekStartStr)
	if errors.Is(err, sql.ErrNoRows) {
		return Stats{
			Level:         levelFor(0),
			WeekStartDate: isoWeekStart(now),
		}, nil
	}
	if err != nil {
		return Stats{}, fmt.Errorf("query game stats: %w", err)
	}

	if stats.WeekStartDate, err = time.Parse(dateFormat, weekStartStr); err != nil {
		return Stats{}, fmt.Errorf("parse week_start_date: %w", err)
	}

	if stats.AchievementIDs, err = r.loadUnlocked(ctx, userID); err != nil {
		return Stats{}, err
	}

	return stats, nil
}

func (r *sqliteRepository) loadUnlocked(ctx context.Context, userID int64) (_ []string, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT achievement_id
		FROM unlocked_achievements
		WHERE user_id = ?
		ORDER BY unlocked_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("query unlocked achievements: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan achievement id: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return ids, nil
}

// saveStats upserts the stats row outside any completion flow, used by the
// lazy weekly reset on reads.
func (r *sqliteRepository) saveStats(ctx context.Context, userID int64, stats Stats) error {
	if err := upsertStats(ctx, r.db.ReadWrite, userID, stats); err != nil {
		return fmt.Errorf("save game stats: %w", err)
	}
	return nil
}

// listWorkoutDates returns the dates of all completed workouts for a user.
func (r *sqliteRepository) listWorkoutDates(ctx context.Context, userID int64) (_ []time.Time, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT workout_date
		FROM workouts
		WHERE user_id = ?
		ORDER BY workout_date DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query workout dates: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var dates []time.Time
	for rows.Next() {
		var dateStr string
		if err = rows.Scan(&dateStr); err != nil {
			return nil, fmt.Errorf("scan workout date: %w", err)
		}
		date, parseErr := time.Parse(dateFormat, dateStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parse workout date: %w", parseErr)
		}
		dates = append(dates, date)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return dates, nil
}

// saveCompletion stores the workout, the updated stats, and new achievement
// unlocks in one transaction so a completion is applied fully or not at all.
func (r *sqliteRepository) saveCompletion(
	ctx context.Context,
	userID int64,
	workout Workout,
	result CompletionResult,
) (err error) {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			r.logger.LogAttrs(ctx, slog.LevelError, "rollback transaction", slog.Any("error", rollbackErr))
		}
	}(tx)

	insertResult, err := tx.ExecContext(ctx, `
		INSERT INTO workouts (user_id, workout_date, completed_at)
		VALUES (?, ?, ?)`,
		userID, workout.Date.Format(dateFormat), workout.CompletedAt.UTC().Format(timestampFormat))
	if err != nil {
		return fmt.Errorf("insert workout: %w", err)
	}
	workoutID, err := insertResult.LastInsertId()
	if err != nil {
		return fmt.Errorf("get workout id: %w", err)
	}

	for i, set := range workout.Sets {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO workout_sets (workout_id, set_number, exercise_name, weight_kg, reps)
			VALUES (?, ?, ?, ?, ?)`,
			workoutID, i+1, set.ExerciseName, set.WeightKg, set.Reps)
		if err != nil {
			return fmt.Errorf("insert workout set: %w", err)
		}
	}

	if err = upsertStats(ctx, tx, userID, result.Stats); err != nil {
		return fmt.Errorf("upsert game stats: %w", err)
	}

	unlockedAt := workout.CompletedAt.UTC().Format(timestampFormat)
	for _, achievement := range result.Unlocked {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO unlocked_achievements (user_id, achievement_id, unlocked_at)
			VALUES (?, ?, ?)
			ON CONFLICT (user_id, achievement_id) DO NOTHING`,
			userID, achievement.ID, unlockedAt)
		if err != nil {
			return fmt.Errorf("insert achievement unlock: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// execer covers both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertStats(ctx context.Context, db execer, userID int64, stats Stats) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO game_stats (
			user_id, xp, level, current_streak, longest_streak,
			total_workouts, total_volume_kg, weekly_xp, week_start_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			xp = excluded.xp,
			level = excluded.level,
			current_streak = excluded.current_streak,
			longest_streak = excluded.longest_streak,
			total_workouts = excluded.total_workouts,
			total_volume_kg = excluded.total_volume_kg,
			weekly_xp = excluded.weekly_xp,
			week_start_date = excluded.week_start_date`,
		userID, stats.XP, stats.Level, stats.CurrentStreak, stats.LongestStreak,
		stats.TotalWorkouts, stats.TotalVolumeKg, stats.WeeklyXP,
		stats.WeekStartDate.Format(dateFormat))
	if err != nil {
		return fmt.Errorf("upsert stats row: %w", err)
	}
	return nil
}
