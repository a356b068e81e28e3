package plan

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/marleybr/Treningsapp-sub000/internal/errors"
	"github.com/marleybr/Treningsapp-sub000/internal/sqlite"
)

// ErrNotFound is returned when no plan exists for the given id and user.
var ErrNotFound = errors.NewSentinel("training plan not found")

const timestampFormat = "2006-01-02T15:04:05.000Z"

// sqliteRepository persists training plans across the three plan tables.
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

// create stores a complete plan in one transaction.
func (r *sqliteRepository) create(ctx context.Context, userID int64, plan TrainingPlan) (err error) {
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

	_, err = tx.ExecContext(ctx, `
		INSERT INTO training_plans (id, user_id, name, goal, days_per_week, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		plan.ID, userID, plan.Name, string(plan.Goal), plan.DaysPerWeek,
		plan.CreatedAt.UTC().Format(timestampFormat))
	if err != nil {
		return fmt.Errorf("insert training plan: %w", err)
	}

	for _, day := range plan.Days {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO training_plan_days (plan_id, day_number, name)
			VALUES (?, ?, ?)`,
			plan.ID, day.DayNumber, day.Name)
		if err != nil {
			return fmt.Errorf("insert plan day %d: %w", day.DayNumber, err)
		}

		for i, exercise := range day.Exercises {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO training_plan_exercises (
					plan_id, day_number, position, name, sets, reps, rest_seconds
				) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				plan.ID, day.DayNumber, i+1,
				exercise.Name, exercise.Sets, exercise.Reps, exercise.RestSeconds)
			if err != nil {
				return fmt.Errorf("insert plan exercise: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// list retrieves all plans for a user, newest first.
func (r *sqliteRepository) list(ctx context.Context, userID int64) (_ []TrainingPlan, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, name, goal, days_per_week, created_at
		FROM training_plans
		WHERE user_id = ?
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query training plans: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var plans []TrainingPlan
	for rows.Next() {
		var (
			plan         TrainingPlan
			goalStr      string
			createdAtStr string
		)
		if err = rows.Scan(&plan.ID, &plan.Name, &goalStr, &plan.DaysPerWeek, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scan plan row: %w", err)
		}
		plan.Goal = Goal(goalStr)
		if plan.CreatedAt, err = time.Parse(timestampFormat, createdAtStr); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		if plan.Days, err = r.loadDays(ctx, plan.ID); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return plans, nil
}

// get retrieves one plan by id, scoped to the user.
func (r *sqliteRepository) get(ctx context.Context, userID int64, planID string) (TrainingPlan, error) {
	var (
		plan         TrainingPlan
		goalStr      string
		createdAtStr string
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, name, goal, days_per_week, created_at
		FROM training_plans
		WHERE user_id = ? AND id = ?`, userID, planID).
		Scan(&plan.ID, &plan.Name, &goalStr, &plan.DaysPerWeek, &createdAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrainingPlan{}, ErrNotFound
		}
		return TrainingPlan{}, fmt.Errorf("query training plan: %w", err)
	}

	plan.Goal = Goal(goalStr)
	if plan.CreatedAt, err = time.Parse(timestampFormat, createdAtStr); err != nil {
		return TrainingPlan{}, fmt.Errorf("parse created_at: %w", err)
	}
	if plan.Days, err = r.loadDays(ctx, plan.ID); err != nil {
		return TrainingPlan{}, err
	}

	return plan, nil
}

// delete removes a plan by id; days and exercises cascade.
func (r *sqliteRepository) delete(ctx context.Context, userID int64, planID string) error {
	result, err := r.db.ReadWrite.ExecContext(ctx, `
		DELETE FROM training_plans
		WHERE user_id = ? AND id = ?`, userID, planID)
	if err != nil {
		return fmt.Errorf("delete training plan: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// loadDays fetches a plan's days with their exercises in a single pass over
// a joined result set ordered by day and position.
func (r *sqliteRepository) loadDays(ctx context.Context, planID string) (_ []TrainingDay, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT d.day_number, d.name,
		       e.name, e.sets, e.reps, e.rest_seconds
		FROM training_plan_days d
		LEFT JOIN training_plan_exercises e
			ON e.plan_id = d.plan_id AND e.day_number = d.day_number
		WHERE d.plan_id = ?
		ORDER BY d.day_number, e.position`, planID)
	if err != nil {
		return nil, fmt.Errorf("query plan days: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var days []TrainingDay
	var current *TrainingDay
	for rows.Next() {
		var (
			dayNumber   int
			dayName     string
			name        sql.NullString
			sets        sql.NullInt32
			reps        sql.NullString
			restSeconds sql.NullInt32
		)
		if err = rows.Scan(&dayNumber, &dayName, &name, &sets, &reps, &restSeconds); err != nil {
			return nil, fmt.Errorf("scan plan day row: %w", err)
		}

		if current == nil || current.DayNumber != dayNumber {
			if current != nil {
				days = append(days, *current)
			}
			current = &TrainingDay{DayNumber: dayNumber, Name: dayName}
		}

		if name.Valid {
			current.Exercises = append(current.Exercises, PlannedExercise{
				Name:        name.String,
				Sets:        int(sets.Int32),
				Reps:        reps.String,
				RestSeconds: int(restSeconds.Int32),
			})
		}
	}
	if current != nil {
		days = append(days, *current)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return days, nil
}
