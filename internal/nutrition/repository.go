package nutrition

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/marleybr/Treningsapp-sub000/internal/errors"
	"github.com/marleybr/Treningsapp-sub000/internal/sqlite"
)

const dateFormat = time.DateOnly

// sqliteRepository persists user profiles.
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

// getProfile loads the user's profile. A user without a row gets the schema
// defaults so targets can always be computed.
func (r *sqliteRepository) getProfile(ctx context.Context, userID int64) (Profile, error) {
	var (
		profile        Profile
		birthDateStr   sql.NullString
		customCalories sql.NullInt64
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT gender, weight_kg, height_cm, birth_date,
		       activity_level, fitness_goal, custom_calories
		FROM profiles
		WHERE user_id = ?`, userID).
		Scan(&profile.Gender, &profile.WeightKg, &profile.HeightCm, &birthDateStr,
			&profile.ActivityLevel, &profile.FitnessGoal, &customCalories)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{
			Gender:        GenderMale,
			ActivityLevel: ActivityModerate,
			FitnessGoal:   GoalMaintain,
		}, nil
	}
	if err != nil {
		return Profile{}, fmt.Errorf("query profile: %w", err)
	}

	if birthDateStr.Valid {
		birthDate, parseErr := time.Parse(dateFormat, birthDateStr.String)
		if parseErr != nil {
			return Profile{}, fmt.Errorf("parse birth_date: %w", parseErr)
		}
		profile.BirthDate = &birthDate
	}
	if customCalories.Valid {
		calories := int(customCalories.Int64)
		profile.CustomCalories = &calories
	}

	return profile, nil
}

// saveProfile upserts the user's profile.
func (r *sqliteRepository) saveProfile(ctx context.Context, userID int64, profile Profile) error {
	var birthDateStr any
	if profile.BirthDate != nil {
		birthDateStr = profile.BirthDate.Format(dateFormat)
	}
	var customCalories any
	if profile.CustomCalories != nil {
		customCalories = *profile.CustomCalories
	}

	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO profiles (
			user_id, gender, weight_kg, height_cm, birth_date,
			activity_level, fitness_goal, custom_calories
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			gender = excluded.gender,
			weight_kg = excluded.weight_kg,
			height_cm = excluded.height_cm,
			birth_date = excluded.birth_date,
			activity_level = excluded.activity_level,
			fitness_goal = excluded.fitness_goal,
			custom_calories = excluded.custom_calories`,
		userID, string(profile.Gender), profile.WeightKg, profile.HeightCm, birthDateStr,
		string(profile.ActivityLevel), string(profile.FitnessGoal), customCalories)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	return nil
}
