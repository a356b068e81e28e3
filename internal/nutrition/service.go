package nutrition

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/marleybr/Treningsapp-sub000/internal/contexthelpers"
	"github.com/marleybr/Treningsapp-sub000/internal/errors"
	"github.com/marleybr/Treningsapp-sub000/internal/sqlite"
)

// ErrInvalidProfile is returned when a profile update fails validation.
var ErrInvalidProfile = errors.NewSentinel("invalid profile")

// Service handles the business logic for profiles and nutrition targets.
type Service struct {
	repo   *sqliteRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new nutrition service.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		repo:   newSQLiteRepository(db, logger),
		logger: logger,
		now:    time.Now,
	}
}

// Profile returns the user's profile, falling back to defaults for users
// that never saved one.
func (s *Service) Profile(ctx context.Context) (Profile, error) {
	profile, err := s.repo.getProfile(ctx, contexthelpers.UserID(ctx))
	if err != nil {
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// SaveProfile validates and stores the user's profile.
func (s *Service) SaveProfile(ctx context.Context, profile Profile) error {
	if err := validateProfile(profile); err != nil {
		return err
	}
	if err := s.repo.saveProfile(ctx, contexthelpers.UserID(ctx), profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Targets computes the user's current nutrition targets from the stored
// profile.
func (s *Service) Targets(ctx context.Context) (Targets, error) {
	profile, err := s.repo.getProfile(ctx, contexthelpers.UserID(ctx))
	if err != nil {
		return Targets{}, fmt.Errorf("get profile: %w", err)
	}
	return ComputeTargets(profile, s.now()), nil
}

func validateProfile(profile Profile) error {
	switch profile.Gender {
	case GenderMale, GenderFemale:
	default:
		return errors.Wrap(ErrInvalidProfile, "unknown gender",
			slog.String("gender", string(profile.Gender)))
	}

	if profile.WeightKg < 0 || profile.WeightKg > 500 {
		return errors.Wrap(ErrInvalidProfile, "weight out of range",
			slog.Float64("weight_kg", profile.WeightKg))
	}
	if profile.HeightCm < 0 || profile.HeightCm > 300 {
		return errors.Wrap(ErrInvalidProfile, "height out of range",
			slog.Float64("height_cm", profile.HeightCm))
	}

	switch profile.ActivityLevel {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
	default:
		return errors.Wrap(ErrInvalidProfile, "unknown activity level",
			slog.String("activity_level", string(profile.ActivityLevel)))
	}

	switch profile.FitnessGoal {
	case GoalLoseWeight, GoalMaintain, GoalBuildMuscle, GoalImproveFitness:
	default:
		return errors.Wrap(ErrInvalidProfile, "unknown fitness goal",
			slog.String("fitness_goal", string(profile.FitnessGoal)))
	}

	if profile.CustomCalories != nil && *profile.CustomCalories < 0 {
		return errors.Wrap(ErrInvalidProfile, "negative custom calories",
			slog.Int("custom_calories", *profile.CustomCalories))
	}

	return nil
}
