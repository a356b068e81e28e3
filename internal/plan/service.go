package plan

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/marleybr/Treningsapp-sub000/internal/catalog"
	"github.com/marleybr/Treningsapp-sub000/internal/contexthelpers"
	"github.com/marleybr/Treningsapp-sub000/internal/sqlite"
)

// Service handles the business logic for training plan management.
type Service struct {
	repo    *sqliteRepository
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewService creates a new training plan service backed by the built-in
// exercise catalog.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		repo:    newSQLiteRepository(db, logger),
		catalog: catalog.Default(),
		logger:  logger,
	}
}

// Generate creates a new plan from the given configuration and persists it
// for the authenticated user. Each call draws a fresh rng so regeneration
// produces a different plan for the same configuration.
func (s *Service) Generate(ctx context.Context, raw Config) (TrainingPlan, error) {
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	plan := Generate(raw, s.catalog, rng)

	userID := contexthelpers.UserID(ctx)
	if err := s.repo.create(ctx, userID, plan); err != nil {
		return TrainingPlan{}, fmt.Errorf("persist training plan: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "generated training plan",
		slog.String("plan_id", plan.ID),
		slog.String("goal", string(plan.Goal)),
		slog.Int("days_per_week", plan.DaysPerWeek))

	return plan, nil
}

// List retrieves the authenticated user's plans, newest first.
func (s *Service) List(ctx context.Context) ([]TrainingPlan, error) {
	plans, err := s.repo.list(ctx, contexthelpers.UserID(ctx))
	if err != nil {
		return nil, fmt.Errorf("list training plans: %w", err)
	}
	return plans, nil
}

// Get retrieves one plan by id. Returns ErrNotFound when the plan does not
// exist or belongs to another user.
func (s *Service) Get(ctx context.Context, planID string) (TrainingPlan, error) {
	plan, err := s.repo.get(ctx, contexthelpers.UserID(ctx), planID)
	if err != nil {
		return TrainingPlan{}, fmt.Errorf("get training plan %s: %w", planID, err)
	}
	return plan, nil
}

// Delete removes a plan by id. Returns ErrNotFound when the plan does not
// exist or belongs to another user.
func (s *Service) Delete(ctx context.Context, planID string) error {
	if err := s.repo.delete(ctx, contexthelpers.UserID(ctx), planID); err != nil {
		return fmt.Errorf("delete training plan %s: %w", planID, err)
	}
	return nil
}
