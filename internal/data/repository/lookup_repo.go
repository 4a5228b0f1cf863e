package repository

import (
	"context"
	"errors"
	"fmt"

	"resort-admin/internal/data/entity"
	"resort-admin/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// LookupRepository reads the meal plan and activity reference tables.
type LookupRepository interface {
	FindAvailableMealPlans(ctx context.Context) ([]*entity.MealPlan, error)
	FindMealPlanByID(ctx context.Context, id uuid.UUID) (*entity.MealPlan, error)
	FindAvailableActivities(ctx context.Context) ([]*entity.Activity, error)
	FindActivitiesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Activity, error)
}

type lookupRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLookupRepository(db database.PgxIface, log *zap.Logger) LookupRepository {
	return &lookupRepository{
		db:  db,
		log: log.With(zap.String("repository", "lookup")),
	}
}

func (r *lookupRepository) FindAvailableMealPlans(ctx context.Context) ([]*entity.MealPlan, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, price::float8, available
		FROM meal_plans
		WHERE available
		ORDER BY price ASC
	`)
	if err != nil {
		r.log.Error("Failed to find meal plans", zap.Error(err))
		return nil, fmt.Errorf("find meal plans: %w", err)
	}
	defer rows.Close()

	var plans []*entity.MealPlan
	for rows.Next() {
		var mp entity.MealPlan
		if err := rows.Scan(&mp.ID, &mp.Title, &mp.Description, &mp.Price, &mp.Available); err != nil {
			return nil, fmt.Errorf("scan meal plan row: %w", err)
		}
		plans = append(plans, &mp)
	}

	return plans, rows.Err()
}

func (r *lookupRepository) FindMealPlanByID(ctx context.Context, id uuid.UUID) (*entity.MealPlan, error) {
	var mp entity.MealPlan
	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, price::float8, available
		FROM meal_plans
		WHERE id = $1
	`, id).Scan(&mp.ID, &mp.Title, &mp.Description, &mp.Price, &mp.Available)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find meal plan", zap.Error(err), zap.String("meal_plan_id", id.String()))
		return nil, fmt.Errorf("find meal plan %s: %w", id, err)
	}

	return &mp, nil
}

func (r *lookupRepository) FindAvailableActivities(ctx context.Context) ([]*entity.Activity, error) {
	return r.findActivities(ctx, `
		SELECT id, title, description, price::float8, available
		FROM activities
		WHERE available
		ORDER BY price ASC
	`)
}

func (r *lookupRepository) FindActivitiesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Activity, error) {
	if len(ids) == 0 {
		return []*entity.Activity{}, nil
	}
	return r.findActivities(ctx, `
		SELECT id, title, description, price::float8, available
		FROM activities
		WHERE id = ANY($1)
	`, ids)
}

func (r *lookupRepository) findActivities(ctx context.Context, query string, args ...any) ([]*entity.Activity, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find activities", zap.Error(err))
		return nil, fmt.Errorf("find activities: %w", err)
	}
	defer rows.Close()

	var list []*entity.Activity
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Price, &a.Available); err != nil {
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		list = append(list, &a)
	}

	return list, rows.Err()
}
