package usecase

import (
	"context"
	"fmt"

	"resort-admin/internal/data/repository"
	"resort-admin/internal/dto/response"

	"go.uber.org/zap"
)

// LookupService serves the small reference lists used by booking forms.
type LookupService interface {
	GetMealPlans(ctx context.Context) ([]response.MealPlanResponse, error)
	GetActivities(ctx context.Context) ([]response.ActivityResponse, error)
}

type lookupService struct {
	repo repository.LookupRepository
	log  *zap.Logger
}

func NewLookupService(repo repository.LookupRepository, log *zap.Logger) LookupService {
	return &lookupService{
		repo: repo,
		log:  log.With(zap.String("service", "lookup")),
	}
}

func (s *lookupService) GetMealPlans(ctx context.Context) ([]response.MealPlanResponse, error) {
	plans, err := s.repo.FindAvailableMealPlans(ctx)
	if err != nil {
		s.log.Error("Failed to get meal plans", zap.Error(err))
		return nil, fmt.Errorf("get meal plans: %w", err)
	}

	data := make([]response.MealPlanResponse, 0, len(plans))
	for _, mp := range plans {
		data = append(data, response.MealPlanToResponse(mp))
	}
	return data, nil
}

func (s *lookupService) GetActivities(ctx context.Context) ([]response.ActivityResponse, error) {
	activities, err := s.repo.FindAvailableActivities(ctx)
	if err != nil {
		s.log.Error("Failed to get activities", zap.Error(err))
		return nil, fmt.Errorf("get activities: %w", err)
	}

	data := make([]response.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		data = append(data, response.ActivityToResponse(a))
	}
	return data, nil
}
