package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dietlog-be/internal/cache"
	"dietlog-be/internal/entities"
	"dietlog-be/internal/metrics"
	"dietlog-be/internal/models"
	"dietlog-be/internal/repository"
)

const metricsCacheTTL = 5 * time.Minute

// MealService defines the interface for meal business logic
type MealService interface {
	Create(userID string, req *models.MealRequest) error
	Get(userID, id string) (*entities.Meal, error)
	List(userID string) ([]*entities.Meal, error)
	Update(userID, id string, req *models.MealRequest) error
	Delete(userID, id string) error
	Metrics(userID string) (*metrics.Summary, error)
}

type mealService struct {
	repo  repository.MealRepository
	cache cache.Cache
	ctx   context.Context
}

// NewMealService creates a new meal service
func NewMealService(repo repository.MealRepository, cacheClient cache.Cache) MealService {
	svc := &mealService{
		repo: repo,
		ctx:  context.Background(),
	}
	// Only set cache if provided (allows graceful degradation)
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

func metricsCacheKey(userID string) string {
	return fmt.Sprintf("metrics:user:%s", userID)
}

// invalidateMetrics drops the cached metrics after any write
func (s *mealService) invalidateMetrics(userID string) {
	if s.cache != nil {
		s.cache.Delete(s.ctx, metricsCacheKey(userID))
	}
}

// Create stores a new meal for the user. The event date is persisted as
// epoch milliseconds.
func (s *mealService) Create(userID string, req *models.MealRequest) error {
	_, err := s.repo.Create(
		uuid.New().String(),
		userID,
		req.Name,
		*req.Description,
		*req.IsOnDiet,
		req.Date.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to create meal: %w", err)
	}

	s.invalidateMetrics(userID)
	return nil
}

// Get fetches a single meal. A missing row is not an error: the caller
// renders it as a null meal.
func (s *mealService) Get(userID, id string) (*entities.Meal, error) {
	meal, err := s.repo.FindByID(id, userID)
	if err == repository.ErrMealNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return meal, nil
}

// List returns the user's meals in creation order
func (s *mealService) List(userID string) ([]*entities.Meal, error) {
	return s.repo.ListByUser(userID)
}

// Update replaces all four mutable fields of the meal. The write is
// synchronous: the caller only reports success once the row is
// persisted. Returns repository.ErrMealNotFound when the id does not
// exist for this user.
func (s *mealService) Update(userID, id string, req *models.MealRequest) error {
	err := s.repo.Update(
		id,
		userID,
		req.Name,
		*req.Description,
		*req.IsOnDiet,
		req.Date.UnixMilli(),
	)
	if err != nil {
		return err
	}

	s.invalidateMetrics(userID)
	return nil
}

// Delete removes the meal if present; absent ids are a no-op
func (s *mealService) Delete(userID, id string) error {
	if err := s.repo.Delete(id, userID); err != nil {
		return err
	}

	s.invalidateMetrics(userID)
	return nil
}

// Metrics computes the user's diet metrics over the full meal list in
// creation order, with a short-lived cache in front.
func (s *mealService) Metrics(userID string) (*metrics.Summary, error) {
	if s.cache != nil {
		var cached metrics.Summary
		if err := s.cache.GetJSON(s.ctx, metricsCacheKey(userID), &cached); err == nil {
			return &cached, nil
		}
	}

	meals, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	summary := metrics.Summarize(meals)

	if s.cache != nil {
		s.cache.SetJSON(s.ctx, metricsCacheKey(userID), summary, metricsCacheTTL)
	}

	return &summary, nil
}
