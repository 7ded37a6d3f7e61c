package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"trueiron/coach-app/internal/domain"
	"trueiron/coach-app/internal/repository"
)

// CatalogService manages the global food, workout and essentials catalogs.
type CatalogService interface {
	CreateFood(ctx context.Context, trainerID primitive.ObjectID, item domain.FoodCatalogItem) (*domain.FoodCatalogItem, error)
	ListFoods(ctx context.Context) ([]domain.FoodCatalogItem, error)
	DeleteFood(ctx context.Context, id primitive.ObjectID) error

	CreateWorkout(ctx context.Context, trainerID primitive.ObjectID, item domain.WorkoutCatalogItem) (*domain.WorkoutCatalogItem, error)
	ListWorkouts(ctx context.Context, muscle string) ([]domain.WorkoutCatalogItem, error)
	DeleteWorkout(ctx context.Context, id primitive.ObjectID) error

	CreateEssential(ctx context.Context, trainerID primitive.ObjectID, item domain.EssentialCatalogItem) (*domain.EssentialCatalogItem, error)
	ListEssentials(ctx context.Context) ([]domain.EssentialCatalogItem, error)
	DeleteEssential(ctx context.Context, id primitive.ObjectID) error
}

type catalogService struct {
	foodRepo      repository.FoodRepository
	workoutRepo   repository.WorkoutRepository
	essentialRepo repository.EssentialRepository
}

func NewCatalogService(
	foodRepo repository.FoodRepository,
	workoutRepo repository.WorkoutRepository,
	essentialRepo repository.EssentialRepository,
) CatalogService {
	return &catalogService{
		foodRepo:      foodRepo,
		workoutRepo:   workoutRepo,
		essentialRepo: essentialRepo,
	}
}

func (s *catalogService) CreateFood(ctx context.Context, trainerID primitive.ObjectID, item domain.FoodCatalogItem) (*domain.FoodCatalogItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return nil, validationError("food name is required")
	}
	if item.Protein < 0 || item.Carbs < 0 || item.Fat < 0 {
		return nil, validationError("macros cannot be negative")
	}
	item.CreatedBy = trainerID
	id, err := s.foodRepo.Create(ctx, &item)
	if err != nil {
		return nil, fmt.Errorf("create food: %w", err)
	}
	item.ID = id
	item.Calories = domain.DeriveCalories(item.Protein, item.Carbs, item.Fat)
	return &item, nil
}

func (s *catalogService) ListFoods(ctx context.Context) ([]domain.FoodCatalogItem, error) {
	foods, err := s.foodRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return foods, nil
}

func (s *catalogService) DeleteFood(ctx context.Context, id primitive.ObjectID) error {
	return mapDeleteErr(s.foodRepo.Delete(ctx, id), "food")
}

func (s *catalogService) CreateWorkout(ctx context.Context, trainerID primitive.ObjectID, item domain.WorkoutCatalogItem) (*domain.WorkoutCatalogItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.TargetMuscle = strings.ToLower(strings.TrimSpace(item.TargetMuscle))
	if item.Name == "" {
		return nil, validationError("workout name is required")
	}
	if !isMuscleGroup(item.TargetMuscle) {
		return nil, validationError("muscle must be one of %s", strings.Join(domain.MuscleGroups, ", "))
	}
	item.CreatedBy = trainerID
	id, err := s.workoutRepo.Create(ctx, &item)
	if err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}
	item.ID = id
	return &item, nil
}

func (s *catalogService) ListWorkouts(ctx context.Context, muscle string) ([]domain.WorkoutCatalogItem, error) {
	muscle = strings.ToLower(strings.TrimSpace(muscle))
	if muscle != "" && !isMuscleGroup(muscle) {
		return nil, validationError("unknown muscle group %q", muscle)
	}
	workouts, err := s.workoutRepo.List(ctx, muscle)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

func (s *catalogService) DeleteWorkout(ctx context.Context, id primitive.ObjectID) error {
	return mapDeleteErr(s.workoutRepo.Delete(ctx, id), "workout")
}

func (s *catalogService) CreateEssential(ctx context.Context, trainerID primitive.ObjectID, item domain.EssentialCatalogItem) (*domain.EssentialCatalogItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Dosage = strings.TrimSpace(item.Dosage)
	if item.Name == "" {
		return nil, validationError("essential name is required")
	}
	item.CreatedBy = trainerID
	id, err := s.essentialRepo.Create(ctx, &item)
	if err != nil {
		return nil, fmt.Errorf("create essential: %w", err)
	}
	item.ID = id
	return &item, nil
}

func (s *catalogService) ListEssentials(ctx context.Context) ([]domain.EssentialCatalogItem, error) {
	items, err := s.essentialRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list essentials: %w", err)
	}
	return items, nil
}

func (s *catalogService) DeleteEssential(ctx context.Context, id primitive.ObjectID) error {
	return mapDeleteErr(s.essentialRepo.Delete(ctx, id), "essential")
}

func mapDeleteErr(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrCatalogItemNotFound
	default:
		return fmt.Errorf("delete %s: %w", what, err)
	}
}

func isMuscleGroup(m string) bool {
	for _, g := range domain.MuscleGroups {
		if g == m {
			return true
		}
	}
	return false
}
