package service

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"trueiron/coach-app/internal/domain"
	"trueiron/coach-app/internal/metrics"
	"trueiron/coach-app/internal/plan"
	"trueiron/coach-app/internal/report"
	"trueiron/coach-app/internal/repository"
)

// PlanSummary is the aggregate view of a client's plan.
type PlanSummary struct {
	Revision        int64                     `json:"revision"`
	Totals          plan.Nutrients            `json:"totals"`
	Meals           map[string]plan.Nutrients `json:"meals"`
	WorkoutsPerDay  map[string]int            `json:"workoutsPerDay"`
	EssentialsCount int                       `json:"essentialsCount"`
	BMI             string                    `json:"bmi"`
}

// PlanService edits a client's plan. Every mutation is a read-modify-write of
// the whole plan. When expectedRevision is given the write only succeeds if
// nobody else wrote in between (ErrPlanConflict); when nil, the last write wins.
type PlanService interface {
	GetPlan(ctx context.Context, trainerID, clientID primitive.ObjectID) (*domain.Plan, error)
	ReplacePlan(ctx context.Context, trainerID, clientID primitive.ObjectID, p domain.Plan, expectedRevision *int64) (*domain.Plan, error)
	Summary(ctx context.Context, trainerID, clientID primitive.ObjectID) (*PlanSummary, error)

	AddFood(ctx context.Context, trainerID, clientID primitive.ObjectID, meal string, foodID primitive.ObjectID, expectedRevision *int64) (*domain.Plan, error)
	SetFoodGrams(ctx context.Context, trainerID, clientID primitive.ObjectID, meal string, index int, grams float64, expectedRevision *int64) (*domain.Plan, error)
	RemoveFood(ctx context.Context, trainerID, clientID primitive.ObjectID, meal string, index int, expectedRevision *int64) (*domain.Plan, error)

	ToggleWorkout(ctx context.Context, trainerID, clientID primitive.ObjectID, day string, workoutID primitive.ObjectID, muscle string, expectedRevision *int64) (*domain.Plan, error)
	UpdateWorkout(ctx context.Context, trainerID, clientID primitive.ObjectID, day string, workoutID primitive.ObjectID, sets, reps int, expectedRevision *int64) (*domain.Plan, error)

	AddEssential(ctx context.Context, trainerID, clientID primitive.ObjectID, meal, name, dosage string, expectedRevision *int64) (*domain.Plan, error)
	RemoveEssential(ctx context.Context, trainerID, clientID primitive.ObjectID, meal string, index int, expectedRevision *int64) (*domain.Plan, error)
}

type planService struct {
	clientRepo  repository.ClientRepository
	foodRepo    repository.FoodRepository
	workoutRepo repository.WorkoutRepository
	metrics     *metrics.Manager
}

func NewPlanService(
	clientRepo repository.ClientRepository,
	foodRepo repository.FoodRepository,
	workoutRepo repository.WorkoutRepository,
	metricsManager *metrics.Manager,
) PlanService {
	return &planService{
		clientRepo:  clientRepo,
		foodRepo:    foodRepo,
		workoutRepo: workoutRepo,
		metrics:     metricsManager,
	}
}

func (s *planService) GetPlan(ctx context.Context, trainerID, clientID primitive.ObjectID) (*domain.Plan, error) {
	client, err := loadManagedClient(ctx, s.clientRepo, trainerID, clientID)
	if err != nil {
		return nil, err
	}
	return &client.Plan, nil
}

func (s *planService) ReplacePlan(ctx context.Context, trainerID, clientID primitive.ObjectID, p domain.Plan, expectedRevision *int64) (*domain.Plan, error) {
	if err := validatePlan(p); err != nil {
		return nil, err
	}
	return s.mutate(ctx, trainerID, clientID, expectedRevision, func(cur *domain.Plan) error {
		cur.Food, cur.Workout, cur.Essentials = p.Food, p.Workout, p.Essentials
		return nil
	})
}

func (s *planService) Summary(ctx context.Context, trainerID, clientID primitive.ObjectID) (*PlanSummary, error) {
	client, err := loadManagedClient(ctx, s.clientRepo, trainerID, clientID)
	if err != nil {
		return nil, err
	}
	p := client.Plan
	sum := &PlanSummary{
		Revision:       p.Revision,
		Totals:         plan.Aggregate(p.Food),
		Meals:          make(map[string]plan.Nutrients, len(p.Food)),
		WorkoutsPerDay: make(map[string]int, len(p.Workout)),
		BMI:            report.FormatBMI(client.HeightCM, client.WeightKG),
	}
	for meal, items := range p.Food {
		sum.Meals[meal] = plan.MealTotals(items).Rounded()
	}
	for day, items := range p.Workout {
		sum.WorkoutsPerDay[day] = len(items)
	}
	sum.EssentialsCount = len(plan.FlattenEssentials(p.Essentials))
	return sum, nil
}

func (s *planService) AddFood(ctx context.Context, trainerID, clientID primitive.ObjectID, meal string, foodID primitive.ObjectID, expectedRevision *int64) (*domain.Plan, error) {
	item, err := s.foodRepo.GetByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCatalogItemNotFound
		}
		return nil, fmt.Errorf("get food: %w", err)
	}
	return s.mutate(ctx, trainerID, clientID, expectedRevision, func(cur *domain.Plan) (err error) {
		cur.Food, err = plan.AddFood(cur.Food, meal, item)
		return err
	})
}

func (s *planService) SetFoodGrams(ctx context.Context, trainerID, clientID primitive.ObjectID, meal string, index int, grams float64, expectedRevision *int64) (*domain.Plan, error) {
	return s.mutate(ctx, trainerID, clientID, expectedRevision, func(cur *domain.Plan) (err error) {
		cur.Food, err = plan.SetGrams(cur.Food, meal, index, grams)
		return err
	})
}

func (s *planService) RemoveFood(ctx context.Context, trainerID, clientID primitive.ObjectID, meal string, index int, expectedRevision *int64) (*domain.Plan, error) {
	return s.mutate(ctx, trainerID, clientID, expectedRevision, func(cur *domain.Plan) (err error) {
		cur.Food, err = plan.RemoveFood(cur.Food, meal, index)
		return err
	})
}

func (s *planService) ToggleWorkout(ctx context.Context, trainerID, clientID primitive.ObjectID, day string, workoutID primitive.ObjectID, muscle string, expectedRevision *int64) (*domain.Plan, error) {
	item, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCatalogItemNotFound
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}
	return s.mutate(ctx, trainerID, clientID, expectedRevision, func(cur *domain.Plan) (err error) {
		cur.Workout, _, err = plan.ToggleWorkout(cur.Workout, day, item, muscle)
		return err
	})
}

func (s *planService) UpdateWorkout(ctx context.Context, trainerID, clientID primitive.ObjectID, day string, workoutID primitive.ObjectID, sets, reps int, expectedRevision *int64) (*domain.Plan, error) {
	return s.mutate(ctx, trainerID, clientID, expectedRevision, func(cur *domain.Plan) (err error) {
		cur.Workout, err = plan.UpdateSetsReps(cur.Workout, day, workoutID, sets, reps)
		return err
	})
}

func (s *planService) AddEssential(ctx context.Context, trainerID, clientID primitive.ObjectID, meal, name, dosage string, expectedRevision *int64) (*domain.Plan, error) {
	return s.mutate(ctx, trainerID, clientID, expectedRevision, func(cur *domain.Plan) (err error) {
		cur.Essentials, err = plan.AddEssential(cur.Essentials, meal, name, dosage)
		return err
	})
}

func (s *planService) RemoveEssential(ctx context.Context, trainerID, clientID primitive.ObjectID, meal string, index int, expectedRevision *int64) (*domain.Plan, error) {
	return s.mutate(ctx, trainerID, clientID, expectedRevision, func(cur *domain.Plan) (err error) {
		cur.Essentials, err = plan.RemoveEssential(cur.Essentials, meal, index)
		return err
	})
}

// mutate loads the client's plan, applies edit and writes the whole plan back.
// Errors from edit are validation errors; nothing is written.
func (s *planService) mutate(ctx context.Context, trainerID, clientID primitive.ObjectID, expectedRevision *int64, edit func(*domain.Plan) error) (*domain.Plan, error) {
	client, err := loadManagedClient(ctx, s.clientRepo, trainerID, clientID)
	if err != nil {
		return nil, err
	}
	if expectedRevision != nil && *expectedRevision != client.Plan.Revision {
		s.metrics.CounterPlanConflicts.Inc()
		return nil, ErrPlanConflict
	}

	next := client.Plan
	if err := edit(&next); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	rev, err := s.clientRepo.UpdatePlan(ctx, clientID, next, expectedRevision)
	switch {
	case errors.Is(err, repository.ErrConflict):
		s.metrics.CounterPlanConflicts.Inc()
		return nil, ErrPlanConflict
	case errors.Is(err, repository.ErrNotFound):
		return nil, ErrClientNotFound
	case err != nil:
		log.WithField("client_id", clientID.Hex()).Errorf("update plan: %s", err)
		return nil, fmt.Errorf("update plan: %w", err)
	}
	next.Revision = rev
	return &next, nil
}

func validatePlan(p domain.Plan) error {
	for meal, items := range p.Food {
		if !domain.IsValidMeal(meal) {
			return validationError("invalid meal %q", meal)
		}
		seen := make(map[primitive.ObjectID]bool, len(items))
		for _, it := range items {
			if it.Grams < 0 {
				return validationError("grams must not be negative (%s)", it.Name)
			}
			if seen[it.FoodID] {
				return validationError("food %s appears twice in %s", it.Name, meal)
			}
			seen[it.FoodID] = true
		}
	}
	for day, items := range p.Workout {
		if !plan.ValidDay(day) {
			return validationError("invalid day %q", day)
		}
		seen := make(map[primitive.ObjectID]bool, len(items))
		for _, it := range items {
			if it.Sets <= 0 || it.Reps <= 0 {
				return validationError("sets and reps must be positive (%s)", it.Name)
			}
			if seen[it.WorkoutID] {
				return validationError("workout %s appears twice on %s", it.Name, day)
			}
			seen[it.WorkoutID] = true
		}
	}
	for meal, items := range p.Essentials {
		if !domain.IsValidMeal(meal) {
			return validationError("invalid meal %q", meal)
		}
		var check domain.EssentialsPlan
		for _, it := range items {
			var err error
			if check, err = plan.AddEssential(check, meal, it.Name, it.Dosage); err != nil {
				return validationError("%s: %s", meal, err)
			}
		}
	}
	return nil
}
