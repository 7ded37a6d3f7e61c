package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"trueiron/coach-app/internal/domain"
	"trueiron/coach-app/internal/repository"
	repomocks "trueiron/coach-app/internal/repository/mocks"
	"trueiron/coach-app/internal/service"
)

func newCatalogService(t *testing.T) (service.CatalogService, *repomocks.MockFoodRepository, *repomocks.MockWorkoutRepository, *repomocks.MockEssentialRepository) {
	ctrl := gomock.NewController(t)
	foods := repomocks.NewMockFoodRepository(ctrl)
	workouts := repomocks.NewMockWorkoutRepository(ctrl)
	essentials := repomocks.NewMockEssentialRepository(ctrl)
	return service.NewCatalogService(foods, workouts, essentials), foods, workouts, essentials
}

func TestCatalogService_CreateFood(t *testing.T) {
	catalog, foods, _, _ := newCatalogService(t)
	trainerID := primitive.NewObjectID()
	id := primitive.NewObjectID()

	foods.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f *domain.FoodCatalogItem) (primitive.ObjectID, error) {
			assert.Equal(t, "Chicken Breast", f.Name)
			assert.Equal(t, trainerID, f.CreatedBy)
			return id, nil
		})

	item, err := catalog.CreateFood(context.Background(), trainerID, domain.FoodCatalogItem{
		Name: " Chicken Breast ", Protein: 31, Carbs: 0, Fat: 3.6,
	})
	require.NoError(t, err)
	assert.Equal(t, id, item.ID)
	assert.InDelta(t, 156.4, item.Calories, 1e-9)
}

func TestCatalogService_CreateFood_Validation(t *testing.T) {
	catalog, _, _, _ := newCatalogService(t)

	_, err := catalog.CreateFood(context.Background(), primitive.NewObjectID(), domain.FoodCatalogItem{Name: "  "})
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = catalog.CreateFood(context.Background(), primitive.NewObjectID(), domain.FoodCatalogItem{Name: "X", Fat: -1})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestCatalogService_Workouts(t *testing.T) {
	catalog, _, workouts, _ := newCatalogService(t)

	_, err := catalog.CreateWorkout(context.Background(), primitive.NewObjectID(), domain.WorkoutCatalogItem{Name: "Curl", TargetMuscle: "biceps"})
	assert.ErrorIs(t, err, service.ErrValidation)

	workouts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(primitive.NewObjectID(), nil)
	item, err := catalog.CreateWorkout(context.Background(), primitive.NewObjectID(), domain.WorkoutCatalogItem{Name: "Curl", TargetMuscle: " Arms"})
	require.NoError(t, err)
	assert.Equal(t, "arms", item.TargetMuscle)

	workouts.EXPECT().List(gomock.Any(), "legs").Return([]domain.WorkoutCatalogItem{{Name: "Squat"}}, nil)
	list, err := catalog.ListWorkouts(context.Background(), "LEGS")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = catalog.ListWorkouts(context.Background(), "neck")
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestCatalogService_Delete(t *testing.T) {
	catalog, foods, workouts, essentials := newCatalogService(t)
	id := primitive.NewObjectID()

	foods.EXPECT().Delete(gomock.Any(), id).Return(nil)
	workouts.EXPECT().Delete(gomock.Any(), id).Return(repository.ErrNotFound)
	essentials.EXPECT().Delete(gomock.Any(), id).Return(repository.ErrNotFound)

	assert.NoError(t, catalog.DeleteFood(context.Background(), id))
	assert.ErrorIs(t, catalog.DeleteWorkout(context.Background(), id), service.ErrCatalogItemNotFound)
	assert.ErrorIs(t, catalog.DeleteEssential(context.Background(), id), service.ErrCatalogItemNotFound)
}

func TestCatalogService_CreateEssential(t *testing.T) {
	catalog, _, _, essentials := newCatalogService(t)

	_, err := catalog.CreateEssential(context.Background(), primitive.NewObjectID(), domain.EssentialCatalogItem{Dosage: "5g"})
	assert.ErrorIs(t, err, service.ErrValidation)

	essentials.EXPECT().Create(gomock.Any(), gomock.Any()).Return(primitive.NewObjectID(), nil)
	item, err := catalog.CreateEssential(context.Background(), primitive.NewObjectID(), domain.EssentialCatalogItem{Name: "Creatine ", Dosage: " 5g"})
	require.NoError(t, err)
	assert.Equal(t, "Creatine", item.Name)
	assert.Equal(t, "5g", item.Dosage)
}
