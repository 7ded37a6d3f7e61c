package plan_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"trueiron/coach-app/internal/domain"
	"trueiron/coach-app/internal/plan"
)

func TestDeriveCalories(t *testing.T) {
	assert.Equal(t, 4*10+4*20+9*5.0, domain.DeriveCalories(10, 20, 5))
	assert.Zero(t, domain.DeriveCalories(0, 0, 0))
}

func TestScaled(t *testing.T) {
	item := domain.AssignedFood{Calories: 200, Protein: 10, Carbs: 30, Fat: 4, Grams: 150}
	got := plan.Scaled(item)
	assert.InDelta(t, 300, got.Calories, 1e-9)
	assert.InDelta(t, 15, got.Protein, 1e-9)
	assert.InDelta(t, 45, got.Carbs, 1e-9)
	assert.InDelta(t, 6, got.Fat, 1e-9)

	item.Grams = 0
	assert.Equal(t, plan.Nutrients{}, plan.Scaled(item))
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name string
		food domain.FoodPlan
		want plan.Nutrients
	}{
		{
			name: "empty plan",
			food: domain.FoodPlan{},
			want: plan.Nutrients{},
		},
		{
			name: "single item at 100g",
			food: domain.FoodPlan{
				domain.MealBreakfast: {{Name: "Oats", Calories: 389, Protein: 16.9, Carbs: 66.3, Fat: 6.9, Grams: 100}},
			},
			want: plan.Nutrients{Calories: 389, Protein: 16.9, Carbs: 66.3, Fat: 6.9},
		},
		{
			name: "rounding across meals",
			food: domain.FoodPlan{
				domain.MealBreakfast: {{Name: "Egg", Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, Grams: 55}},
				domain.MealLunch:     {{Name: "Rice", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Grams: 250}},
			},
			// 85.25 + 325, 7.15 + 6.75, 0.605 + 70, 6.05 + 0.75
			want: plan.Nutrients{Calories: 410, Protein: 13.9, Carbs: 70.6, Fat: 6.8},
		},
		{
			name: "missing macros count as zero",
			food: domain.FoodPlan{
				domain.MealDinner: {{Name: "Mystery", Grams: 300}},
			},
			want: plan.Nutrients{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, plan.Aggregate(tt.food))
		})
	}
}

func TestAggregateLinearInGrams(t *testing.T) {
	item := domain.AssignedFood{Calories: 120, Protein: 8, Carbs: 12, Fat: 4, Grams: 100}
	base := plan.Aggregate(domain.FoodPlan{domain.MealLunch: {item}})
	item.Grams = 200
	doubled := plan.Aggregate(domain.FoodPlan{domain.MealLunch: {item}})

	assert.Equal(t, 2*base.Calories, doubled.Calories)
	assert.Equal(t, 2*base.Protein, doubled.Protein)
}

func TestAggregateIndependentOfMealInsertionOrder(t *testing.T) {
	gofakeit.Seed(42)
	items := func() []domain.AssignedFood {
		var out []domain.AssignedFood
		for i := 0; i < 4; i++ {
			out = append(out, domain.AssignedFood{
				FoodID:   primitive.NewObjectID(),
				Name:     gofakeit.Fruit(),
				Calories: gofakeit.Float64Range(10, 500),
				Protein:  gofakeit.Float64Range(0, 40),
				Carbs:    gofakeit.Float64Range(0, 80),
				Fat:      gofakeit.Float64Range(0, 30),
				Grams:    gofakeit.Float64Range(0, 400),
			})
		}
		return out
	}
	b, l, d := items(), items(), items()

	first := domain.FoodPlan{}
	first[domain.MealBreakfast] = b
	first[domain.MealLunch] = l
	first[domain.MealDinner] = d

	second := domain.FoodPlan{}
	second[domain.MealDinner] = d
	second[domain.MealLunch] = l
	second[domain.MealBreakfast] = b

	require.Equal(t, plan.Aggregate(first), plan.Aggregate(second))
	require.Equal(t, plan.Aggregate(first), plan.Aggregate(first))
}
