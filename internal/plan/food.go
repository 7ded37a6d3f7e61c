package plan

import (
	"fmt"

	"trueiron/coach-app/internal/domain"
)

// DefaultGrams is the quantity given to a newly added food.
const DefaultGrams = 100

// AddFood appends a snapshot of item to meal with DefaultGrams.
// A food id may appear only once per meal.
func AddFood(food domain.FoodPlan, meal string, item *domain.FoodCatalogItem) (domain.FoodPlan, error) {
	if !domain.IsValidMeal(meal) {
		return food, fmt.Errorf("%w: %q", ErrInvalidMeal, meal)
	}
	out := cloneFood(food)
	for _, f := range out[meal] {
		if f.FoodID == item.ID {
			return food, ErrDuplicateFood
		}
	}
	out[meal] = append(out[meal], item.Snapshot(DefaultGrams))
	return out, nil
}

// SetGrams updates the grams of the entry at index in meal.
func SetGrams(food domain.FoodPlan, meal string, index int, grams float64) (domain.FoodPlan, error) {
	if grams < 0 {
		return food, ErrInvalidGrams
	}
	if index < 0 || index >= len(food[meal]) {
		return food, ErrIndexOutOfRange
	}
	out := cloneFood(food)
	out[meal][index].Grams = grams
	return out, nil
}

// RemoveFood removes the entry at index in meal. Meals left empty are dropped.
func RemoveFood(food domain.FoodPlan, meal string, index int) (domain.FoodPlan, error) {
	if index < 0 || index >= len(food[meal]) {
		return food, ErrIndexOutOfRange
	}
	out := cloneFood(food)
	items := out[meal]
	items = append(items[:index], items[index+1:]...)
	if len(items) == 0 {
		delete(out, meal)
	} else {
		out[meal] = items
	}
	return out, nil
}

func cloneFood(food domain.FoodPlan) domain.FoodPlan {
	out := make(domain.FoodPlan, len(food))
	for k, v := range food {
		out[k] = append([]domain.AssignedFood(nil), v...)
	}
	return out
}
