package domain

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fixed meal labels, in display order.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
)

// Meals lists the valid meal labels in display order.
var Meals = []string{MealBreakfast, MealLunch, MealDinner}

// IsValidMeal reports whether meal is one of the fixed meal labels.
func IsValidMeal(meal string) bool {
	for _, m := range Meals {
		if m == meal {
			return true
		}
	}
	return false
}

// FoodCatalogItem is a catalog entry. Macro values are per 100 g.
type FoodCatalogItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	Protein   float64            `bson:"protein" json:"protein"`
	Carbs     float64            `bson:"carbs" json:"carbs"`
	Fat       float64            `bson:"fat" json:"fat"`
	Calories  float64            `bson:"calories" json:"calories"` // Derived, see DeriveCalories
	CreatedBy primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// DeriveCalories returns protein×4 + carbs×4 + fat×9.
func DeriveCalories(protein, carbs, fat float64) float64 {
	return protein*4 + carbs*4 + fat*9
}

// Snapshot copies the catalog values into a plan entry with the given gram quantity.
func (f *FoodCatalogItem) Snapshot(grams float64) AssignedFood {
	return AssignedFood{
		FoodID:   f.ID,
		Name:     f.Name,
		Category: f.Category,
		Protein:  f.Protein,
		Carbs:    f.Carbs,
		Fat:      f.Fat,
		Calories: f.Calories,
		Grams:    grams,
	}
}

// AssignedFood is a frozen copy of a catalog item plus the assigned grams.
type AssignedFood struct {
	FoodID   primitive.ObjectID `bson:"foodId" json:"foodId"`
	Name     string             `bson:"name" json:"name"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`
	Protein  float64            `bson:"protein,omitempty" json:"protein,omitempty"`
	Carbs    float64            `bson:"carbs,omitempty" json:"carbs,omitempty"`
	Fat      float64            `bson:"fat,omitempty" json:"fat,omitempty"`
	Calories float64            `bson:"calories,omitempty" json:"calories,omitempty"`
	Grams    float64            `bson:"grams" json:"grams"`
}

// FoodPlan maps a meal label to its ordered food entries.
type FoodPlan map[string][]AssignedFood

// MealOrder returns the meal keys present in the plan: the fixed meals first, in
// display order, then any other keys sorted.
func (p FoodPlan) MealOrder() []string {
	return orderedKeys(p, Meals)
}

func orderedKeys[V any](m map[string]V, fixed []string) []string {
	keys := make([]string, 0, len(m))
	seen := make(map[string]bool, len(fixed))
	for _, k := range fixed {
		seen[k] = true
		if _, ok := m[k]; ok {
			keys = append(keys, k)
		}
	}
	var rest []string
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
