// Package plan holds the pure plan logic: nutrition aggregation and the
// food, workout and essentials edit operations applied to a client's plan.
package plan

import (
	"math"

	"trueiron/coach-app/internal/domain"
)

// Nutrients is a calorie and macro quadruple.
type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (n Nutrients) add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
	}
}

// Rounded returns calories rounded to whole units and macros to one decimal.
func (n Nutrients) Rounded() Nutrients {
	return Nutrients{
		Calories: math.Round(n.Calories),
		Protein:  round1(n.Protein),
		Carbs:    round1(n.Carbs),
		Fat:      round1(n.Fat),
	}
}

// Scaled returns the item's nutrients for its assigned grams (base values are per 100 g).
func Scaled(item domain.AssignedFood) Nutrients {
	f := item.Grams / 100
	return Nutrients{
		Calories: item.Calories * f,
		Protein:  item.Protein * f,
		Carbs:    item.Carbs * f,
		Fat:      item.Fat * f,
	}
}

// Aggregate sums the scaled nutrients of every item of every meal and rounds the result.
// Meals are visited in MealOrder so the sum is reproducible.
func Aggregate(food domain.FoodPlan) Nutrients {
	var total Nutrients
	for _, meal := range food.MealOrder() {
		total = total.add(MealTotals(food[meal]))
	}
	return total.Rounded()
}

// MealTotals sums the scaled nutrients of one meal without rounding.
func MealTotals(items []domain.AssignedFood) Nutrients {
	var total Nutrients
	for _, it := range items {
		total = total.add(Scaled(it))
	}
	return total
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
