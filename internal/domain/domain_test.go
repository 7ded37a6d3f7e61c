package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClient_Age(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		dob  string
		want int
	}{
		{name: "NoDOB", dob: "", want: 0},
		{name: "Malformed", dob: "01/03/1990", want: 0},
		{name: "BirthdayToday", dob: "1990-03-01", want: 36},
		{name: "BirthdayTomorrow", dob: "1990-03-02", want: 35},
		{name: "LeapDayBirthday", dob: "2000-02-29", want: 26},
		{name: "Future", dob: "2027-01-01", want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Client{DOB: tc.dob}
			assert.Equal(t, tc.want, c.Age(now))
		})
	}
}

func TestFoodPlan_MealOrder(t *testing.T) {
	p := FoodPlan{
		"Snack":       nil,
		MealDinner:    {{Name: "Dal"}},
		"Aardvark":    nil,
		MealBreakfast: {{Name: "Oats"}},
	}
	assert.Equal(t, []string{MealBreakfast, MealDinner, "Aardvark", "Snack"}, p.MealOrder())
	assert.Empty(t, FoodPlan{}.MealOrder())
}

func TestEssentialsPlan_MealOrder(t *testing.T) {
	p := EssentialsPlan{
		MealLunch:     {{Name: "Fish Oil"}},
		MealBreakfast: {{Name: "Multivitamin", Dosage: "1 tab"}},
	}
	assert.Equal(t, []string{MealBreakfast, MealLunch}, p.MealOrder())
}

func TestAssignedEssential_Label(t *testing.T) {
	assert.Equal(t, "Creatine (5 g)", AssignedEssential{Name: "Creatine", Dosage: "5 g"}.Label())
	assert.Equal(t, "Creatine", AssignedEssential{Name: "Creatine"}.Label())
}

func TestFoodCatalogItem_Snapshot(t *testing.T) {
	f := &FoodCatalogItem{Name: "Rice", Protein: 2.7, Carbs: 28, Fat: 0.3}
	f.Calories = DeriveCalories(f.Protein, f.Carbs, f.Fat)

	s := f.Snapshot(150)
	assert.Equal(t, "Rice", s.Name)
	assert.Equal(t, 150.0, s.Grams)
	assert.InDelta(t, 125.5, s.Calories, 0.001)
	assert.True(t, IsValidMeal(MealLunch))
	assert.False(t, IsValidMeal("lunch"))
}
