package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EssentialCatalogItem is a supplement or medication that can be assigned per meal.
type EssentialCatalogItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Dosage    string             `bson:"dosage,omitempty" json:"dosage,omitempty"`
	CreatedBy primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// AssignedEssential is the snapshot stored in a client's plan.
type AssignedEssential struct {
	Name   string `bson:"name" json:"name"`
	Dosage string `bson:"dosage,omitempty" json:"dosage,omitempty"`
}

// Label renders "Name (dosage)" or just the name.
func (e AssignedEssential) Label() string {
	if e.Dosage == "" {
		return e.Name
	}
	return e.Name + " (" + e.Dosage + ")"
}

// EssentialsPlan maps a meal label to its ordered essentials.
type EssentialsPlan map[string][]AssignedEssential

// MealOrder returns the meal keys in display order, see FoodPlan.MealOrder.
func (p EssentialsPlan) MealOrder() []string {
	return orderedKeys(p, Meals)
}
