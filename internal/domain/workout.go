package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Muscle groups used to categorize catalog workouts.
var MuscleGroups = []string{"chest", "back", "shoulders", "legs", "arms", "core"}

// MuscleOther is the group for workouts without a stored muscle.
const MuscleOther = "Other"

// Plan days run from "Day 1" to "Day <MaxPlanDays>".
const MaxPlanDays = 6

// WorkoutCatalogItem is a catalog exercise definition.
type WorkoutCatalogItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	TargetMuscle string             `bson:"muscle" json:"muscle"` // One of MuscleGroups
	Equipment    string             `bson:"equipment,omitempty" json:"equipment,omitempty"`
	CreatedBy    primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// AssignedWorkout is a frozen copy of a catalog workout with its sets and reps.
type AssignedWorkout struct {
	WorkoutID primitive.ObjectID `bson:"workoutId" json:"workoutId"`
	Name      string             `bson:"name" json:"name"`
	Equipment string             `bson:"equipment,omitempty" json:"equipment,omitempty"`
	Muscle    string             `bson:"muscle,omitempty" json:"muscle,omitempty"`
	Sets      int                `bson:"sets" json:"sets"`
	Reps      int                `bson:"reps" json:"reps"`
}

// WorkoutPlan maps a day label ("Day 1".."Day 6") to its ordered workouts.
type WorkoutPlan map[string][]AssignedWorkout
