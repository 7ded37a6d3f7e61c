package domain

import "time"

// ProgressRecord is the completion log of one client for one calendar day.
// Labels are "{meal}_{food}" and "{day}_{workout}".
type ProgressRecord struct {
	ClientEmail       string    `bson:"clientEmail" json:"clientEmail"`
	Date              string    `bson:"date" json:"date"` // YYYY-MM-DD
	CompletedFoods    []string  `bson:"completedFoods" json:"completedFoods"`
	CompletedWorkouts []string  `bson:"completedWorkouts" json:"completedWorkouts"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}
