package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client is a coached person. The profile is edited by the owning trainer and the
// plan is embedded, so a client document is the unit of every plan write.
type Client struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TrainerID primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	Email     string             `bson:"email" json:"email"` // Unique, same as the client's login account

	Name               string  `bson:"name" json:"name"`
	Phone              string  `bson:"phone,omitempty" json:"phone,omitempty"`
	DOB                string  `bson:"dob,omitempty" json:"dob,omitempty"` // YYYY-MM-DD
	Gender             string  `bson:"gender,omitempty" json:"gender,omitempty"`
	HeightCM           float64 `bson:"height,omitempty" json:"height,omitempty"`
	WeightKG           float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	TransformationType string  `bson:"transformationType,omitempty" json:"transformationType,omitempty"` // e.g. "weight loss"
	DietType           string  `bson:"dietType,omitempty" json:"dietType,omitempty"`                     // e.g. "veg", "nonveg"

	Plan Plan `bson:"plan" json:"plan"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Age returns the age in full years at the given moment, or 0 if DOB is unset or malformed.
func (c *Client) Age(now time.Time) int {
	if c.DOB == "" {
		return 0
	}
	dob, err := time.Parse(DateLayout, c.DOB)
	if err != nil {
		return 0
	}
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// Plan groups the three per-client assignments. Revision is bumped on every write.
type Plan struct {
	Food       FoodPlan       `bson:"assignedFood" json:"assignedFood"`
	Essentials EssentialsPlan `bson:"assignedEssentials" json:"assignedEssentials"`
	Workout    WorkoutPlan    `bson:"assignedWorkout" json:"assignedWorkout"`
	Revision   int64          `bson:"revision" json:"revision"`
}

// DateLayout is the ISO calendar date format used for progress records and DOB.
const DateLayout = "2006-01-02"
