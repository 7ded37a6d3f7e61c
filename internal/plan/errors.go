package plan

import "errors"

var (
	ErrInvalidMeal        = errors.New("invalid meal")
	ErrInvalidDay         = errors.New("invalid day")
	ErrDuplicateFood      = errors.New("food already added to this meal")
	ErrDuplicateEssential = errors.New("essential already added to this meal")
	ErrInvalidGrams       = errors.New("grams must not be negative")
	ErrInvalidSetsReps    = errors.New("sets and reps must be positive")
	ErrIndexOutOfRange    = errors.New("item index out of range")
	ErrWorkoutNotInDay    = errors.New("workout not assigned to this day")
	ErrEmptyName          = errors.New("name is required")
)
