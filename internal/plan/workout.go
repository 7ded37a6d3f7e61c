package plan

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"trueiron/coach-app/internal/domain"
)

// Defaults for a freshly toggled-on workout.
const (
	DefaultSets = 3
	DefaultReps = 10
)

const dayPrefix = "Day "

// DayLabel returns "Day n".
func DayLabel(n int) string {
	return dayPrefix + strconv.Itoa(n)
}

// DayNumber parses the numeric suffix of a day label. ok is false when there is none.
func DayNumber(label string) (n int, ok bool) {
	if !strings.HasPrefix(label, dayPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(label, dayPrefix))
	if err != nil {
		return 0, false
	}
	return n, true
}

// ValidDay reports whether label is one of "Day 1".."Day 6".
func ValidDay(label string) bool {
	n, ok := DayNumber(label)
	return ok && n >= 1 && n <= domain.MaxPlanDays
}

// ToggleWorkout removes item from day if present, otherwise appends it with default
// sets and reps. The stored muscle is filterMuscle, or the catalog muscle when empty.
// Toggling the same item twice restores the day's members.
func ToggleWorkout(w domain.WorkoutPlan, day string, item *domain.WorkoutCatalogItem, filterMuscle string) (domain.WorkoutPlan, bool, error) {
	if !ValidDay(day) {
		return w, false, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}
	out := cloneWorkout(w)
	items := out[day]
	for i, it := range items {
		if it.WorkoutID == item.ID {
			items = append(items[:i], items[i+1:]...)
			if len(items) == 0 {
				delete(out, day)
			} else {
				out[day] = items
			}
			return out, false, nil
		}
	}
	muscle := filterMuscle
	if muscle == "" {
		muscle = item.TargetMuscle
	}
	out[day] = append(items, domain.AssignedWorkout{
		WorkoutID: item.ID,
		Name:      item.Name,
		Equipment: item.Equipment,
		Muscle:    muscle,
		Sets:      DefaultSets,
		Reps:      DefaultReps,
	})
	return out, true, nil
}

// UpdateSetsReps sets sets and reps of the workout with id in day, in place.
func UpdateSetsReps(w domain.WorkoutPlan, day string, id primitive.ObjectID, sets, reps int) (domain.WorkoutPlan, error) {
	if sets <= 0 || reps <= 0 {
		return w, ErrInvalidSetsReps
	}
	out := cloneWorkout(w)
	for i := range out[day] {
		if out[day][i].WorkoutID == id {
			out[day][i].Sets = sets
			out[day][i].Reps = reps
			return out, nil
		}
	}
	return w, ErrWorkoutNotInDay
}

// MuscleGroup is one bucket of GroupByMuscle.
type MuscleGroup struct {
	Muscle   string
	Workouts []domain.AssignedWorkout
}

// GroupByMuscle buckets items by stored muscle, "Other" when empty. Groups appear
// in first-seen order and each item lands in exactly one group.
func GroupByMuscle(items []domain.AssignedWorkout) []MuscleGroup {
	var groups []MuscleGroup
	index := make(map[string]int)
	for _, it := range items {
		m := it.Muscle
		if m == "" {
			m = domain.MuscleOther
		}
		i, ok := index[m]
		if !ok {
			i = len(groups)
			index[m] = i
			groups = append(groups, MuscleGroup{Muscle: m})
		}
		groups[i].Workouts = append(groups[i].Workouts, it)
	}
	return groups
}

// SortedDays returns the day labels of w ordered by numeric suffix. Labels
// without a number sort last, alphabetically.
func SortedDays(w domain.WorkoutPlan) []string {
	days := make([]string, 0, len(w))
	for d := range w {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		a, aok := DayNumber(days[i])
		b, bok := DayNumber(days[j])
		switch {
		case aok && bok && a != b:
			return a < b
		case aok != bok:
			return aok
		default:
			return days[i] < days[j]
		}
	})
	return days
}

// AllWorkouts flattens w in day order.
func AllWorkouts(w domain.WorkoutPlan) []domain.AssignedWorkout {
	var out []domain.AssignedWorkout
	for _, d := range SortedDays(w) {
		out = append(out, w[d]...)
	}
	return out
}

func cloneWorkout(w domain.WorkoutPlan) domain.WorkoutPlan {
	out := make(domain.WorkoutPlan, len(w))
	for k, v := range w {
		out[k] = append([]domain.AssignedWorkout(nil), v...)
	}
	return out
}
