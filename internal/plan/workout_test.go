package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"trueiron/coach-app/internal/domain"
	"trueiron/coach-app/internal/plan"
)

func catalogWorkout(name, muscle string) *domain.WorkoutCatalogItem {
	return &domain.WorkoutCatalogItem{ID: primitive.NewObjectID(), Name: name, TargetMuscle: muscle, Equipment: "Barbell"}
}

func TestToggleWorkout(t *testing.T) {
	bench := catalogWorkout("Bench Press", "chest")
	row := catalogWorkout("Row", "back")

	w, added, err := plan.ToggleWorkout(nil, "Day 1", bench, "chest")
	require.NoError(t, err)
	assert.True(t, added)
	require.Len(t, w["Day 1"], 1)
	got := w["Day 1"][0]
	assert.Equal(t, plan.DefaultSets, got.Sets)
	assert.Equal(t, plan.DefaultReps, got.Reps)
	assert.Equal(t, "chest", got.Muscle)
	assert.Equal(t, "Barbell", got.Equipment)

	w, _, err = plan.ToggleWorkout(w, "Day 1", row, "")
	require.NoError(t, err)
	assert.Equal(t, "back", w["Day 1"][1].Muscle, "falls back to catalog muscle")

	w, added, err = plan.ToggleWorkout(w, "Day 1", bench, "chest")
	require.NoError(t, err)
	assert.False(t, added)
	require.Len(t, w["Day 1"], 1)
	assert.Equal(t, row.ID, w["Day 1"][0].WorkoutID)

	_, _, err = plan.ToggleWorkout(w, "Day 7", bench, "")
	assert.ErrorIs(t, err, plan.ErrInvalidDay)
}

func TestToggleWorkoutTwiceRestoresMembers(t *testing.T) {
	squat := catalogWorkout("Squat", "legs")
	start, _, err := plan.ToggleWorkout(nil, "Day 2", catalogWorkout("Lunge", "legs"), "legs")
	require.NoError(t, err)

	once, _, err := plan.ToggleWorkout(start, "Day 2", squat, "legs")
	require.NoError(t, err)
	twice, _, err := plan.ToggleWorkout(once, "Day 2", squat, "legs")
	require.NoError(t, err)

	assert.Equal(t, start, twice)
}

func TestUpdateSetsReps(t *testing.T) {
	curl := catalogWorkout("Curl", "arms")
	w, _, _ := plan.ToggleWorkout(nil, "Day 3", curl, "arms")

	out, err := plan.UpdateSetsReps(w, "Day 3", curl.ID, 4, 12)
	require.NoError(t, err)
	assert.Equal(t, 4, out["Day 3"][0].Sets)
	assert.Equal(t, 12, out["Day 3"][0].Reps)
	assert.Equal(t, plan.DefaultSets, w["Day 3"][0].Sets)

	_, err = plan.UpdateSetsReps(w, "Day 3", curl.ID, 0, 12)
	assert.ErrorIs(t, err, plan.ErrInvalidSetsReps)

	_, err = plan.UpdateSetsReps(w, "Day 1", curl.ID, 4, 12)
	assert.ErrorIs(t, err, plan.ErrWorkoutNotInDay)
}

func TestGroupByMuscle(t *testing.T) {
	items := []domain.AssignedWorkout{
		{Name: "Row", Muscle: "back"},
		{Name: "Plank"},
		{Name: "Bench", Muscle: "chest"},
		{Name: "Pulldown", Muscle: "back"},
	}
	groups := plan.GroupByMuscle(items)

	require.Len(t, groups, 3)
	assert.Equal(t, "back", groups[0].Muscle)
	assert.Len(t, groups[0].Workouts, 2)
	assert.Equal(t, domain.MuscleOther, groups[1].Muscle)
	assert.Equal(t, "chest", groups[2].Muscle)

	total := 0
	for _, g := range groups {
		total += len(g.Workouts)
	}
	assert.Equal(t, len(items), total)
}

func TestSortedDays(t *testing.T) {
	w := domain.WorkoutPlan{
		"Day 10": nil,
		"Day 2":  nil,
		"Rest":   nil,
		"Day 1":  nil,
	}
	assert.Equal(t, []string{"Day 1", "Day 2", "Day 10", "Rest"}, plan.SortedDays(w))
}

func TestValidDay(t *testing.T) {
	assert.True(t, plan.ValidDay("Day 1"))
	assert.True(t, plan.ValidDay(plan.DayLabel(domain.MaxPlanDays)))
	assert.False(t, plan.ValidDay("Day 0"))
	assert.False(t, plan.ValidDay("Day 7"))
	assert.False(t, plan.ValidDay("day 1"))
	assert.False(t, plan.ValidDay("Day x"))
}
