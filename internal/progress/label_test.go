package progress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trueiron/coach-app/internal/progress"
)

func TestLabelString(t *testing.T) {
	assert.Equal(t, "Breakfast_Oats", progress.Label{Grouping: "Breakfast", Item: "Oats"}.String())
	assert.Equal(t, "Day 1_Bench Press", progress.Label{Grouping: "Day 1", Item: "Bench Press"}.String())
}

func TestParseLabel(t *testing.T) {
	l, err := progress.ParseLabel("Day 3_Deadlift")
	require.NoError(t, err)
	assert.Equal(t, progress.Label{Grouping: "Day 3", Item: "Deadlift"}, l)

	for _, bad := range []string{"Lunch_Peanut_Butter", "NoSeparator", "_Oats", "Lunch_"} {
		_, err := progress.ParseLabel(bad)
		assert.ErrorIs(t, err, progress.ErrAmbiguousLabel, bad)
	}
}

func TestLabelValidate(t *testing.T) {
	assert.NoError(t, progress.Label{Grouping: "Day 1", Item: "Bench Press"}.Validate())

	for _, bad := range []progress.Label{
		{Grouping: "Lunch", Item: "Peanut_Butter"},
		{Grouping: "Pre_Workout", Item: "Banana"},
		{Grouping: "Lunch"},
		{Item: "Rice"},
	} {
		err := bad.Validate()
		assert.ErrorIs(t, err, progress.ErrAmbiguousLabel, bad.String())
	}
}
