package progress_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trueiron/coach-app/internal/domain"
	"trueiron/coach-app/internal/progress"
	"trueiron/coach-app/internal/repository"
)

type memStore struct {
	mu      sync.Mutex
	records map[string]domain.ProgressRecord
	putErr  error
	puts    int
}

func newMemStore() *memStore {
	return &memStore{records: map[string]domain.ProgressRecord{}}
}

func (m *memStore) Get(_ context.Context, email, date string) (*domain.ProgressRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[email+"_"+date]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}

func (m *memStore) Put(_ context.Context, rec *domain.ProgressRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	if m.putErr != nil {
		return m.putErr
	}
	m.records[rec.ClientEmail+"_"+rec.Date] = *rec
	return nil
}

func (m *memStore) ListByClient(_ context.Context, email string) ([]domain.ProgressRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.ProgressRecord
	for _, r := range m.records {
		if r.ClientEmail == email {
			out = append(out, r)
		}
	}
	return out, nil
}

const (
	email = "jane@example.com"
	day   = "2024-03-05"
)

func TestToday(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2024, 3, 6, 2, 0, 0, 0, loc) // still March 5th in UTC
	assert.Equal(t, "2024-03-05", progress.Today(now))
}

func TestToggleAddsThenRemoves(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	s, err := progress.OpenSession(ctx, store, email, day)
	require.NoError(t, err)

	oats := progress.Label{Grouping: domain.MealBreakfast, Item: "Oats"}
	done, err := s.Toggle(ctx, progress.KindFood, oats)
	require.NoError(t, err)
	assert.True(t, done)

	stored, err := store.Get(ctx, email, day)
	require.NoError(t, err)
	assert.Equal(t, []string{"Breakfast_Oats"}, stored.CompletedFoods)
	assert.Empty(t, stored.CompletedWorkouts)

	done, err = s.Toggle(ctx, progress.KindFood, oats)
	require.NoError(t, err)
	assert.False(t, done)

	stored, _ = store.Get(ctx, email, day)
	assert.Empty(t, stored.CompletedFoods)
}

func TestToggleWritesBothLists(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	s, _ := progress.OpenSession(ctx, store, email, day)

	_, err := s.Toggle(ctx, progress.KindWorkout, progress.Label{Grouping: "Day 1", Item: "Squat"})
	require.NoError(t, err)
	_, err = s.Toggle(ctx, progress.KindFood, progress.Label{Grouping: domain.MealLunch, Item: "Rice"})
	require.NoError(t, err)

	stored, _ := store.Get(ctx, email, day)
	assert.Equal(t, []string{"Day 1_Squat"}, stored.CompletedWorkouts)
	assert.Equal(t, []string{"Lunch_Rice"}, stored.CompletedFoods)
}

func TestOpenSessionLoadsExisting(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	require.NoError(t, store.Put(ctx, &domain.ProgressRecord{
		ClientEmail: email, Date: day, CompletedFoods: []string{"Dinner_Fish"},
	}))

	s, err := progress.OpenSession(ctx, store, email, day)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dinner_Fish"}, s.Record().CompletedFoods)
}

func TestFailedWriteKeepsSessionState(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	s, _ := progress.OpenSession(ctx, store, email, day)
	store.putErr = errors.New("network down")

	_, err := s.Toggle(ctx, progress.KindFood, progress.Label{Grouping: domain.MealLunch, Item: "Rice"})
	require.Error(t, err)
	assert.Empty(t, s.Record().CompletedFoods)
	_, err = store.Get(ctx, email, day)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestToggleRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	s, _ := progress.OpenSession(ctx, store, email, day)

	_, err := s.Toggle(ctx, progress.Kind("meal"), progress.Label{Grouping: "a", Item: "b"})
	assert.Error(t, err)
	_, err = s.Toggle(ctx, progress.KindFood, progress.Label{Grouping: domain.MealLunch})
	assert.Error(t, err)
	assert.Zero(t, store.puts)
}

// Two sessions opened on the same day do not see each other's toggles, so the
// later write replaces the earlier one.
func TestConcurrentSessionsLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	phone, err := progress.OpenSession(ctx, store, email, day)
	require.NoError(t, err)
	laptop, err := progress.OpenSession(ctx, store, email, day)
	require.NoError(t, err)

	_, err = phone.Toggle(ctx, progress.KindFood, progress.Label{Grouping: domain.MealBreakfast, Item: "Oats"})
	require.NoError(t, err)
	_, err = laptop.Toggle(ctx, progress.KindFood, progress.Label{Grouping: domain.MealLunch, Item: "Rice"})
	require.NoError(t, err)

	stored, _ := store.Get(ctx, email, day)
	assert.Equal(t, []string{"Lunch_Rice"}, stored.CompletedFoods)
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	for _, d := range []string{"2024-03-01", "2024-03-02"} {
		require.NoError(t, store.Put(ctx, &domain.ProgressRecord{ClientEmail: email, Date: d}))
	}
	require.NoError(t, store.Put(ctx, &domain.ProgressRecord{ClientEmail: "other@example.com", Date: "2024-03-03"}))

	rec, err := progress.History(ctx, store, email, "2024-03-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-02", rec.Date)

	_, err = progress.History(ctx, store, email, "2024-03-03")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEstimatedCalories(t *testing.T) {
	food := domain.FoodPlan{
		domain.MealBreakfast: {{Name: "Oats", Calories: 400, Grams: 50}},
		domain.MealLunch:     {{Name: "Rice", Calories: 130, Grams: 200}},
	}
	rec := domain.ProgressRecord{CompletedFoods: []string{
		"Breakfast_Oats",
		"Lunch_Rice",
		"Dinner_Rice",     // meal mismatch
		"Lunch_Old_Thing", // ambiguous
	}}
	assert.InDelta(t, 460, progress.EstimatedCalories(rec, food), 1e-9)
}
