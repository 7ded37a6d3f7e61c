package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trueiron/coach-app/internal/domain"
	"trueiron/coach-app/internal/plan"
	"trueiron/coach-app/internal/repository"
)

// Store is the persistence the ledger needs. Put fully replaces the record
// keyed by (ClientEmail, Date).
type Store interface {
	Get(ctx context.Context, email, date string) (*domain.ProgressRecord, error)
	Put(ctx context.Context, rec *domain.ProgressRecord) error
	ListByClient(ctx context.Context, email string) ([]domain.ProgressRecord, error)
}

// Today returns the UTC calendar date of now as YYYY-MM-DD.
func Today(now time.Time) string {
	return now.UTC().Format(domain.DateLayout)
}

// Session holds one client's view of one day's record. Toggles are computed
// against the session's in-memory lists, not the stored record, so two sessions
// on the same day overwrite each other (last write wins).
type Session struct {
	store    Store
	email    string
	date     string
	foods    []string
	workouts []string
	now      func() time.Time
}

// OpenSession loads the record for (email, date). A missing record starts empty.
func OpenSession(ctx context.Context, store Store, email, date string) (*Session, error) {
	if email == "" || date == "" {
		return nil, errors.New("email and date are required")
	}
	s := &Session{store: store, email: email, date: date, now: time.Now}
	rec, err := store.Get(ctx, email, date)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("loading progress for %s on %s: %w", email, date, err)
	}
	s.foods = append(s.foods, rec.CompletedFoods...)
	s.workouts = append(s.workouts, rec.CompletedWorkouts...)
	return s, nil
}

// Toggle adds label to the kind's list if absent or removes it if present, then
// writes the whole record. On a failed write the session keeps its old lists.
// It returns whether the label is now completed.
func (s *Session) Toggle(ctx context.Context, kind Kind, label Label) (bool, error) {
	if !kind.Valid() {
		return false, fmt.Errorf("unknown progress kind %q", kind)
	}
	if label.Grouping == "" || label.Item == "" {
		return false, errors.New("label grouping and item are required")
	}

	foods, workouts := s.foods, s.workouts
	var done bool
	if kind == KindFood {
		foods, done = toggle(foods, label.String())
	} else {
		workouts, done = toggle(workouts, label.String())
	}

	rec := &domain.ProgressRecord{
		ClientEmail:       s.email,
		Date:              s.date,
		CompletedFoods:    foods,
		CompletedWorkouts: workouts,
		UpdatedAt:         s.now().UTC(),
	}
	if err := s.store.Put(ctx, rec); err != nil {
		return false, fmt.Errorf("saving progress for %s on %s: %w", s.email, s.date, err)
	}
	s.foods, s.workouts = foods, workouts
	return done, nil
}

// Record returns a copy of the session's current state.
func (s *Session) Record() domain.ProgressRecord {
	return domain.ProgressRecord{
		ClientEmail:       s.email,
		Date:              s.date,
		CompletedFoods:    append([]string{}, s.foods...),
		CompletedWorkouts: append([]string{}, s.workouts...),
	}
}

// toggle returns a new slice with v removed if present or appended if absent.
func toggle(list []string, v string) ([]string, bool) {
	out := make([]string, 0, len(list)+1)
	found := false
	for _, x := range list {
		if x == v {
			found = true
			continue
		}
		out = append(out, x)
	}
	if !found {
		out = append(out, v)
	}
	return out, !found
}

// FindByDate scans records for the one with exactly date. ok is false when none matches.
func FindByDate(records []domain.ProgressRecord, date string) (domain.ProgressRecord, bool) {
	for _, r := range records {
		if r.Date == date {
			return r, true
		}
	}
	return domain.ProgressRecord{}, false
}

// History loads all of a client's records and returns the one for date.
// A missing record yields repository.ErrNotFound.
func History(ctx context.Context, store Store, email, date string) (*domain.ProgressRecord, error) {
	records, err := store.ListByClient(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("listing progress for %s: %w", email, err)
	}
	rec, ok := FindByDate(records, date)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rec, nil
}

// EstimatedCalories sums the scaled calories of the completed foods in rec,
// matching each label against the current food plan by meal and food name.
// Labels that no longer match, or cannot be parsed, contribute nothing.
func EstimatedCalories(rec domain.ProgressRecord, food domain.FoodPlan) float64 {
	var total float64
	for _, raw := range rec.CompletedFoods {
		l, err := ParseLabel(raw)
		if err != nil {
			continue
		}
		for _, it := range food[l.Grouping] {
			if it.Name == l.Item {
				total += plan.Scaled(it).Calories
				break
			}
		}
	}
	return total
}
