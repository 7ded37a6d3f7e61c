package plan

import (
	"fmt"
	"strings"

	"trueiron/coach-app/internal/domain"
)

// AddEssential appends a snapshot to meal. Names are unique per meal, ignoring case.
func AddEssential(e domain.EssentialsPlan, meal, name, dosage string) (domain.EssentialsPlan, error) {
	if !domain.IsValidMeal(meal) {
		return e, fmt.Errorf("%w: %q", ErrInvalidMeal, meal)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return e, ErrEmptyName
	}
	for _, it := range e[meal] {
		if strings.EqualFold(it.Name, name) {
			return e, ErrDuplicateEssential
		}
	}
	out := cloneEssentials(e)
	out[meal] = append(out[meal], domain.AssignedEssential{Name: name, Dosage: strings.TrimSpace(dosage)})
	return out, nil
}

// RemoveEssential removes the entry at index in meal.
func RemoveEssential(e domain.EssentialsPlan, meal string, index int) (domain.EssentialsPlan, error) {
	if index < 0 || index >= len(e[meal]) {
		return e, ErrIndexOutOfRange
	}
	out := cloneEssentials(e)
	items := append(out[meal][:index], out[meal][index+1:]...)
	if len(items) == 0 {
		delete(out, meal)
	} else {
		out[meal] = items
	}
	return out, nil
}

// EssentialRow is one (meal, essential) pair of the flattened essentials list.
type EssentialRow struct {
	Meal      string
	Essential domain.AssignedEssential
}

// FlattenEssentials lists every (meal, essential) pair in meal order.
func FlattenEssentials(e domain.EssentialsPlan) []EssentialRow {
	var rows []EssentialRow
	for _, meal := range e.MealOrder() {
		for _, it := range e[meal] {
			rows = append(rows, EssentialRow{Meal: meal, Essential: it})
		}
	}
	return rows
}

func cloneEssentials(e domain.EssentialsPlan) domain.EssentialsPlan {
	out := make(domain.EssentialsPlan, len(e))
	for k, v := range e {
		out[k] = append([]domain.AssignedEssential(nil), v...)
	}
	return out
}
