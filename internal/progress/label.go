// Package progress implements the daily completion ledger: one record per
// client per calendar day, toggled item by item and written back whole.
package progress

import (
	"errors"
	"fmt"
	"strings"
)

const labelSep = "_"

// ErrAmbiguousLabel is returned when a stored label does not split into exactly
// one grouping and one item, e.g. because the food name itself contains "_".
var ErrAmbiguousLabel = errors.New("ambiguous progress label")

// Kind selects which completion list a toggle applies to.
type Kind string

const (
	KindFood    Kind = "food"
	KindWorkout Kind = "workout"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindFood || k == KindWorkout
}

// Label identifies a completed item. Grouping is the meal for foods and the day
// for workouts.
type Label struct {
	Grouping string
	Item     string
}

// String renders the stored form "{grouping}_{item}".
func (l Label) String() string {
	return l.Grouping + labelSep + l.Item
}

// Validate checks that l renders to a label ParseLabel can split back: both
// parts are set and neither contains the separator.
func (l Label) Validate() error {
	if l.Grouping == "" || l.Item == "" {
		return fmt.Errorf("%w: grouping and item are required", ErrAmbiguousLabel)
	}
	if strings.Contains(l.Grouping, labelSep) || strings.Contains(l.Item, labelSep) {
		return fmt.Errorf("%w: %q must not contain %q", ErrAmbiguousLabel, l.String(), labelSep)
	}
	return nil
}

// ParseLabel splits a stored label. It fails with ErrAmbiguousLabel unless s
// holds exactly one separator with text on both sides.
func ParseLabel(s string) (Label, error) {
	if strings.Count(s, labelSep) != 1 {
		return Label{}, fmt.Errorf("%w: %q", ErrAmbiguousLabel, s)
	}
	grouping, item, _ := strings.Cut(s, labelSep)
	if grouping == "" || item == "" {
		return Label{}, fmt.Errorf("%w: %q", ErrAmbiguousLabel, s)
	}
	return Label{Grouping: grouping, Item: item}, nil
}
