// Package report renders a client's plan as a branded, paginated PDF.
//
// A generation runs through CollectingMetadata, LoadingAssets and Rendering and
// ends either Saved or Aborted. An aborted generation never produces output; the
// returned *AbortError names the stage (and section, while rendering) it failed in.
package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"trueiron/coach-app/internal/domain"
)

// Stage is a step of a single report generation.
type Stage string

const (
	StageCollectingMetadata Stage = "collecting_metadata"
	StageLoadingAssets      Stage = "loading_assets"
	StageRendering          Stage = "rendering"
	StageSaved              Stage = "saved"
	StageAborted            Stage = "aborted"
)

// Rendered sections, in document order.
const (
	SectionCover      = "cover"
	SectionFoodChart  = "food_chart"
	SectionWorkout    = "workout_plan"
	SectionEssentials = "essentials"
	SectionGuidelines = "guidelines"
)

var (
	ErrMissingMetadata    = errors.New("transformation name, start date and end date are required")
	ErrAssetNotConfigured = errors.New("not configured")
)

// AbortError reports why a generation stopped without output.
type AbortError struct {
	Stage   Stage
	Section string // Set only for StageRendering
	Err     error
}

func (e *AbortError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("report aborted while %s %s: %v", e.Stage, e.Section, e.Err)
	}
	return fmt.Sprintf("report aborted while %s: %v", e.Stage, e.Err)
}

func (e *AbortError) Unwrap() error {
	return e.Err
}

// Metadata is supplied per request and never persisted.
type Metadata struct {
	TransformationName string `json:"transformationName"`
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
}

// Validate requires all three fields. Dates must be YYYY-MM-DD and not reversed.
func (m Metadata) Validate() error {
	if strings.TrimSpace(m.TransformationName) == "" || m.StartDate == "" || m.EndDate == "" {
		return ErrMissingMetadata
	}
	start, err := time.Parse(domain.DateLayout, m.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q", m.StartDate)
	}
	end, err := time.Parse(domain.DateLayout, m.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q", m.EndDate)
	}
	if end.Before(start) {
		return errors.New("end date is before start date")
	}
	return nil
}

// Duration renders "start to end".
func (m Metadata) Duration() string {
	return m.StartDate + " to " + m.EndDate
}

// Input is everything a generation reads. The client is not modified.
type Input struct {
	Client   domain.Client
	Metadata Metadata
}

// Result is a saved report.
type Result struct {
	FileName string
	Data     []byte
	Pages    int
}

// FileName returns "{name}_Plan_Full.pdf".
func FileName(clientName string) string {
	return clientName + "_Plan_Full.pdf"
}
