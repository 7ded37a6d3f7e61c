package report_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"trueiron/coach-app/internal/domain"
	"trueiron/coach-app/internal/report"
)

type fakeSource struct {
	assets map[string][]byte
	calls  int
}

func (f *fakeSource) Fetch(_ context.Context, ref string) ([]byte, error) {
	f.calls++
	data, ok := f.assets[ref]
	if !ok {
		return nil, errors.New("404 not found")
	}
	return data, nil
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func smallClient() domain.Client {
	return domain.Client{
		ID:       primitive.NewObjectID(),
		Email:    "jane@example.com",
		Name:     "Jane Doe",
		DOB:      "1990-06-15",
		HeightCM: 165,
		WeightKG: 60,
		Plan: domain.Plan{
			Food: domain.FoodPlan{
				domain.MealBreakfast: {{Name: "Oats", Calories: 389, Protein: 16.9, Carbs: 66.3, Fat: 6.9, Grams: 60}},
				domain.MealLunch:     {{Name: "Chicken Breast", Calories: 165, Protein: 31, Fat: 3.6, Grams: 200}},
			},
			Essentials: domain.EssentialsPlan{
				domain.MealBreakfast: {{Name: "Multivitamin", Dosage: "1 tab"}},
			},
			Workout: domain.WorkoutPlan{},
		},
	}
}

const (
	posterRef    = "https://cdn.example.com/poster.png"
	watermarkRef = "s3://assets/watermark.png"
)

// branded fills in the poster and watermark refs and serves both images.
func branded(t *testing.T, cfg report.Config) (report.Config, *fakeSource) {
	t.Helper()
	cfg.PosterRef, cfg.WatermarkRef = posterRef, watermarkRef
	return cfg, &fakeSource{assets: map[string][]byte{
		posterRef:    testPNG(t, 40, 30),
		watermarkRef: testPNG(t, 10, 10),
	}}
}

func validMetadata() report.Metadata {
	return report.Metadata{TransformationName: "100 Days Challenge", StartDate: "2024-01-01", EndDate: "2024-04-10"}
}

func TestGenerateEmptyWorkoutPlanStillRendersAllSections(t *testing.T) {
	c := report.NewComposer(branded(t, report.Config{}))

	res, err := c.Generate(context.Background(), report.Input{Client: smallClient(), Metadata: validMetadata()})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe_Plan_Full.pdf", res.FileName)
	assert.Equal(t, 5, res.Pages)
	assert.True(t, bytes.HasPrefix(res.Data, []byte("%PDF-")))
}

func TestGenerateWithPosterAndWatermark(t *testing.T) {
	cfg, src := branded(t, report.Config{})
	c := report.NewComposer(cfg, src)

	cl := smallClient()
	cl.Plan.Workout = domain.WorkoutPlan{
		"Day 2": {{Name: "Squat", Muscle: "legs", Sets: 5, Reps: 5}},
		"Day 1": {{Name: "Bench Press", Muscle: "chest", Equipment: "Barbell"}},
	}
	res, err := c.Generate(context.Background(), report.Input{Client: cl, Metadata: validMetadata()})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Pages)
	assert.Equal(t, 2, src.calls)
}

func TestGenerateMuscleLayout(t *testing.T) {
	c := report.NewComposer(branded(t, report.Config{WorkoutLayout: report.LayoutByMuscle}))
	cl := smallClient()
	cl.Plan.Workout = domain.WorkoutPlan{
		"Day 1": {{Name: "Plank"}, {Name: "Row", Muscle: "back"}},
	}
	res, err := c.Generate(context.Background(), report.Input{Client: cl, Metadata: validMetadata()})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Pages)
}

func TestGenerateLongTablesPaginate(t *testing.T) {
	c := report.NewComposer(branded(t, report.Config{}))
	cl := smallClient()
	var items []domain.AssignedFood
	for i := 0; i < 40; i++ {
		items = append(items, domain.AssignedFood{FoodID: primitive.NewObjectID(), Name: fmt.Sprintf("Food %d", i), Calories: 100, Grams: 100})
	}
	cl.Plan.Food = domain.FoodPlan{domain.MealBreakfast: items}

	res, err := c.Generate(context.Background(), report.Input{Client: cl, Metadata: validMetadata()})
	require.NoError(t, err)
	assert.Equal(t, 6, res.Pages)
}

func TestGenerateLongGuidelinesPaginate(t *testing.T) {
	var lines []string
	for i := 1; i <= 40; i++ {
		lines = append(lines, fmt.Sprintf("%d. Keep going.", i))
	}
	c := report.NewComposer(branded(t, report.Config{Guidelines: lines}))

	res, err := c.Generate(context.Background(), report.Input{Client: smallClient(), Metadata: validMetadata()})
	require.NoError(t, err)
	assert.Equal(t, 6, res.Pages)
}

func TestGenerateAbortsOnMissingMetadata(t *testing.T) {
	c := report.NewComposer(branded(t, report.Config{}))
	md := validMetadata()
	md.EndDate = ""

	res, err := c.Generate(context.Background(), report.Input{Client: smallClient(), Metadata: md})
	require.Error(t, err)
	assert.Nil(t, res)

	var abort *report.AbortError
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, report.StageCollectingMetadata, abort.Stage)
	assert.ErrorIs(t, err, report.ErrMissingMetadata)

	cl := smallClient()
	cl.Name = ""
	_, err = c.Generate(context.Background(), report.Input{Client: cl, Metadata: validMetadata()})
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, report.StageCollectingMetadata, abort.Stage)
}

func TestGenerateAbortsOnAssetFailure(t *testing.T) {
	src := &fakeSource{assets: map[string][]byte{
		"https://cdn.example.com/poster.png": []byte("<html>not an image</html>"),
	}}
	c := report.NewComposer(report.Config{
		PosterRef:    "https://cdn.example.com/poster.png",
		WatermarkRef: "https://cdn.example.com/missing.png",
	}, src)

	res, err := c.Generate(context.Background(), report.Input{Client: smallClient(), Metadata: validMetadata()})
	require.Error(t, err)
	assert.Nil(t, res)

	var abort *report.AbortError
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, report.StageLoadingAssets, abort.Stage)
	assert.Contains(t, err.Error(), "poster")
	assert.Contains(t, err.Error(), "watermark")
	assert.Equal(t, 2, src.calls, "every asset is attempted")
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := report.NewComposer(branded(t, report.Config{}))

	res, err := c.Generate(ctx, report.Input{Client: smallClient(), Metadata: validMetadata()})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)

	var abort *report.AbortError
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, report.StageLoadingAssets, abort.Stage)
}

func TestGenerateAbortsWithoutPoster(t *testing.T) {
	src := &fakeSource{assets: map[string][]byte{watermarkRef: testPNG(t, 10, 10)}}
	c := report.NewComposer(report.Config{WatermarkRef: watermarkRef}, src)

	res, err := c.Generate(context.Background(), report.Input{Client: smallClient(), Metadata: validMetadata()})
	require.Error(t, err)
	assert.Nil(t, res)

	var abort *report.AbortError
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, report.StageLoadingAssets, abort.Stage)
	assert.ErrorIs(t, err, report.ErrAssetNotConfigured)
	assert.Contains(t, err.Error(), "poster not configured")
	assert.NotContains(t, err.Error(), "watermark")
	assert.Zero(t, src.calls, "nothing is fetched")

	c = report.NewComposer(report.Config{}, &fakeSource{})
	_, err = c.Generate(context.Background(), report.Input{Client: smallClient(), Metadata: validMetadata()})
	require.ErrorAs(t, err, &abort)
	assert.Contains(t, err.Error(), "poster not configured")
	assert.Contains(t, err.Error(), "watermark not configured")
}

func TestBMI(t *testing.T) {
	v, ok := report.BMI(180, 81)
	require.True(t, ok)
	assert.Equal(t, 25.0, v)
	assert.Equal(t, "25.0", report.FormatBMI(180, 81))
	assert.Equal(t, "-", report.FormatBMI(0, 81))
	assert.Equal(t, "-", report.FormatBMI(180, 0))
}

func TestMetadataValidate(t *testing.T) {
	tests := []struct {
		name    string
		md      report.Metadata
		wantErr bool
	}{
		{"valid", validMetadata(), false},
		{"missing name", report.Metadata{StartDate: "2024-01-01", EndDate: "2024-02-01"}, true},
		{"bad start", report.Metadata{TransformationName: "x", StartDate: "01/01/2024", EndDate: "2024-02-01"}, true},
		{"reversed", report.Metadata{TransformationName: "x", StartDate: "2024-03-01", EndDate: "2024-02-01"}, true},
		{"same day", report.Metadata{TransformationName: "x", StartDate: "2024-03-01", EndDate: "2024-03-01"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.md.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
