package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"trueiron/coach-app/internal/domain"
	"trueiron/coach-app/internal/plan"
)

// Page geometry, in mm.
const (
	topMargin        = 20.0
	leftMargin       = 20.0
	tableMargin      = 14.0
	blockBreakY      = 250.0
	guidelineBreakY  = 280.0
	posterWidth      = 160.0
	watermarkWidth   = 120.0
	rowHeight        = 8.0
	guidelineLineGap = 8.0
)

// Workout section layouts.
const (
	LayoutByDay    = "day"
	LayoutByMuscle = "muscle"
)

const DefaultTitle = "TRUE IRON FITNESS"

var tracer = otel.Tracer("trueiron/coach-app/internal/report")

// Config holds the static parts of every report.
type Config struct {
	Title         string
	PosterRef     string // URL or "s3://key"; required
	WatermarkRef  string // URL or "s3://key"; required
	WorkoutLayout string // LayoutByDay or LayoutByMuscle
	Guidelines    []string
}

// Composer renders reports. It is safe for concurrent use; each Generate call
// owns its own document.
type Composer struct {
	cfg    Config
	assets AssetSource
	now    func() time.Time
}

func NewComposer(cfg Config, assets AssetSource) *Composer {
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.WorkoutLayout == "" {
		cfg.WorkoutLayout = LayoutByDay
	}
	if len(cfg.Guidelines) == 0 {
		cfg.Guidelines = DefaultGuidelines
	}
	return &Composer{cfg: cfg, assets: assets, now: time.Now}
}

// Generate renders the report for in. Any failure, including ctx being
// cancelled, returns an *AbortError and no data.
func (c *Composer) Generate(ctx context.Context, in Input) (res *Result, err error) {
	ctx, span := tracer.Start(ctx, "report.generate")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, fmt.Sprintf("rendered %d pages", res.Pages))
		}
	}()

	if strings.TrimSpace(in.Client.Name) == "" {
		return nil, &AbortError{Stage: StageCollectingMetadata, Err: errors.New("missing client data")}
	}
	if err := in.Metadata.Validate(); err != nil {
		return nil, &AbortError{Stage: StageCollectingMetadata, Err: err}
	}

	poster := &asset{name: "poster", ref: c.cfg.PosterRef}
	watermark := &asset{name: "watermark", ref: c.cfg.WatermarkRef}
	if err := requireAssets(poster, watermark); err != nil {
		return nil, &AbortError{Stage: StageLoadingAssets, Err: err}
	}
	if err := loadAssets(ctx, c.assets, []*asset{poster, watermark}); err != nil {
		return nil, &AbortError{Stage: StageLoadingAssets, Err: err}
	}

	d := newDocument(c.cfg.Title)
	d.registerImage(watermark)
	d.registerImage(poster)
	if d.pdf.Err() {
		return nil, &AbortError{Stage: StageLoadingAssets, Err: d.pdf.Error()}
	}
	d.pdf.SetHeaderFunc(func() { d.drawWatermark(watermark) })

	sections := []struct {
		name   string
		render func()
	}{
		{SectionCover, func() { c.renderCover(d, in, poster) }},
		{SectionFoodChart, func() { c.renderFoodChart(d, in.Client.Plan.Food) }},
		{SectionWorkout, func() { c.renderWorkouts(d, in.Client.Plan.Workout) }},
		{SectionEssentials, func() { c.renderEssentials(d, in.Client.Plan.Essentials) }},
		{SectionGuidelines, func() { c.renderGuidelines(d) }},
	}
	for _, s := range sections {
		if err := ctx.Err(); err != nil {
			return nil, &AbortError{Stage: StageRendering, Section: s.name, Err: err}
		}
		log.Tracef("report for %s: rendering %s", in.Client.Email, s.name)
		s.render()
		if d.pdf.Err() {
			return nil, &AbortError{Stage: StageRendering, Section: s.name, Err: d.pdf.Error()}
		}
	}

	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, &AbortError{Stage: StageRendering, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, &AbortError{Stage: StageRendering, Err: err}
	}

	return &Result{
		FileName: FileName(in.Client.Name),
		Data:     buf.Bytes(),
		Pages:    d.pdf.PageNo(),
	}, nil
}

func (c *Composer) renderCover(d *document, in Input, poster *asset) {
	d.newPage()
	d.pdf.SetFont("Helvetica", "B", 22)
	d.centered(c.cfg.Title)
	d.y += 12

	d.pdf.SetFont("Helvetica", "", 14)
	d.centered("Diet Plan Duration: " + in.Metadata.Duration())
	d.y += 8
	d.centered("Transformation: " + in.Metadata.TransformationName)
	d.y += 10

	d.y += d.image(poster, posterWidth, d.y) + 10

	cl := in.Client
	age := "-"
	if a := cl.Age(c.now()); a > 0 {
		age = strconv.Itoa(a)
	}
	d.pdf.SetFont("Helvetica", "B", 15)
	for _, line := range []string{
		"Client Name: " + cl.Name,
		fmt.Sprintf("Age: %s  Height: %s cm  Weight: %s kg", age, formatOptional(cl.HeightCM), formatOptional(cl.WeightKG)),
		"BMI: " + FormatBMI(cl.HeightCM, cl.WeightKG),
	} {
		d.centered(line)
		d.y += 10
	}
}

func (c *Composer) renderFoodChart(d *document, food domain.FoodPlan) {
	d.newPage()
	d.heading("Daily Food Chart", 16)

	t := plan.Aggregate(food)
	d.pdf.SetFont("Helvetica", "", 12)
	d.text(fmt.Sprintf("Total: %.0f kcal  |  Protein: %.1f g  |  Carbs: %.1f g  |  Fat: %.1f g",
		t.Calories, t.Protein, t.Carbs, t.Fat))
	d.y += 6

	for _, meal := range food.MealOrder() {
		items := food[meal]
		if len(items) == 0 {
			continue
		}
		rows := make([][]string, 0, len(items))
		for _, it := range items {
			rows = append(rows, []string{
				meal,
				it.Name,
				strconv.FormatFloat(it.Grams, 'f', -1, 64) + "g",
				fmt.Sprintf("%.0f kcal", plan.Scaled(it).Calories),
			})
		}
		d.table([]string{meal, "Food Item", "Grams", "Calories"}, []float64{35, 77, 35, 35}, rows)
		d.y += 10
	}
}

func (c *Composer) renderWorkouts(d *document, w domain.WorkoutPlan) {
	d.newPage()
	d.heading("Workout Plan", 16)

	type block struct {
		title string
		items []domain.AssignedWorkout
	}
	var blocks []block
	if c.cfg.WorkoutLayout == LayoutByMuscle {
		for _, g := range plan.GroupByMuscle(plan.AllWorkouts(w)) {
			blocks = append(blocks, block{title: capitalize(g.Muscle), items: g.Workouts})
		}
	} else {
		for _, day := range plan.SortedDays(w) {
			if len(w[day]) > 0 {
				blocks = append(blocks, block{title: day, items: w[day]})
			}
		}
	}

	for _, b := range blocks {
		d.breakIfPast(blockBreakY)
		d.pdf.SetFont("Helvetica", "B", 13)
		d.text(b.title)
		d.y += 6

		rows := make([][]string, 0, len(b.items))
		for _, it := range b.items {
			rows = append(rows, workoutRow(it))
		}
		d.table([]string{"Workout", "Equipment", "Sets", "Reps"}, []float64{82, 50, 25, 25}, rows)
		d.y += 10
	}
}

func workoutRow(it domain.AssignedWorkout) []string {
	equipment := it.Equipment
	if equipment == "" {
		equipment = "None"
	}
	sets, reps := it.Sets, it.Reps
	if sets <= 0 {
		sets = plan.DefaultSets
	}
	if reps <= 0 {
		reps = plan.DefaultReps
	}
	return []string{it.Name, equipment, strconv.Itoa(sets), strconv.Itoa(reps)}
}

func (c *Composer) renderEssentials(d *document, e domain.EssentialsPlan) {
	d.newPage()
	d.heading("Daily Essentials", 16)

	flat := plan.FlattenEssentials(e)
	if len(flat) == 0 {
		return
	}
	rows := make([][]string, 0, len(flat))
	for _, r := range flat {
		rows = append(rows, []string{r.Meal, r.Essential.Label()})
	}
	d.table([]string{"Meal", "Essential Item"}, []float64{50, 132}, rows)
}

func (c *Composer) renderGuidelines(d *document) {
	d.newPage()
	d.heading("Important Guidelines", 14)

	d.pdf.SetFont("Helvetica", "", 12)
	for _, line := range c.cfg.Guidelines {
		d.breakIfPast(guidelineBreakY)
		d.text(line)
		d.y += guidelineLineGap
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
