package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"trueiron/coach-app/internal/domain"
	"trueiron/coach-app/internal/service"
)

// PlanHandler edits a managed client's food, workout and essentials plan.
// Every mutation accepts an optional revision; when given, the write is
// rejected with 409 if the plan changed since that revision was read.
type PlanHandler struct {
	planService service.PlanService
}

func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

type ReplacePlanRequest struct {
	Food       domain.FoodPlan       `json:"assignedFood"`
	Essentials domain.EssentialsPlan `json:"assignedEssentials"`
	Workout    domain.WorkoutPlan    `json:"assignedWorkout"`
	Revision   *int64                `json:"revision"`
}

type AddFoodRequest struct {
	Meal     string `json:"meal" binding:"required"`
	FoodID   string `json:"foodId" binding:"required"`
	Revision *int64 `json:"revision"`
}

type SetFoodGramsRequest struct {
	Meal     string  `json:"meal" binding:"required"`
	Index    *int    `json:"index" binding:"required"`
	Grams    float64 `json:"grams"`
	Revision *int64  `json:"revision"`
}

type ToggleWorkoutRequest struct {
	Day       string `json:"day" binding:"required"`
	WorkoutID string `json:"workoutId" binding:"required"`
	Muscle    string `json:"muscle"` // The filter the trainer picked from, stored on the entry
	Revision  *int64 `json:"revision"`
}

type UpdateWorkoutRequest struct {
	Day       string `json:"day" binding:"required"`
	WorkoutID string `json:"workoutId" binding:"required"`
	Sets      int    `json:"sets"`
	Reps      int    `json:"reps"`
	Revision  *int64 `json:"revision"`
}

type AddEssentialRequest struct {
	Meal     string `json:"meal" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Dosage   string `json:"dosage"`
	Revision *int64 `json:"revision"`
}

// planTarget resolves the caller and the client from the path.
func planTarget(c *gin.Context) (trainerID, clientID primitive.ObjectID, ok bool) {
	if trainerID, ok = callerID(c); !ok {
		return
	}
	clientID, ok = pathObjectID(c, "clientId")
	return
}

// bodyObjectID parses an ObjectID field of a request body, aborting with 400 when invalid.
func bodyObjectID(c *gin.Context, field, value string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+field+" format.")
		return primitive.NilObjectID, false
	}
	return id, true
}

// queryRevision reads the optional ?revision= of body-less requests.
func queryRevision(c *gin.Context) (*int64, bool) {
	raw := c.Query("revision")
	if raw == "" {
		return nil, true
	}
	rev, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "revision must be an integer")
		return nil, false
	}
	return &rev, true
}

func pathIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "index must be an integer")
		return 0, false
	}
	return index, true
}

func (h *PlanHandler) respondPlan(c *gin.Context, p *domain.Plan, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetPlan godoc
// @Summary Get a client's plan
// @Tags Plan
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Success 200 {object} domain.Plan
// @Router /trainer/clients/{clientId}/plan [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	trainerID, clientID, ok := planTarget(c)
	if !ok {
		return
	}
	p, err := h.planService.GetPlan(c.Request.Context(), trainerID, clientID)
	h.respondPlan(c, p, err)
}

// ReplacePlan godoc
// @Summary Replace a client's whole plan
// @Tags Plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Param plan body ReplacePlanRequest true "New plan"
// @Success 200 {object} domain.Plan
// @Failure 409 {object} gin.H "Revision conflict"
// @Router /trainer/clients/{clientId}/plan [put]
func (h *PlanHandler) ReplacePlan(c *gin.Context) {
	var req ReplacePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, clientID, ok := planTarget(c)
	if !ok {
		return
	}
	p := domain.Plan{Food: req.Food, Essentials: req.Essentials, Workout: req.Workout}
	updated, err := h.planService.ReplacePlan(c.Request.Context(), trainerID, clientID, p, req.Revision)
	h.respondPlan(c, updated, err)
}

// GetSummary godoc
// @Summary Get plan totals
// @Description Daily calorie and macro totals, per-meal totals, workouts per day and BMI.
// @Tags Plan
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Success 200 {object} service.PlanSummary
// @Router /trainer/clients/{clientId}/plan/summary [get]
func (h *PlanHandler) GetSummary(c *gin.Context) {
	trainerID, clientID, ok := planTarget(c)
	if !ok {
		return
	}
	sum, err := h.planService.Summary(c.Request.Context(), trainerID, clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// AddFood godoc
// @Summary Add a catalog food to a meal
// @Tags Plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Param food body AddFoodRequest true "Meal and food"
// @Success 200 {object} domain.Plan
// @Router /trainer/clients/{clientId}/plan/food [post]
func (h *PlanHandler) AddFood(c *gin.Context) {
	var req AddFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, clientID, ok := planTarget(c)
	if !ok {
		return
	}
	foodID, ok := bodyObjectID(c, "foodId", req.FoodID)
	if !ok {
		return
	}
	p, err := h.planService.AddFood(c.Request.Context(), trainerID, clientID, req.Meal, foodID, req.Revision)
	h.respondPlan(c, p, err)
}

// SetFoodGrams godoc
// @Summary Change the grams of a planned food
// @Tags Plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Param grams body SetFoodGramsRequest true "Meal, index and grams"
// @Success 200 {object} domain.Plan
// @Router /trainer/clients/{clientId}/plan/food [patch]
func (h *PlanHandler) SetFoodGrams(c *gin.Context) {
	var req SetFoodGramsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, clientID, ok := planTarget(c)
	if !ok {
		return
	}
	p, err := h.planService.SetFoodGrams(c.Request.Context(), trainerID, clientID, req.Meal, *req.Index, req.Grams, req.Revision)
	h.respondPlan(c, p, err)
}

// RemoveFood godoc
// @Summary Remove a planned food
// @Tags Plan
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Param meal path string true "Meal"
// @Param index path int true "Position within the meal"
// @Param revision query int false "Expected plan revision"
// @Success 200 {object} domain.Plan
// @Router /trainer/clients/{clientId}/plan/food/{meal}/{index} [delete]
func (h *PlanHandler) RemoveFood(c *gin.Context) {
	trainerID, clientID, ok := planTarget(c)
	if !ok {
		return
	}
	index, ok := pathIndex(c)
	if !ok {
		return
	}
	rev, ok := queryRevision(c)
	if !ok {
		return
	}
	p, err := h.planService.RemoveFood(c.Request.Context(), trainerID, clientID, c.Param("meal"), index, rev)
	h.respondPlan(c, p, err)
}

// ToggleWorkout godoc
// @Summary Add a catalog workout to a day, or remove it if already there
// @Tags Plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Param workout body ToggleWorkoutRequest true "Day and workout"
// @Success 200 {object} domain.Plan
// @Router /trainer/clients/{clientId}/plan/workouts/toggle [post]
func (h *PlanHandler) ToggleWorkout(c *gin.Context) {
	var req ToggleWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, clientID, ok := planTarget(c)
	if !ok {
		return
	}
	workoutID, ok := bodyObjectID(c, "workoutId", req.WorkoutID)
	if !ok {
		return
	}
	p, err := h.planService.ToggleWorkout(c.Request.Context(), trainerID, clientID, req.Day, workoutID, req.Muscle, req.Revision)
	h.respondPlan(c, p, err)
}

// UpdateWorkout godoc
// @Summary Change sets and reps of a planned workout
// @Tags Plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Param workout body UpdateWorkoutRequest true "Day, workout, sets and reps"
// @Success 200 {object} domain.Plan
// @Router /trainer/clients/{clientId}/plan/workouts [patch]
func (h *PlanHandler) UpdateWorkout(c *gin.Context) {
	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, clientID, ok := planTarget(c)
	if !ok {
		return
	}
	workoutID, ok := bodyObjectID(c, "workoutId", req.WorkoutID)
	if !ok {
		return
	}
	p, err := h.planService.UpdateWorkout(c.Request.Context(), trainerID, clientID, req.Day, workoutID, req.Sets, req.Reps, req.Revision)
	h.respondPlan(c, p, err)
}

// AddEssential godoc
// @Summary Add a supplement to a meal
// @Tags Plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Param essential body AddEssentialRequest true "Meal, name and dosage"
// @Success 200 {object} domain.Plan
// @Router /trainer/clients/{clientId}/plan/essentials [post]
func (h *PlanHandler) AddEssential(c *gin.Context) {
	var req AddEssentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, clientID, ok := planTarget(c)
	if !ok {
		return
	}
	p, err := h.planService.AddEssential(c.Request.Context(), trainerID, clientID, req.Meal, req.Name, req.Dosage, req.Revision)
	h.respondPlan(c, p, err)
}

// RemoveEssential godoc
// @Summary Remove a planned supplement
// @Tags Plan
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Param meal path string true "Meal"
// @Param index path int true "Position within the meal"
// @Param revision query int false "Expected plan revision"
// @Success 200 {object} domain.Plan
// @Router /trainer/clients/{clientId}/plan/essentials/{meal}/{index} [delete]
func (h *PlanHandler) RemoveEssential(c *gin.Context) {
	trainerID, clientID, ok := planTarget(c)
	if !ok {
		return
	}
	index, ok := pathIndex(c)
	if !ok {
		return
	}
	rev, ok := queryRevision(c)
	if !ok {
		return
	}
	p, err := h.planService.RemoveEssential(c.Request.Context(), trainerID, clientID, c.Param("meal"), index, rev)
	h.respondPlan(c, p, err)
}
