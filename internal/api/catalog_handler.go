package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trueiron/coach-app/internal/domain"
	"trueiron/coach-app/internal/service"
)

// CatalogHandler serves the shared food, workout and essentials catalogs.
type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateFoodRequest carries macros per 100 g; calories are derived.
type CreateFoodRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category"`
	Protein  float64 `json:"protein" binding:"gte=0"`
	Carbs    float64 `json:"carbs" binding:"gte=0"`
	Fat      float64 `json:"fat" binding:"gte=0"`
}

type CreateWorkoutRequest struct {
	Name      string `json:"name" binding:"required"`
	Muscle    string `json:"muscle" binding:"required"`
	Equipment string `json:"equipment"`
}

type CreateEssentialRequest struct {
	Name   string `json:"name" binding:"required"`
	Dosage string `json:"dosage"`
}

// CreateFood godoc
// @Summary Add a food to the catalog
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param food body CreateFoodRequest true "Food and macros per 100 g"
// @Success 201 {object} domain.FoodCatalogItem
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Router /trainer/foods [post]
func (h *CatalogHandler) CreateFood(c *gin.Context) {
	var req CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, ok := callerID(c)
	if !ok {
		return
	}

	item, err := h.catalogService.CreateFood(c.Request.Context(), trainerID, domain.FoodCatalogItem{
		Name:     req.Name,
		Category: req.Category,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListFoods godoc
// @Summary List the food catalog
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.FoodCatalogItem
// @Router /trainer/foods [get]
func (h *CatalogHandler) ListFoods(c *gin.Context) {
	foods, err := h.catalogService.ListFoods(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if foods == nil {
		foods = []domain.FoodCatalogItem{}
	}
	c.JSON(http.StatusOK, foods)
}

// DeleteFood godoc
// @Summary Remove a food from the catalog
// @Description Plans keep their own copy, so existing assignments are unaffected.
// @Tags Catalog
// @Security BearerAuth
// @Param id path string true "Food ID"
// @Success 204
// @Failure 404 {object} gin.H "Food not found"
// @Router /trainer/foods/{id} [delete]
func (h *CatalogHandler) DeleteFood(c *gin.Context) {
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	if err := h.catalogService.DeleteFood(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateWorkout godoc
// @Summary Add a workout to the catalog
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workout body CreateWorkoutRequest true "Workout details"
// @Success 201 {object} domain.WorkoutCatalogItem
// @Router /trainer/workouts [post]
func (h *CatalogHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, ok := callerID(c)
	if !ok {
		return
	}

	item, err := h.catalogService.CreateWorkout(c.Request.Context(), trainerID, domain.WorkoutCatalogItem{
		Name:         req.Name,
		TargetMuscle: req.Muscle,
		Equipment:    req.Equipment,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListWorkouts godoc
// @Summary List the workout catalog
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param muscle query string false "Only workouts for this muscle group"
// @Success 200 {array} domain.WorkoutCatalogItem
// @Router /trainer/workouts [get]
func (h *CatalogHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.catalogService.ListWorkouts(c.Request.Context(), c.Query("muscle"))
	if err != nil {
		respondError(c, err)
		return
	}
	if workouts == nil {
		workouts = []domain.WorkoutCatalogItem{}
	}
	c.JSON(http.StatusOK, workouts)
}

// DeleteWorkout godoc
// @Summary Remove a workout from the catalog
// @Tags Catalog
// @Security BearerAuth
// @Param id path string true "Workout ID"
// @Success 204
// @Router /trainer/workouts/{id} [delete]
func (h *CatalogHandler) DeleteWorkout(c *gin.Context) {
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	if err := h.catalogService.DeleteWorkout(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateEssential godoc
// @Summary Add a supplement to the catalog
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param essential body CreateEssentialRequest true "Name and dosage"
// @Success 201 {object} domain.EssentialCatalogItem
// @Router /trainer/essentials [post]
func (h *CatalogHandler) CreateEssential(c *gin.Context) {
	var req CreateEssentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, ok := callerID(c)
	if !ok {
		return
	}

	item, err := h.catalogService.CreateEssential(c.Request.Context(), trainerID, domain.EssentialCatalogItem{
		Name:   req.Name,
		Dosage: req.Dosage,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListEssentials godoc
// @Summary List the essentials catalog
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.EssentialCatalogItem
// @Router /trainer/essentials [get]
func (h *CatalogHandler) ListEssentials(c *gin.Context) {
	items, err := h.catalogService.ListEssentials(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if items == nil {
		items = []domain.EssentialCatalogItem{}
	}
	c.JSON(http.StatusOK, items)
}

// DeleteEssential godoc
// @Summary Remove a supplement from the catalog
// @Tags Catalog
// @Security BearerAuth
// @Param id path string true "Essential ID"
// @Success 204
// @Router /trainer/essentials/{id} [delete]
func (h *CatalogHandler) DeleteEssential(c *gin.Context) {
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	if err := h.catalogService.DeleteEssential(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
