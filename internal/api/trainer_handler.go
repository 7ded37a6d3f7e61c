package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trueiron/coach-app/internal/domain"
	"trueiron/coach-app/internal/service"
)

// TrainerHandler serves the trainer's client roster and their progress history.
type TrainerHandler struct {
	clientService   service.ClientService
	progressService service.ProgressService
}

func NewTrainerHandler(clientService service.ClientService, progressService service.ProgressService) *TrainerHandler {
	return &TrainerHandler{
		clientService:   clientService,
		progressService: progressService,
	}
}

// --- DTOs for Client Management ---

type ClientProfileRequest struct {
	Name               string  `json:"name" binding:"required"`
	Phone              string  `json:"phone"`
	DOB                string  `json:"dob"`
	Gender             string  `json:"gender"`
	HeightCM           float64 `json:"height" binding:"gte=0"`
	WeightKG           float64 `json:"weight" binding:"gte=0"`
	TransformationType string  `json:"transformationType"`
	DietType           string  `json:"dietType"`
}

func (r ClientProfileRequest) profile() service.ClientProfile {
	return service.ClientProfile{
		Name:               r.Name,
		Phone:              r.Phone,
		DOB:                r.DOB,
		Gender:             r.Gender,
		HeightCM:           r.HeightCM,
		WeightKG:           r.WeightKG,
		TransformationType: r.TransformationType,
		DietType:           r.DietType,
	}
}

type CreateClientRequest struct {
	ClientProfileRequest
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// CreateClient godoc
// @Summary Create a client
// @Description Creates the client's login account and profile, managed by the calling trainer.
// @Tags Trainer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param client body CreateClientRequest true "Client account and profile"
// @Success 201 {object} domain.Client
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 409 {object} gin.H "Email already registered"
// @Router /trainer/clients [post]
func (h *TrainerHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, ok := callerID(c)
	if !ok {
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), trainerID, req.Email, req.Password, req.profile())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// GetManagedClients godoc
// @Summary Get the trainer's managed clients
// @Tags Trainer
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Client
// @Router /trainer/clients [get]
func (h *TrainerHandler) GetManagedClients(c *gin.Context) {
	trainerID, ok := callerID(c)
	if !ok {
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), trainerID)
	if err != nil {
		respondError(c, err)
		return
	}
	if clients == nil {
		clients = []domain.Client{} // Return empty JSON array, not null
	}
	c.JSON(http.StatusOK, clients)
}

// GetClient godoc
// @Summary Get one managed client
// @Tags Trainer
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Success 200 {object} domain.Client
// @Failure 403 {object} gin.H "Client belongs to another trainer"
// @Failure 404 {object} gin.H "Client not found"
// @Router /trainer/clients/{clientId} [get]
func (h *TrainerHandler) GetClient(c *gin.Context) {
	trainerID, ok := callerID(c)
	if !ok {
		return
	}
	clientID, ok := pathObjectID(c, "clientId")
	if !ok {
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), trainerID, clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// UpdateClient godoc
// @Summary Update a client's profile
// @Tags Trainer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Param profile body ClientProfileRequest true "Profile"
// @Success 200 {object} domain.Client
// @Router /trainer/clients/{clientId} [put]
func (h *TrainerHandler) UpdateClient(c *gin.Context) {
	var req ClientProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, ok := callerID(c)
	if !ok {
		return
	}
	clientID, ok := pathObjectID(c, "clientId")
	if !ok {
		return
	}

	client, err := h.clientService.UpdateProfile(c.Request.Context(), trainerID, clientID, req.profile())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// GetProgressHistory godoc
// @Summary Get a client's completion record for one date
// @Description Returns the record and the calories estimated from the current food plan.
// @Tags Trainer
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} service.HistoryEntry
// @Failure 404 {object} gin.H "No record for that date"
// @Router /trainer/clients/{clientId}/progress [get]
func (h *TrainerHandler) GetProgressHistory(c *gin.Context) {
	trainerID, ok := callerID(c)
	if !ok {
		return
	}
	clientID, ok := pathObjectID(c, "clientId")
	if !ok {
		return
	}
	date := c.Query("date")
	if date == "" {
		abortWithError(c, http.StatusBadRequest, "date query parameter is required")
		return
	}

	entry, err := h.progressService.History(c.Request.Context(), trainerID, clientID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
