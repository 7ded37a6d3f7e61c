package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trueiron/coach-app/internal/progress"
	"trueiron/coach-app/internal/service"
)

// ClientHandler serves the client's own profile, plan and daily check-offs.
type ClientHandler struct {
	clientService   service.ClientService
	progressService service.ProgressService
}

func NewClientHandler(clientService service.ClientService, progressService service.ProgressService) *ClientHandler {
	return &ClientHandler{
		clientService:   clientService,
		progressService: progressService,
	}
}

// ToggleProgressRequest names the item to check off. Either Label (the stored
// "{grouping}_{item}" form) or Grouping and Item must be given. Grouping and
// Item may not contain "_", since the stored label could not be split back;
// such requests are rejected with 400.
type ToggleProgressRequest struct {
	Type     progress.Kind `json:"type" binding:"required,oneof=food workout"`
	Label    string        `json:"label"`
	Grouping string        `json:"grouping"`
	Item     string        `json:"item"`
}

func (r ToggleProgressRequest) label() (progress.Label, error) {
	if r.Grouping != "" || r.Item != "" {
		l := progress.Label{Grouping: r.Grouping, Item: r.Item}
		return l, l.Validate()
	}
	return progress.ParseLabel(r.Label)
}

// GetMyProfile godoc
// @Summary Get my profile and plan
// @Tags Client
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Client
// @Failure 404 {object} gin.H "No client profile for this account"
// @Router /client/me [get]
func (h *ClientHandler) GetMyProfile(c *gin.Context) {
	email, err := getUserEmailFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify client.")
		return
	}

	client, err := h.clientService.GetOwnProfile(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// GetTodayProgress godoc
// @Summary Get today's completion record
// @Tags Client
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.ProgressRecord
// @Router /client/progress/today [get]
func (h *ClientHandler) GetTodayProgress(c *gin.Context) {
	email, err := getUserEmailFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify client.")
		return
	}

	rec, err := h.progressService.Today(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ToggleProgress godoc
// @Summary Check or uncheck one food or workout for today
// @Tags Client
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param toggle body ToggleProgressRequest true "Item to toggle"
// @Success 200 {object} service.ToggleResult
// @Failure 400 {object} gin.H "Unknown type or malformed label"
// @Router /client/progress/toggle [post]
func (h *ClientHandler) ToggleProgress(c *gin.Context) {
	var req ToggleProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	label, err := req.label()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	email, err := getUserEmailFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify client.")
		return
	}

	res, err := h.progressService.Toggle(c.Request.Context(), email, req.Type, label)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
