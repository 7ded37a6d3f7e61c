package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"trueiron/coach-app/internal/report"
	"trueiron/coach-app/internal/service"
)

// respondError maps a service error to its HTTP status. Unknown errors are
// logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	var abort *report.AbortError
	switch {
	case errors.Is(err, service.ErrValidation):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAuthenticationFailed):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrClientNotManaged):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrCatalogItemNotFound),
		errors.Is(err, service.ErrProgressNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUserAlreadyExists),
		errors.Is(err, service.ErrPlanConflict),
		errors.Is(err, service.ErrReportSuperseded):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.As(err, &abort) && abort.Stage == report.StageLoadingAssets:
		abortWithError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, service.ErrHashingFailed), errors.Is(err, service.ErrTokenGeneration):
		abortWithError(c, http.StatusInternalServerError, err.Error())
	default:
		_ = c.Error(err)
		log.WithField("path", c.Request.URL.Path).Errorf("request failed: %s", err)
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
