package service

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks trueiron/coach-app/internal/service AuthService,CatalogService,ClientService,PlanService,ProgressService,ReportGenerator,ReportService

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")

	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")

	ErrClientNotFound   = errors.New("client not found")
	ErrClientNotManaged = errors.New("client is not managed by this trainer")

	ErrCatalogItemNotFound = errors.New("catalog item not found")
	ErrPlanConflict        = errors.New("plan was changed by someone else, reload and retry")
	ErrProgressNotFound    = errors.New("no progress recorded for this date")

	ErrReportSuperseded = errors.New("report generation was superseded by a newer request")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
