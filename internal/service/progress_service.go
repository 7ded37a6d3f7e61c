package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"trueiron/coach-app/internal/domain"
	"trueiron/coach-app/internal/metrics"
	"trueiron/coach-app/internal/progress"
	"trueiron/coach-app/internal/repository"
)

var tracer = otel.Tracer("trueiron/coach-app/internal/service")

// HistoryEntry is a past day's record with its estimated calories against the
// client's current food plan.
type HistoryEntry struct {
	Record            domain.ProgressRecord `json:"record"`
	EstimatedCalories float64               `json:"estimatedCalories"`
}

// ToggleResult reports the new state of the toggled item and the saved record.
type ToggleResult struct {
	Completed bool                  `json:"completed"`
	Record    domain.ProgressRecord `json:"record"`
}

type ProgressService interface {
	// Today returns the client's record for the current UTC day, empty if none.
	Today(ctx context.Context, email string) (*domain.ProgressRecord, error)
	// Toggle flips one item of today's record and writes the record back whole.
	Toggle(ctx context.Context, email string, kind progress.Kind, label progress.Label) (*ToggleResult, error)
	History(ctx context.Context, trainerID, clientID primitive.ObjectID, date string) (*HistoryEntry, error)
}

type progressService struct {
	progressRepo repository.ProgressRepository
	clientRepo   repository.ClientRepository
	metrics      *metrics.Manager
	now          func() time.Time
}

func NewProgressService(
	progressRepo repository.ProgressRepository,
	clientRepo repository.ClientRepository,
	metricsManager *metrics.Manager,
) ProgressService {
	return &progressService{
		progressRepo: progressRepo,
		clientRepo:   clientRepo,
		metrics:      metricsManager,
		now:          time.Now,
	}
}

func (s *progressService) Today(ctx context.Context, email string) (*domain.ProgressRecord, error) {
	session, err := progress.OpenSession(ctx, s.progressRepo, normalizeEmail(email), progress.Today(s.now()))
	if err != nil {
		return nil, err
	}
	rec := session.Record()
	return &rec, nil
}

func (s *progressService) Toggle(ctx context.Context, email string, kind progress.Kind, label progress.Label) (res *ToggleResult, err error) {
	ctx, span := tracer.Start(ctx, "progressService.toggle")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	if !kind.Valid() {
		return nil, validationError("type must be %q or %q", progress.KindFood, progress.KindWorkout)
	}
	if err := label.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	span.SetAttributes(attribute.String("progress.kind", string(kind)), attribute.String("progress.label", label.String()))

	email = normalizeEmail(email)
	date := progress.Today(s.now())
	session, err := progress.OpenSession(ctx, s.progressRepo, email, date)
	if err != nil {
		return nil, err
	}
	completed, err := session.Toggle(ctx, kind, label)
	if err != nil {
		log.WithFields(log.Fields{"email": email, "date": date}).Errorf("toggle progress: %s", err)
		return nil, err
	}
	s.metrics.CounterProgressToggles.WithLabelValues(string(kind)).Inc()

	return &ToggleResult{Completed: completed, Record: session.Record()}, nil
}

func (s *progressService) History(ctx context.Context, trainerID, clientID primitive.ObjectID, date string) (*HistoryEntry, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, validationError("date must be YYYY-MM-DD")
	}
	client, err := loadManagedClient(ctx, s.clientRepo, trainerID, clientID)
	if err != nil {
		return nil, err
	}

	rec, err := progress.History(ctx, s.progressRepo, client.Email, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgressNotFound
		}
		return nil, fmt.Errorf("progress history: %w", err)
	}
	return &HistoryEntry{
		Record:            *rec,
		EstimatedCalories: progress.EstimatedCalories(*rec, client.Plan.Food),
	}, nil
}
