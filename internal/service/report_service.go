package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"trueiron/coach-app/internal/metrics"
	"trueiron/coach-app/internal/report"
	"trueiron/coach-app/internal/repository"
	"trueiron/coach-app/internal/storage"
)

// ReportGenerator renders a plan report.
type ReportGenerator interface {
	Generate(ctx context.Context, in report.Input) (*report.Result, error)
}

// ReportOutput is a rendered report and, when archived, its download link.
type ReportOutput struct {
	Result      *report.Result
	ObjectKey   string
	DownloadURL string
}

type ReportService interface {
	// Generate renders the client's plan. A newer call for the same client
	// cancels an older one still running, which then fails with ErrReportSuperseded.
	Generate(ctx context.Context, trainerID, clientID primitive.ObjectID, md report.Metadata) (*ReportOutput, error)
}

// ReportArchive configures optional upload of rendered reports.
type ReportArchive struct {
	Storage        storage.FileStorage // Nil disables archiving
	DownloadExpiry time.Duration
}

type reportService struct {
	clientRepo repository.ClientRepository
	generator  ReportGenerator
	archive    ReportArchive
	metrics    *metrics.Manager

	mu       sync.Mutex
	inFlight map[primitive.ObjectID]*generation
}

type generation struct {
	cancel context.CancelFunc
}

func NewReportService(
	clientRepo repository.ClientRepository,
	generator ReportGenerator,
	archive ReportArchive,
	metricsManager *metrics.Manager,
) ReportService {
	return &reportService{
		clientRepo: clientRepo,
		generator:  generator,
		archive:    archive,
		metrics:    metricsManager,
		inFlight:   make(map[primitive.ObjectID]*generation),
	}
}

func (s *reportService) Generate(ctx context.Context, trainerID, clientID primitive.ObjectID, md report.Metadata) (*ReportOutput, error) {
	client, err := loadManagedClient(ctx, s.clientRepo, trainerID, clientID)
	if err != nil {
		return nil, err
	}

	ctx, gen := s.begin(ctx, clientID)
	defer s.end(clientID, gen)

	s.metrics.GaugeReportsInFlight.Inc()
	defer s.metrics.GaugeReportsInFlight.Dec()
	start := time.Now()

	res, err := s.generator.Generate(ctx, report.Input{Client: *client, Metadata: md})
	s.metrics.HistReportDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		stage := report.StageRendering
		var abort *report.AbortError
		if errors.As(err, &abort) {
			stage = abort.Stage
		}
		s.metrics.CounterReportsAborted.WithLabelValues(string(stage)).Inc()

		if errors.Is(context.Cause(ctx), errSuperseded) {
			return nil, ErrReportSuperseded
		}
		if stage == report.StageCollectingMetadata {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		log.WithField("client_id", clientID.Hex()).Warnf("report generation aborted: %s", err)
		return nil, err
	}
	if errors.Is(context.Cause(ctx), errSuperseded) {
		s.metrics.CounterReportsAborted.WithLabelValues(string(report.StageRendering)).Inc()
		return nil, ErrReportSuperseded
	}
	s.metrics.CounterReports.Inc()

	out := &ReportOutput{Result: res}
	if s.archive.Storage != nil {
		if err := s.store(ctx, clientID, out); err != nil {
			// The PDF is still returned; only the archived copy is missing
			log.WithField("client_id", clientID.Hex()).Errorf("archive report: %s", err)
		}
	}
	return out, nil
}

var errSuperseded = errors.New("superseded")

// begin registers a new generation for the client, cancelling any running one.
func (s *reportService) begin(ctx context.Context, clientID primitive.ObjectID) (context.Context, *generation) {
	ctx, cancel := context.WithCancelCause(ctx)
	gen := &generation{cancel: func() { cancel(errSuperseded) }}

	s.mu.Lock()
	if prev, ok := s.inFlight[clientID]; ok {
		prev.cancel()
	}
	s.inFlight[clientID] = gen
	s.mu.Unlock()
	return ctx, gen
}

func (s *reportService) end(clientID primitive.ObjectID, gen *generation) {
	s.mu.Lock()
	if s.inFlight[clientID] == gen {
		delete(s.inFlight, clientID)
	}
	s.mu.Unlock()
	gen.cancel()
}

func (s *reportService) store(ctx context.Context, clientID primitive.ObjectID, out *ReportOutput) error {
	key := fmt.Sprintf("reports/%s/%s.pdf", clientID.Hex(), uuid.NewString())
	if err := s.archive.Storage.PutObject(ctx, key, "application/pdf", out.Result.Data); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	url, err := s.archive.Storage.GeneratePresignedDownloadURL(ctx, key, s.archive.DownloadExpiry)
	if err != nil {
		return fmt.Errorf("presign %s: %w", key, err)
	}
	out.ObjectKey, out.DownloadURL = key, url
	return nil
}
