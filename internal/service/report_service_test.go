package service_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"trueiron/coach-app/internal/domain"
	"trueiron/coach-app/internal/metrics"
	"trueiron/coach-app/internal/report"
	repomocks "trueiron/coach-app/internal/repository/mocks"
	"trueiron/coach-app/internal/service"
	svcmocks "trueiron/coach-app/internal/service/mocks"
	"trueiron/coach-app/internal/storage"
)

type memStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
}

func (s *memStorage) PutObject(_ context.Context, key, _ string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return s.putErr
	}
	if s.objects == nil {
		s.objects = make(map[string][]byte)
	}
	s.objects[key] = data
	return nil
}

func (s *memStorage) GetObject(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return data, nil
}

func (s *memStorage) GeneratePresignedDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://files.example.com/" + key + "?sig=1", nil
}

func (s *memStorage) DeleteObject(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

type reportFixture struct {
	clients   *repomocks.MockClientRepository
	generator *svcmocks.MockReportGenerator
	metrics   *metrics.Manager

	trainerID primitive.ObjectID
	client    *domain.Client
}

func newReportFixture(t *testing.T) *reportFixture {
	ctrl := gomock.NewController(t)
	f := &reportFixture{
		clients:   repomocks.NewMockClientRepository(ctrl),
		generator: svcmocks.NewMockReportGenerator(ctrl),
		metrics:   metrics.NewTestManager(),
		trainerID: primitive.NewObjectID(),
	}
	f.client = &domain.Client{ID: primitive.NewObjectID(), TrainerID: f.trainerID, Name: "Jordan"}
	return f
}

func (f *reportFixture) service(archive service.ReportArchive) service.ReportService {
	return service.NewReportService(f.clients, f.generator, archive, f.metrics)
}

var testMetadata = report.Metadata{TransformationName: "Cut", StartDate: "2024-01-01", EndDate: "2024-03-01"}

func TestReportService_Generate_Archived(t *testing.T) {
	f := newReportFixture(t)
	store := &memStorage{}
	svc := f.service(service.ReportArchive{Storage: store, DownloadExpiry: time.Hour})

	f.clients.EXPECT().GetByID(gomock.Any(), f.client.ID).Return(f.client, nil)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in report.Input) (*report.Result, error) {
			assert.Equal(t, "Jordan", in.Client.Name)
			assert.Equal(t, testMetadata, in.Metadata)
			return &report.Result{FileName: "Jordan_Plan_Full.pdf", Data: []byte("%PDF-1.3"), Pages: 5}, nil
		})

	out, err := svc.Generate(context.Background(), f.trainerID, f.client.ID, testMetadata)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Result.Pages)
	assert.True(t, strings.HasPrefix(out.ObjectKey, "reports/"+f.client.ID.Hex()+"/"))
	assert.True(t, strings.HasSuffix(out.ObjectKey, ".pdf"))
	assert.Contains(t, out.DownloadURL, out.ObjectKey)

	stored, err := store.GetObject(context.Background(), out.ObjectKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), stored)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CounterReports))
	assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.GaugeReportsInFlight))
}

func TestReportService_Generate_ArchiveFailureKeepsReport(t *testing.T) {
	f := newReportFixture(t)
	svc := f.service(service.ReportArchive{Storage: &memStorage{putErr: errors.New("bucket missing")}})

	f.clients.EXPECT().GetByID(gomock.Any(), f.client.ID).Return(f.client, nil)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(&report.Result{Data: []byte("pdf"), Pages: 5}, nil)

	out, err := svc.Generate(context.Background(), f.trainerID, f.client.ID, testMetadata)
	require.NoError(t, err)
	assert.Empty(t, out.ObjectKey)
	assert.Empty(t, out.DownloadURL)
	assert.Equal(t, []byte("pdf"), out.Result.Data)
}

func TestReportService_Generate_MetadataAbort(t *testing.T) {
	f := newReportFixture(t)
	svc := f.service(service.ReportArchive{})

	f.clients.EXPECT().GetByID(gomock.Any(), f.client.ID).Return(f.client, nil)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(nil, &report.AbortError{Stage: report.StageCollectingMetadata, Err: report.ErrMissingMetadata})

	_, err := svc.Generate(context.Background(), f.trainerID, f.client.ID, report.Metadata{})
	assert.ErrorIs(t, err, service.ErrValidation)
	assert.ErrorIs(t, err, report.ErrMissingMetadata)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CounterReportsAborted.WithLabelValues(string(report.StageCollectingMetadata))))
	assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.CounterReports))
}

func TestReportService_Generate_AssetAbort(t *testing.T) {
	f := newReportFixture(t)
	svc := f.service(service.ReportArchive{})
	assetErr := &report.AbortError{Stage: report.StageLoadingAssets, Err: errors.New("poster: 404")}

	f.clients.EXPECT().GetByID(gomock.Any(), f.client.ID).Return(f.client, nil)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, assetErr)

	_, err := svc.Generate(context.Background(), f.trainerID, f.client.ID, testMetadata)
	var abort *report.AbortError
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, report.StageLoadingAssets, abort.Stage)
	assert.NotErrorIs(t, err, service.ErrValidation)
}

func TestReportService_Generate_NotManaged(t *testing.T) {
	f := newReportFixture(t)
	svc := f.service(service.ReportArchive{})
	f.client.TrainerID = primitive.NewObjectID()
	f.clients.EXPECT().GetByID(gomock.Any(), f.client.ID).Return(f.client, nil)

	_, err := svc.Generate(context.Background(), f.trainerID, f.client.ID, testMetadata)
	assert.ErrorIs(t, err, service.ErrClientNotManaged)
}

func TestReportService_Generate_NewerRequestSupersedes(t *testing.T) {
	f := newReportFixture(t)
	svc := f.service(service.ReportArchive{})
	started := make(chan struct{})

	f.clients.EXPECT().GetByID(gomock.Any(), f.client.ID).Return(f.client, nil).Times(2)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, in report.Input) (*report.Result, error) {
			if in.Metadata.TransformationName == "first" {
				close(started)
				<-ctx.Done()
				return nil, &report.AbortError{Stage: report.StageRendering, Section: report.SectionCover, Err: ctx.Err()}
			}
			return &report.Result{Data: []byte("second"), Pages: 5}, nil
		}).Times(2)

	firstMD, secondMD := testMetadata, testMetadata
	firstMD.TransformationName = "first"
	secondMD.TransformationName = "second"

	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.Generate(context.Background(), f.trainerID, f.client.ID, firstMD)
		firstErr <- err
	}()
	<-started

	out, err := svc.Generate(context.Background(), f.trainerID, f.client.ID, secondMD)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), out.Result.Data)

	select {
	case err := <-firstErr:
		assert.ErrorIs(t, err, service.ErrReportSuperseded)
	case <-time.After(5 * time.Second):
		t.Fatal("first generation was not cancelled")
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CounterReports))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CounterReportsAborted.WithLabelValues(string(report.StageRendering))))
}

func TestReportService_Generate_CallerCancelled(t *testing.T) {
	f := newReportFixture(t)
	svc := f.service(service.ReportArchive{})
	ctx, cancel := context.WithCancel(context.Background())

	f.clients.EXPECT().GetByID(gomock.Any(), f.client.ID).Return(f.client, nil)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ report.Input) (*report.Result, error) {
			cancel()
			return nil, &report.AbortError{Stage: report.StageRendering, Section: report.SectionFoodChart, Err: ctx.Err()}
		})

	_, err := svc.Generate(ctx, f.trainerID, f.client.ID, testMetadata)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, service.ErrReportSuperseded)
}
