package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"trueiron/coach-app/internal/api"
	"trueiron/coach-app/internal/config"
	"trueiron/coach-app/internal/logging"
	"trueiron/coach-app/internal/metrics"
	"trueiron/coach-app/internal/report"
	"trueiron/coach-app/internal/repository/mongo"
	"trueiron/coach-app/internal/service"
	"trueiron/coach-app/internal/storage"
)

// @title True Iron Coaching API
// @version 1.0
// @description API for trainers managing client plans, catalogs, progress and PDF reports.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogToStdout:   cfg.Log.Stdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.Format == "json",
	})
	log.Info("starting coach app server ...")

	if cfg.JWT.Secret == "" {
		log.Fatal("jwt secret is not set (JWT_SECRET)")
	}

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("could not connect to mongodb: %s", err)
	}
	defer func() {
		log.Info("disconnecting mongodb ...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Errorf("failed to disconnect mongodb: %s", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := mongo.EnsureIndexes(ctx, appDB); err != nil {
			log.Errorf("ensure indexes: %s", err)
			return
		}
		log.Info("database indexes ensured")
	}()

	// --- Initialize Storage ---
	var fileStorage storage.FileStorage
	if cfg.S3.Enabled {
		fileStorage, err = storage.NewS3Storage(context.Background(), cfg.S3)
		if err != nil {
			log.Fatalf("failed to initialize s3 storage: %s", err)
		}
	} else {
		log.Warn("s3 storage disabled, s3:// assets and report archiving are unavailable")
	}

	// --- Metrics ---
	metricsManager := metrics.NewManager("coach", "server", prometheus.DefaultRegisterer)

	// --- Report Composer ---
	if cfg.Assets.Poster == "" || cfg.Assets.Watermark == "" {
		log.Fatal("report poster and watermark must be configured (ASSETS_POSTER, ASSETS_WATERMARK)")
	}
	assetSource := &report.SchemeSource{
		HTTP: report.NewHTTPSource(&http.Client{Timeout: cfg.Assets.HTTPTimeout}),
	}
	if fileStorage != nil {
		assetSource.Storage = report.NewStorageSource(fileStorage)
	}
	composer := report.NewComposer(report.Config{
		Title:         cfg.Report.Title,
		PosterRef:     cfg.Assets.Poster,
		WatermarkRef:  cfg.Assets.Watermark,
		WorkoutLayout: cfg.Report.WorkoutLayout,
		Guidelines:    cfg.Report.Guidelines,
	}, report.NewCachedSource(assetSource, cfg.Assets.CacheSizeMB*1024*1024, int(cfg.Assets.CacheTTL.Seconds())))

	archive := service.ReportArchive{DownloadExpiry: cfg.Report.DownloadExpiry}
	if cfg.Report.Archive {
		if fileStorage == nil {
			log.Fatal("report archiving requires s3 storage to be enabled")
		}
		archive.Storage = fileStorage
	}

	// --- Rate Limiter ---
	var rateLimiter api.RequestRateLimiter
	if cfg.Redis.Address != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Errorf("close redis client: %s", err)
			}
		}()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatalf("could not connect to redis: %s", err)
		}
		rateLimiter = redis_rate.NewLimiter(rdb)
		log.Infof("login rate limit: %d per minute", cfg.Redis.LoginPerMinute)
	} else {
		log.Warn("redis address not set, login rate limiting disabled")
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	clientRepo := mongo.NewMongoClientRepository(appDB)
	foodRepo := mongo.NewMongoFoodRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	essentialRepo := mongo.NewMongoEssentialRepository(appDB)
	progressRepo := mongo.NewMongoProgressRepository(appDB)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	clientService := service.NewClientService(authService, clientRepo)
	catalogService := service.NewCatalogService(foodRepo, workoutRepo, essentialRepo)
	planService := service.NewPlanService(clientRepo, foodRepo, workoutRepo, metricsManager)
	progressService := service.NewProgressService(progressRepo, clientRepo, metricsManager)
	reportService := service.NewReportService(clientRepo, composer, archive, metricsManager)

	// --- Initialize Gin Engine ---
	if cfg.Log.Level != "debug" && cfg.Log.Level != "trace" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	deps := api.RouteDeps{
		JWTSecret:       authService.GetJWTSecret(),
		AuthService:     authService,
		ClientService:   clientService,
		CatalogService:  catalogService,
		PlanService:     planService,
		ProgressService: progressService,
		ReportService:   reportService,
		Metrics:         metricsManager,
		RateLimiter:     rateLimiter,
		LoginPerMinute:  cfg.Redis.LoginPerMinute,
	}
	if cfg.Metrics.Enabled {
		deps.MetricsPath = cfg.Metrics.Path
		deps.MetricsHandler = promhttp.Handler()
	}
	api.SetupRoutes(router, deps)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("server starting on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server ...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %s", err)
	}

	log.Info("server exiting")
}
