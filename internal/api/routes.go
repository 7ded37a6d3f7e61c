package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trueiron/coach-app/internal/domain"
	"trueiron/coach-app/internal/metrics"
	"trueiron/coach-app/internal/service"
)

// RouteDeps carries everything SetupRoutes wires into handlers.
type RouteDeps struct {
	JWTSecret string

	AuthService     service.AuthService
	ClientService   service.ClientService
	CatalogService  service.CatalogService
	PlanService     service.PlanService
	ProgressService service.ProgressService
	ReportService   service.ReportService

	Metrics        *metrics.Manager
	MetricsPath    string
	MetricsHandler http.Handler // Nil disables the metrics endpoint

	RateLimiter    RequestRateLimiter // Nil disables login rate limiting
	LoginPerMinute int
}

func SetupRoutes(router *gin.Engine, deps RouteDeps) {
	authHandler := NewAuthHandler(deps.AuthService)
	trainerHandler := NewTrainerHandler(deps.ClientService, deps.ProgressService)
	clientHandler := NewClientHandler(deps.ClientService, deps.ProgressService)
	catalogHandler := NewCatalogHandler(deps.CatalogService)
	planHandler := NewPlanHandler(deps.PlanService)
	reportHandler := NewReportHandler(deps.ReportService)

	router.Use(RequestLogger())
	if deps.Metrics != nil {
		router.Use(RequestMetrics(deps.Metrics))
	}

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if deps.MetricsHandler != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		router.GET(path, gin.WrapH(deps.MetricsHandler))
	}

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", RateLimit(deps.RateLimiter, "login", deps.LoginPerMinute), authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(AuthMiddleware(deps.JWTSecret))
	{
		protected.GET("/me", authHandler.Me)

		// All routes in this group require the 'trainer' role
		trainerApiGroup := protected.Group("/trainer")
		trainerApiGroup.Use(RoleMiddleware(domain.RoleTrainer))
		{
			trainerApiGroup.POST("/clients", trainerHandler.CreateClient)
			trainerApiGroup.GET("/clients", trainerHandler.GetManagedClients)
			trainerApiGroup.GET("/clients/:clientId", trainerHandler.GetClient)
			trainerApiGroup.PUT("/clients/:clientId", trainerHandler.UpdateClient)
			trainerApiGroup.GET("/clients/:clientId/progress", trainerHandler.GetProgressHistory)

			// --- Plan Management ---
			trainerApiGroup.GET("/clients/:clientId/plan", planHandler.GetPlan)
			trainerApiGroup.PUT("/clients/:clientId/plan", planHandler.ReplacePlan)
			trainerApiGroup.GET("/clients/:clientId/plan/summary", planHandler.GetSummary)
			trainerApiGroup.POST("/clients/:clientId/plan/food", planHandler.AddFood)
			trainerApiGroup.PATCH("/clients/:clientId/plan/food", planHandler.SetFoodGrams)
			trainerApiGroup.DELETE("/clients/:clientId/plan/food/:meal/:index", planHandler.RemoveFood)
			trainerApiGroup.POST("/clients/:clientId/plan/workouts/toggle", planHandler.ToggleWorkout)
			trainerApiGroup.PATCH("/clients/:clientId/plan/workouts", planHandler.UpdateWorkout)
			trainerApiGroup.POST("/clients/:clientId/plan/essentials", planHandler.AddEssential)
			trainerApiGroup.DELETE("/clients/:clientId/plan/essentials/:meal/:index", planHandler.RemoveEssential)

			trainerApiGroup.POST("/clients/:clientId/report", reportHandler.GenerateReport)

			// --- Catalogs ---
			trainerApiGroup.POST("/foods", catalogHandler.CreateFood)
			trainerApiGroup.GET("/foods", catalogHandler.ListFoods)
			trainerApiGroup.DELETE("/foods/:id", catalogHandler.DeleteFood)
			trainerApiGroup.POST("/workouts", catalogHandler.CreateWorkout)
			trainerApiGroup.GET("/workouts", catalogHandler.ListWorkouts)
			trainerApiGroup.DELETE("/workouts/:id", catalogHandler.DeleteWorkout)
			trainerApiGroup.POST("/essentials", catalogHandler.CreateEssential)
			trainerApiGroup.GET("/essentials", catalogHandler.ListEssentials)
			trainerApiGroup.DELETE("/essentials/:id", catalogHandler.DeleteEssential)
		}

		clientApiGroup := protected.Group("/client")
		clientApiGroup.Use(RoleMiddleware(domain.RoleClient))
		{
			clientApiGroup.GET("/me", clientHandler.GetMyProfile)
			clientApiGroup.GET("/progress/today", clientHandler.GetTodayProgress)
			clientApiGroup.POST("/progress/toggle", clientHandler.ToggleProgress)
		}
	}
}
