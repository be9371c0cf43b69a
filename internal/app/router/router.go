package router

import (
	"time"

	"github.com/git-abhijeet/credit-risk/configs"
	"github.com/git-abhijeet/credit-risk/internal/app/handlers"
	"github.com/git-abhijeet/credit-risk/internal/app/middleware"
	"github.com/git-abhijeet/credit-risk/internal/pkg/cache"
	"github.com/git-abhijeet/credit-risk/internal/pkg/db"
	"github.com/git-abhijeet/credit-risk/internal/pkg/downstreams"
	"github.com/git-abhijeet/credit-risk/internal/pkg/services"
	"github.com/git-abhijeet/credit-risk/internal/pkg/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
)

func SetupRouter(mdb *db.MongoDB, redisClient *redis.Client) *gin.Engine {

	r := gin.Default()
	meter := otel.Meter(configs.SERVICE_NAME)
	r.Use(otelgin.Middleware(configs.SERVICE_NAME))
	r.Use(middleware.NewMetricMiddleware(meter))
	r.Use(middleware.AttachRequestDetails())

	// Repositories
	applicationRepo := store.NewApplicationRepository(mdb.Database)
	userRepo := store.NewUserRepository(mdb.Database)

	// Downstreams
	scoringClient := downstreams.NewScoringClient(
		configs.MODEL_SERVICE_URL,
		time.Duration(configs.SCORING_TIMEOUT_MS)*time.Millisecond,
	)
	assistantClient := downstreams.NewAssistantClient(
		configs.RAG_API_URL,
		configs.RAG_API_KEY,
		configs.RAG_DEFAULT_USER_ID,
		time.Duration(configs.RAG_TIMEOUT_MS)*time.Millisecond,
	)

	// Snapshot cache is optional; without Redis every metrics call recomputes.
	var snapshotCache services.SnapshotCache
	if redisClient != nil {
		snapshotCache = cache.NewSnapshotCache(redisClient, time.Duration(configs.METRICS_CACHE_TTL_SECONDS)*time.Second)
	}

	// Services
	ingestionService := services.NewIngestionService(applicationRepo, scoringClient)
	metricsService := services.NewMetricsService(applicationRepo, snapshotCache)
	listingService := services.NewListingService(applicationRepo, configs.ADMIN_LIST_DEFAULT_LIMIT, configs.ADMIN_LIST_MAX_LIMIT)
	authService := services.NewAuthService(userRepo, configs.BCRYPT_COST)

	// Handlers
	applicationHandler := handlers.NewApplicationHandler(ingestionService)
	metricsHandler := handlers.NewMetricsHandler(metricsService)
	applicationsListHandler := handlers.NewApplicationsListHandler(listingService)
	authHandler := handlers.NewAuthHandler(authService)
	riskScoreHandler := handlers.NewRiskScoreHandler(scoringClient)
	chatHandler := handlers.NewChatHandler(assistantClient)

	api := r.Group("/api")
	{
		api.POST("/loan-application", applicationHandler.SubmitApplication)
		api.GET("/admin/metrics", metricsHandler.AdminMetrics)
		api.GET("/admin/applications", applicationsListHandler.AdminApplications)
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.POST("/risk-score", riskScoreHandler.RiskScore)
		api.POST("/rag-chat", chatHandler.Chat)
	}

	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"message": "Health Check"})
	})

	return r
}
