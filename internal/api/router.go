package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/carepath/learning-platform/docs"
	"github.com/carepath/learning-platform/internal/api/handler"
	"github.com/carepath/learning-platform/internal/api/middleware"
	"github.com/carepath/learning-platform/internal/core/auth"
	"github.com/carepath/learning-platform/internal/core/domain"
	"github.com/carepath/learning-platform/internal/core/ports"
	"github.com/carepath/learning-platform/internal/core/service"
	mongodb "github.com/carepath/learning-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/carepath/learning-platform/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, reval ports.Revalidator, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("carelearn"))
	limiter := middleware.NewRateLimiter(middleware.DefaultRateLimitConfig())
	e.Use(limiter.Middleware())
	e.Server.RegisterOnShutdown(limiter.Stop)
	e.Use(middleware.Session(jwtSecret))

	// --- Repositories ---
	profileRepo := mongodb.NewProfileRepository(db)
	programRepo := mongodb.NewProgramRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	moduleRepo := mongodb.NewModuleRepository(db)
	contentRepo := mongodb.NewContentRepository(db)
	assessmentRepo := mongodb.NewAssessmentRepository(db)
	questionRepo := mongodb.NewQuestionRepository(db)
	moodRepo := mongodb.NewMoodRepository(db)
	enrollmentRepo := mongodb.NewEnrollmentRepository(db)

	// --- Services ---
	guard := auth.NewGuard(profileRepo, log)
	authService := service.NewAuthService(profileRepo, jwtSecret, tokenTTL, log)
	programService := service.NewProgramService(guard, programRepo, categoryRepo, reval, log)
	moduleService := service.NewModuleService(guard, moduleRepo, programRepo, reval, log)
	contentService := service.NewContentService(guard, contentRepo, moduleRepo, reval, log)
	assessmentService := service.NewAssessmentService(guard, assessmentRepo, questionRepo, moduleRepo, reval, log)
	moodService := service.NewMoodService(guard, moodRepo, reval, log)
	enrollmentService := service.NewEnrollmentService(guard, enrollmentRepo, programRepo, categoryRepo, reval, log)
	profileService := service.NewProfileService(guard)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	programHandler := handler.NewProgramHandler(programService)
	contentHandler := handler.NewContentHandler(moduleService, contentService)
	assessmentHandler := handler.NewAssessmentHandler(assessmentService)
	moodHandler := handler.NewMoodHandler(moodService, redisdb.NewViewCache(rdb))
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)
	profileHandler := handler.NewProfileHandler(profileService)
	pageHandler := handler.NewPageHandler()
	healthHandler := handler.NewHealthHandler(db, rdb)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Pages ---
	e.GET("/login", pageHandler.Login)
	e.GET("/admin", pageHandler.Admin, middleware.PageGuard(guard, domain.RoleAdmin))
	e.GET("/home", pageHandler.Home, middleware.PageGuard(guard, domain.RolePatient))

	// --- Data actions ---
	v1 := e.Group("/v1")

	v1.GET("/me", profileHandler.Me)

	v1.POST("/programs", programHandler.Create)
	v1.GET("/programs", programHandler.List)
	v1.GET("/programs/:id", programHandler.Get)
	v1.PUT("/programs/:id", programHandler.Update)
	v1.DELETE("/programs/:id", programHandler.Delete)
	v1.PUT("/programs/:id/categories", programHandler.AssignCategories)

	v1.POST("/categories", programHandler.CreateCategory)
	v1.GET("/categories", programHandler.ListCategories)

	v1.POST("/programs/:id/modules", contentHandler.CreateModule)
	v1.GET("/programs/:id/modules", contentHandler.ListModules)
	v1.PUT("/modules/:id", contentHandler.UpdateModule)
	v1.DELETE("/modules/:id", contentHandler.DeleteModule)

	v1.POST("/modules/:id/contents", contentHandler.CreateContent)
	v1.GET("/modules/:id/contents", contentHandler.ListContents)
	v1.GET("/contents/:id", contentHandler.GetContent)
	v1.PUT("/contents/:id", contentHandler.UpdateContent)
	v1.DELETE("/contents/:id", contentHandler.DeleteContent)

	v1.POST("/modules/:id/assessments", assessmentHandler.Create)
	v1.GET("/modules/:id/assessments", assessmentHandler.List)
	v1.DELETE("/assessments/:id", assessmentHandler.Delete)
	v1.POST("/assessments/:id/questions", assessmentHandler.CreateQuestion)
	v1.GET("/assessments/:id/questions", assessmentHandler.ListQuestions)
	v1.PUT("/questions/:id", assessmentHandler.UpdateQuestion)
	v1.DELETE("/questions/:id", assessmentHandler.DeleteQuestion)

	v1.POST("/moods", moodHandler.Log)
	v1.GET("/moods", moodHandler.Recent)

	v1.POST("/enrollments", enrollmentHandler.Enroll)
	v1.GET("/enrollments", enrollmentHandler.Mine)
	v1.GET("/admin/enrollments/stats", enrollmentHandler.Stats)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
