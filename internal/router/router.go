package router

import (
	"log"

	"github.com/anonto42/water-board/backend/internal/events"
	"github.com/anonto42/water-board/backend/internal/handlers"
	"github.com/anonto42/water-board/backend/internal/middleware"
	"github.com/anonto42/water-board/backend/internal/models"
	"github.com/anonto42/water-board/backend/internal/notify"
	"github.com/anonto42/water-board/backend/internal/repositories"
	"github.com/anonto42/water-board/backend/pkg/config"
	"github.com/anonto42/water-board/backend/pkg/firebase"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, pgdb *gorm.DB, mgdb *mongo.Database, verifier firebase.TokenVerifier, publisher events.Publisher) {
	if err := models.AutoMigrate(pgdb); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	neighborhoodRepo := repositories.NewPostgresNeighborhoodRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	statusRepo := repositories.NewPostgresServiceStatusRepository(pgdb)
	announcementRepo := repositories.NewPostgresAnnouncementRepository(pgdb)
	windowRepo := repositories.NewPostgresServiceWindowRepository(pgdb)
	complaintRepo := repositories.NewPostgresComplaintRepository(pgdb)
	newsRepo := repositories.NewMongoNewsRepository(mgdb)
	activityRepo := repositories.NewMongoActivityLogRepository(mgdb)

	// --- Notification services ---
	engine := notify.NewEngine(userRepo, notificationRepo,
		notify.WithConcurrency(cfg.FanOutConcurrency),
		notify.WithPublisher(publisher),
	)
	inbox := notify.NewInbox(notificationRepo, cfg.PageSize, cfg.MaxPageSize)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(userRepo, neighborhoodRepo, verifier, cfg.JWTSecret)
	userHandler := handlers.NewUserHandler(userRepo, neighborhoodRepo)
	neighborhoodHandler := handlers.NewNeighborhoodHandler(neighborhoodRepo, activityRepo)
	notificationHandler := handlers.NewNotificationHandler(inbox, engine, activityRepo)
	statusHandler := handlers.NewStatusHandler(statusRepo, neighborhoodRepo, engine, activityRepo)
	announcementHandler := handlers.NewAnnouncementHandler(announcementRepo, neighborhoodRepo, engine, activityRepo)
	maintenanceHandler := handlers.NewServiceWindowHandler(models.WindowMaintenance, windowRepo, neighborhoodRepo, engine, activityRepo)
	scheduleHandler := handlers.NewServiceWindowHandler(models.WindowSchedule, windowRepo, neighborhoodRepo, engine, activityRepo)
	newsHandler := handlers.NewNewsHandler(newsRepo, engine, activityRepo)
	complaintHandler := handlers.NewComplaintHandler(complaintRepo, userRepo, engine, activityRepo)
	activityHandler := handlers.NewActivityLogHandler(activityRepo)

	// --- Unprotected routes ---
	authGroup := e.Group("/api/v1/auth")
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	public := e.Group("/api/v1/public")
	neighborhoodHandler.RegisterPublicRoutes(public)
	statusHandler.RegisterPublicRoutes(public)
	announcementHandler.RegisterPublicRoutes(public)
	maintenanceHandler.RegisterPublicRoutes(public)
	scheduleHandler.RegisterPublicRoutes(public)
	newsHandler.RegisterPublicRoutes(public)
	log.Println("Public board routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	userHandler.RegisterProfileRoutes(api)
	notificationHandler.RegisterNotificationRoutes(api)
	complaintHandler.RegisterClientRoutes(api)
	log.Println("Client routes configured.")

	// --- Admin routes ---
	admin := api.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	neighborhoodHandler.RegisterAdminRoutes(admin)
	notificationHandler.RegisterAdminRoutes(admin)
	statusHandler.RegisterAdminRoutes(admin)
	announcementHandler.RegisterAdminRoutes(admin)
	maintenanceHandler.RegisterAdminRoutes(admin)
	scheduleHandler.RegisterAdminRoutes(admin)
	newsHandler.RegisterAdminRoutes(admin)
	complaintHandler.RegisterAdminRoutes(admin)
	activityHandler.RegisterAdminRoutes(admin)
	log.Println("Admin routes configured.")
}
