package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/api/handler"
	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/api/middleware"
	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/domain"
	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/core/service"
	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/infrastructure/config"
	mongodb "github.com/Sk1kavi/Hostel-Maintenance-App/internal/infrastructure/db/mongo"
	redisdb "github.com/Sk1kavi/Hostel-Maintenance-App/internal/infrastructure/db/redis"
	"github.com/Sk1kavi/Hostel-Maintenance-App/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hostel_maintenance"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hostelRepo := mongodb.NewHostelRepository(db)
	complaintRepo := mongodb.NewComplaintRepository(db)
	hostelCache := redisdb.NewHostelCache(rdb)
	imageStore := storage.NewCloudinaryStore(cfg.Cloudinary.CloudName, cfg.Cloudinary.UploadPreset)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour)
	complaintService := service.NewComplaintService(complaintRepo, userRepo, imageStore, log)
	hostelService := service.NewHostelService(hostelRepo, userRepo, complaintRepo, hostelCache, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	complaintHandler := handler.NewComplaintHandler(complaintService)
	hostelHandler := handler.NewHostelHandler(hostelService)
	profileHandler := handler.NewProfileHandler(authService)
	adminHandler := handler.NewAdminHandler(userService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/hostels", hostelHandler.List)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated routes ---
	auth := e.Group("", authMiddleware)

	auth.GET("/complaints", complaintHandler.List)
	auth.POST("/complaints", complaintHandler.Create)
	auth.GET("/complaints/:id", complaintHandler.Get)
	auth.PUT("/complaints/:id", complaintHandler.Transition)

	auth.GET("/profile", profileHandler.Get)
	auth.PUT("/profile", profileHandler.Update)
	auth.PUT("/change-password", profileHandler.ChangePassword)

	// --- Admin routes ---
	admin := auth.Group("/admin", middleware.RequireRole(domain.RoleAdmin))

	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/toggle-status", adminHandler.ToggleUserStatus)
	admin.PUT("/users/:id/reset-password", adminHandler.ResetUserPassword)

	admin.POST("/hostels", hostelHandler.Create)
	admin.PUT("/hostels/:id", hostelHandler.Update)
	admin.PUT("/hostels/:id/toggle-status", hostelHandler.ToggleStatus)
	admin.DELETE("/hostels/:id", hostelHandler.Delete)

	return e
}
