package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freelance_backend/database"
	"freelance_backend/internal/auth"
	"freelance_backend/internal/config"
	"freelance_backend/internal/handlers"
	"freelance_backend/internal/logger"
	"freelance_backend/internal/middleware"
	"freelance_backend/internal/routes"
	"freelance_backend/internal/services"
	"freelance_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	shutdownTimeout        = 10 * time.Second
	limiterCleanupInterval = 10 * time.Minute
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Connect(cfg.Database, gormLogLevel(cfg.Server.Env))
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(gormDB); err != nil {
			logger.Fatal("Failed to migrate database", "error", err)
		}
		logger.Info("Database schema migrated")
	}

	stop := make(chan struct{})
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	limiter.StartCleanup(limiterCleanupInterval, stop)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           setupRouter(cfg, gormDB, limiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")
	close(stop)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Failed to close database", "error", err)
	}
	logger.Info("Server exited")
}

// SetupRouter builds the full gin engine on top of an open database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	return setupRouter(cfg, gormDB, limiter)
}

func setupRouter(cfg *config.Config, gormDB *gorm.DB, limiter *middleware.RateLimiter) *gin.Engine {
	// 1. Services
	serviceContainer := initializeServices(cfg)

	// 2. Handlers
	appHandlers := initializeHandlers(serviceContainer)

	// 3. Gin
	ginRouter := initializeGinRouter(cfg, gormDB)

	// 4. Routes
	resolver := auth.NewResolver(cfg.JWT.Secret, cfg.JWT.Issuer, auth.SessionPolicy{
		EphemeralTTL:    cfg.Session.EphemeralTTL(),
		PersistentTTL:   cfg.Session.PersistentTTL(),
		AllowPersistent: cfg.Session.AllowPersistent,
	})
	routes.RegisterRoutes(ginRouter, appHandlers, routes.Middleware{
		Auth:      middleware.AuthMiddleware(resolver),
		RateLimit: limiter.Handler(),
	})

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	return services.NewServiceContainer(cfg.Lifecycle)
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, services.ApplicationService, services.ApplicationStatsService),
		HealthHandler:      handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}

func gormLogLevel(env string) gormlogger.LogLevel {
	switch env {
	case "production":
		return gormlogger.Error
	case "test":
		return gormlogger.Silent
	default:
		return gormlogger.Warn
	}
}
