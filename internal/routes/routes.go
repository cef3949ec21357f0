package routes

import (
	"freelance_backend/internal/handlers"
	"freelance_backend/internal/logger"
	"freelance_backend/internal/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Middleware groups the per-route middleware the handlers need.
type Middleware struct {
	Auth      gin.HandlerFunc
	RateLimit gin.HandlerFunc
}

// RegisterRoutes registers the HTTP API, health, metrics and swagger routes.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	mw Middleware,
) {
	appHandlers.HealthHandler.RegisterRoutes(ginRouter)
	ginRouter.GET("/metrics", gin.WrapH(metrics.Handler()))
	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.ApplicationHandler.RegisterRoutes(api, mw.Auth, mw.RateLimit)
	}
	logger.Debug("HTTP routes registered", "count", len(ginRouter.Routes()))
}
