// Package v1 provides HTTP API version 1.
package v1

import (
	"time"

	"github.com/gin-gonic/gin"

	"skyfolio/internal/domain/auth"
	"skyfolio/internal/domain/content"
	"skyfolio/internal/infrastructure/http/v1/handlers"
	"skyfolio/internal/infrastructure/http/v1/middleware"
	"skyfolio/internal/infrastructure/storage/postgres"
	"skyfolio/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks).
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuthService for the login endpoint
	AuthService *auth.Service

	// Assembler builds populated page schemas
	Assembler *content.Assembler

	// RequestTimeout bounds each request; zero disables the deadline
	RequestTimeout time.Duration
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Timeout(cfg.RequestTimeout))
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	baseHandler := handlers.NewBaseHandler()

	// Health endpoints (no auth)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// Login (no auth)
	if cfg.AuthService != nil {
		authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)
		router.POST("/api/auth/login", authHandler.Login)
	}

	// Admin content API - owner scope comes from the validated session
	contentHandler := handlers.NewAdminContentHandler(baseHandler, cfg.Assembler)
	admin := router.Group("/api/admin")
	admin.Use(middleware.Auth(cfg.JWTValidator))
	{
		admin.GET("/pages", contentHandler.ListPages)
		admin.GET("/page-content/:pageIdentifier", contentHandler.GetPageContent)
	}

	// Admin UI shells (the API calls inside require the session token)
	uiHandler := handlers.NewAdminUIHandler()
	router.GET("/admin", uiHandler.Dashboard)
	router.GET("/admin/edit/:slug", uiHandler.Edit)

	return router
}
