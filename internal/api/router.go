package api

import (
	"context"
	"net/http"
	"time"

	"github.com/collections-admin-api/internal/auth"
	"github.com/collections-admin-api/internal/config"
	"github.com/collections-admin-api/internal/metrics"
	"github.com/collections-admin-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const serviceName = "collections-admin-api"

// HealthChecker reports whether a backing store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckers fails on the first unhealthy checker
type HealthCheckers []HealthChecker

func (hs HealthCheckers) HealthCheck(ctx context.Context) error {
	for _, h := range hs {
		if err := h.HealthCheck(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Dependencies are the optional collaborators of the router
type Dependencies struct {
	Metrics *metrics.Metrics
	// Health is pinged by /health; nil reports healthy without a check
	Health HealthChecker
}

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, deps Dependencies, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())
	if deps.Metrics != nil {
		router.Use(metricsMiddleware(deps.Metrics))
	}

	// Handlers
	collectionHandler := NewCollectionHandler(services, cfg, log)
	userHandler := NewUserHandler(services, cfg, log)

	router.GET("/health", healthCheck(deps.Health))
	router.GET("/metrics", metricsHandler(services))
	if deps.Metrics != nil {
		router.GET("/metrics/prometheus", gin.WrapH(deps.Metrics.Handler()))
	}

	// API v1
	v1 := router.Group("/v1")
	if cfg.Auth.Enabled() {
		tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
		v1.Use(adminAuthMiddleware(tokens, cfg.Auth.AdminRole))
	}
	{
		collections := v1.Group("/collections")
		{
			collections.GET("/options", collectionHandler.Options)
			collections.GET("", collectionHandler.List)
			collections.POST("", collectionHandler.Create)
			collections.GET("/:id", collectionHandler.Get)
			collections.PUT("/:id", collectionHandler.Update)
			collections.DELETE("/:id", collectionHandler.Delete)
		}

		users := v1.Group("/users")
		{
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.Get)
			users.DELETE("/:id", userHandler.Delete)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(health HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := health.HealthCheck(ctx); err != nil {
				status, code = "unhealthy", http.StatusServiceUnavailable
			}
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   serviceName,
		})
	}
}

// metricsHandler returns record counts
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		collectionsCount, _ := services.Collection.Count(ctx)
		usersCount, _ := services.User.Count(ctx)

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"collections": collectionsCount,
				"users":       usersCount,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
