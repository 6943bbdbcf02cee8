package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pcoshealth/pcos-assistant/backend/config"
	"github.com/pcoshealth/pcos-assistant/backend/internal/database"
	"github.com/pcoshealth/pcos-assistant/backend/internal/middleware"
	"github.com/pcoshealth/pcos-assistant/backend/internal/service"
)

// SetupAPI wires all services and registers every route on the router.
func SetupAPI(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Health check endpoint (no auth required)
	router.GET("/health", healthCheck(db))

	// Redis backs rate limiting of the generation endpoints; the service
	// keeps running without it.
	var rateLimiter *middleware.RateLimiter
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Warning: Failed to connect to Redis for rate limiting: %v", err)
	} else {
		rateLimiter = middleware.NewDietGenerationRateLimiter(redisClient)
	}

	// Initialize services
	inference := service.NewInferenceClient(cfg)
	authService := service.NewAuthService(db, cfg.JWTSecret)
	dietService := service.NewDietService(db, inference)
	chatService := service.NewChatService(inference)

	// Initialize handlers
	authHandler := NewAuthHandler(authService)
	dietHandler := NewDietHandler(dietService, authService, rateLimiter)
	chatHandler := NewChatHandler(chatService)

	// Register routes
	v1 := router.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		dietHandler.RegisterRoutes(v1)
		chatHandler.RegisterRoutes(v1)
	}
}

// healthCheck reports API liveness and database connectivity.
func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "connected"
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			dbStatus = "disconnected"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": dbStatus,
			"api":      "running",
		})
	}
}
