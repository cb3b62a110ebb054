package http

import (
	"github.com/gin-gonic/gin"

	"github.com/calconv/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.SetHTMLTemplate(loadTemplates())

	router.GET("/health", handler.HealthCheck)

	limited := router.Group("/", RateLimitMiddleware(cfg.RateLimit.PerIP))
	{
		// Converter page
		limited.GET("/", handler.Index)
		limited.POST("/convert", handler.ConvertPage)

		// API v1 routes
		v1 := limited.Group("/api/v1")
		{
			v1.GET("/foods/search", handler.SearchFoods)
			v1.POST("/conversions", handler.CreateConversion)
		}
	}

	return router
}
