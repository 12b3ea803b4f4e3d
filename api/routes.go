package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/readwise-api/api/documents"
	"github.com/killallgit/readwise-api/api/health"
	"github.com/killallgit/readwise-api/api/highlights"
	"github.com/killallgit/readwise-api/api/render"
	"github.com/killallgit/readwise-api/api/selection"
	"github.com/killallgit/readwise-api/api/types"
	"github.com/killallgit/readwise-api/api/version"
	_ "github.com/killallgit/readwise-api/docs/swagger"
)

// RegisterRoutes registers all API routes. limiter, when not nil, guards
// every /api/v1 route.
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, limiter gin.HandlerFunc) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	if deps == nil || deps.DocumentService == nil || deps.HighlightService == nil ||
		deps.SelectionService == nil || deps.RenderService == nil {
		return fmt.Errorf("api dependencies are incomplete")
	}

	// API v1 routes
	v1 := engine.Group("/api/v1")
	if limiter != nil {
		v1.Use(limiter)
	}

	documentGroup := v1.Group("/documents")
	documents.RegisterRoutes(documentGroup, deps)
	selection.RegisterRoutes(documentGroup, deps)
	highlights.RegisterRoutes(documentGroup, deps)
	render.RegisterRoutes(documentGroup, deps)

	highlights.RegisterHighlightRoutes(v1.Group("/highlights"), deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  types.StatusError,
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
