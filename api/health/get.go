package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/readwise-api/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Report service, database and render cache status
// @Tags         health
// @Produce      json
// @Success      200 {object} types.HealthResponse "Healthy"
// @Failure      503 {object} types.HealthResponse "Database unavailable"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := types.HealthResponse{
			BaseResponse: types.OK("Service is healthy"),
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
			Database:     getDatabaseStatus(deps),
		}
		if deps != nil && deps.CacheStats != nil {
			response.Cache = deps.CacheStats.Stats()
		}

		status := http.StatusOK
		if response.Database["status"] == "unhealthy" {
			status = http.StatusServiceUnavailable
			response.Status = types.StatusError
			response.Message = "Database is unavailable"
		}

		c.JSON(status, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) map[string]interface{} {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return map[string]interface{}{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return map[string]interface{}{"status": "unhealthy", "error": err.Error()}
	}

	return map[string]interface{}{"status": "healthy"}
}
