package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Build information, set by the cmd package from linker flags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// Get handles version requests
// @Summary      Service version
// @Tags         version
// @Produce      json
// @Success      200 {object} map[string]string "Version information"
// @Router       /version [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Readwise Highlights API",
			"version":     Version,
			"commit":      GitCommit,
			"description": "Highlight and annotate reading texts",
			"status":      "running",
		})
	}
}
