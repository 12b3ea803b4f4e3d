package selection

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/readwise-api/api/types"
)

// RegisterRoutes registers selection routes on the /documents group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/:id/selection", Capture(deps))
	router.GET("/:id/selection", Get(deps))
	router.DELETE("/:id/selection", Cancel(deps))
	router.POST("/:id/selection/confirm", Confirm(deps))
}
