package render

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/readwise-api/api/types"
)

// RegisterRoutes registers render routes on the /documents group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:id/render", Get(deps))
}
