package highlights

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/readwise-api/api/types"
)

// RegisterRoutes registers document highlight routes on the /documents group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/:id/highlights", Add(deps))
	router.GET("/:id/highlights", List(deps))
}

// RegisterHighlightRoutes registers routes addressing highlights by their own id
func RegisterHighlightRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:id", Get(deps))
	router.PUT("/:id/note", UpdateNote(deps))
	router.DELETE("/:id", Delete(deps))
}
