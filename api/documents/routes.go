package documents

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/readwise-api/api/types"
)

// RegisterRoutes registers document routes on the /documents group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", Create(deps))
	router.GET("", List(deps))
	router.POST("/upload", Upload(deps))
	router.POST("/sample", Sample(deps))
	router.GET("/samples", ListSamples(deps))
	router.GET("/:id", Get(deps))
	router.DELETE("/:id", Delete(deps))
}
