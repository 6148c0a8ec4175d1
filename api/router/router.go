package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content-forge/api/handlers"
	"content-forge/services"
)

// New builds the gin engine for the content-forge API.
func New(svc *services.ForgeService) *gin.Engine {
	r := gin.Default()

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/runs", handlers.GenerateHandler(svc))
		api.POST("/images", handlers.GenerateImageHandler(svc))
		api.POST("/items/thumbnail", handlers.ApplyThumbnailHandler(svc))
	}

	return r
}
