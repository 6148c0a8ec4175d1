package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"content-forge/dto"
	"content-forge/pipeline"
	"content-forge/services"
)

// GenerateHandler runs the full pipeline for a topic. Partial success is
// normal: item-level failures are reflected in the report, not the status
// code. Only a discovery failure maps to an error status, and even then the
// report travels with the response.
func GenerateHandler(svc *services.ForgeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RunRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := svc.Generate(c.Request.Context(), req.Topic, req.PerSourceCount)
		if err != nil {
			var discErr *pipeline.DiscoveryError
			status := http.StatusBadRequest
			if errors.As(err, &discErr) {
				status = http.StatusBadGateway
			}
			c.JSON(status, gin.H{"error": err.Error(), "report": result.Report})
			return
		}

		c.JSON(http.StatusOK, dto.NewRunResponse(result))
	}
}

// GenerateImageHandler produces a thumbnail image for a prompt. Failures
// surface directly to the caller; they never touch a run report.
func GenerateImageHandler(svc *services.ForgeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		image, err := svc.GenerateImage(c.Request.Context(), req.Prompt)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, dto.ImageResponse{Image: image})
	}
}

// ApplyThumbnailHandler swaps a generated image into an item's thumbnail
// field and its markdown frontmatter, returning the updated item.
func ApplyThumbnailHandler(svc *services.ForgeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ApplyThumbnailRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		item, err := svc.ApplyThumbnail(req.Item, req.Image)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}
