package dto

import (
	"content-forge/models"
	"content-forge/pipeline"
)

// RunRequest is the body of POST /api/v1/runs.
type RunRequest struct {
	Topic          string `json:"topic" binding:"required"`
	PerSourceCount int    `json:"per_source_count" binding:"required,gt=0"`
}

// RunResponse returns the processed items and the run report. The report is
// present even when the run failed at discovery.
type RunResponse struct {
	Items  []models.ProcessedItem `json:"items"`
	Report *models.RunReport      `json:"report"`
}

// NewRunResponse builds a RunResponse from a pipeline result.
func NewRunResponse(result pipeline.Result) RunResponse {
	return RunResponse{
		Items:  result.Items,
		Report: result.Report,
	}
}

// ImageRequest is the body of POST /api/v1/images.
type ImageRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// ImageResponse carries the generated image reference (a data URI).
type ImageResponse struct {
	Image string `json:"image"`
}

// ApplyThumbnailRequest is the body of POST /api/v1/items/thumbnail. The
// caller owns the processed item collection, so the full item travels with
// the request and the updated item travels back.
type ApplyThumbnailRequest struct {
	Item  models.ProcessedItem `json:"item" binding:"required"`
	Image string               `json:"image" binding:"required"`
}
