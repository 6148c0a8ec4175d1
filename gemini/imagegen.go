package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"google.golang.org/genai"

	"content-forge/logger"
	"content-forge/pipeline"
)

// ImageGen produces a single 16:9 thumbnail image for a prompt and returns
// it as a jpeg data URI. It runs outside pipeline runs, on demand per item.
type ImageGen struct {
	client *Client
}

func NewImageGen(client *Client) *ImageGen {
	return &ImageGen{client: client}
}

// GenerateImage implements pipeline.ImageGenerator. Failures are wrapped as
// *pipeline.ImageGenError and surfaced directly to the caller.
func (g *ImageGen) GenerateImage(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	result, err := g.client.genai.Models.GenerateImages(ctx, g.client.imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: "image/jpeg",
		AspectRatio:    "16:9",
	})
	if err != nil {
		return "", &pipeline.ImageGenError{Err: err}
	}

	if len(result.GeneratedImages) == 0 || result.GeneratedImages[0].Image == nil {
		return "", &pipeline.ImageGenError{Err: fmt.Errorf("no image was generated by the model")}
	}

	logger.Log.Debugf("gemini call done: op=generate_image model=%s latency_ms=%d",
		g.client.imageModel, time.Since(start).Milliseconds())

	encoded := base64.StdEncoding.EncodeToString(result.GeneratedImages[0].Image.ImageBytes)
	return "data:image/jpeg;base64," + encoded, nil
}
