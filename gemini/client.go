// Package gemini implements the four generative collaborators (discovery,
// analysis, draft composition, image generation) on top of the Gemini API.
// A Client is constructed explicitly with its credential and injected into
// each collaborator, so nothing in this package holds global state.
package gemini

import (
	"context"
	"time"

	"google.golang.org/genai"

	"content-forge/logger"
)

// Client wraps the genai client together with the configured model names.
type Client struct {
	genai      *genai.Client
	textModel  string
	imageModel string
}

// NewClient builds a Gemini client. apiKey must be non-empty; callers check
// the credential at startup before constructing any collaborator.
func NewClient(ctx context.Context, apiKey, textModel, imageModel string) (*Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	return &Client{
		genai:      c,
		textModel:  textModel,
		imageModel: imageModel,
	}, nil
}

// generateText runs one text-generation call and logs latency and token
// usage at debug level.
func (c *Client) generateText(ctx context.Context, op, prompt string, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	start := time.Now()
	result, err := c.genai.Models.GenerateContent(ctx, c.textModel, genai.Text(prompt), cfg)
	if err != nil {
		return nil, err
	}

	fields := logger.Fields{
		"op":         op,
		"model":      c.textModel,
		"latency_ms": time.Since(start).Milliseconds(),
	}
	if result.UsageMetadata != nil {
		fields["input_tokens"] = result.UsageMetadata.PromptTokenCount
		fields["output_tokens"] = result.UsageMetadata.CandidatesTokenCount
		fields["total_tokens"] = result.UsageMetadata.TotalTokenCount
	}
	logger.Log.Debugf("gemini call done: %v", fields)

	return result, nil
}
