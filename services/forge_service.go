package services

import (
	"context"

	"content-forge/config"
	"content-forge/gemini"
	"content-forge/markdown"
	"content-forge/models"
	"content-forge/pipeline"
)

// ForgeService is the application-facing surface over the pipeline: it owns
// the orchestrator and the on-demand image generator, and applies generated
// thumbnails back onto items.
type ForgeService struct {
	orchestrator *pipeline.Orchestrator
	images       pipeline.ImageGenerator
}

// NewForgeService wires a service from explicit collaborators. Tests pass
// fakes here; production callers use NewGeminiForgeService.
func NewForgeService(source pipeline.ContentSource, analyzer pipeline.Analyzer, composer pipeline.DraftComposer, images pipeline.ImageGenerator) *ForgeService {
	return &ForgeService{
		orchestrator: pipeline.NewOrchestrator(source, analyzer, composer),
		images:       images,
	}
}

// NewGeminiForgeService builds the production service backed by the Gemini
// collaborators, using the configured model names and the credential from
// the environment. A missing credential fails here, before any run starts.
func NewGeminiForgeService(ctx context.Context) (*ForgeService, error) {
	apiKey, err := config.GeminiAPIKey()
	if err != nil {
		return nil, err
	}

	cfg := config.GetConfig()
	client, err := gemini.NewClient(ctx, apiKey, cfg.Gemini.TextModel, cfg.Gemini.ImageModel)
	if err != nil {
		return nil, err
	}

	return NewForgeService(
		gemini.NewDiscovery(client),
		gemini.NewAnalyzer(client),
		gemini.NewComposer(client),
		gemini.NewImageGen(client),
	), nil
}

// Generate executes one pipeline run.
func (s *ForgeService) Generate(ctx context.Context, topic string, perSourceCount int) (pipeline.Result, error) {
	return s.orchestrator.Run(ctx, topic, perSourceCount)
}

// GenerateImage produces a thumbnail image reference for a prompt, outside
// any pipeline run.
func (s *ForgeService) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return s.images.GenerateImage(ctx, prompt)
}

// ApplyThumbnail sets image as the item's thumbnail: the thumbnailUrl field
// is replaced and the matching frontmatter line inside the markdown is
// substituted in place, leaving the rest of the draft untouched.
func (s *ForgeService) ApplyThumbnail(item models.ProcessedItem, image string) (models.ProcessedItem, error) {
	updated, err := markdown.ApplyThumbnail(item.Markdown, image)
	if err != nil {
		return models.ProcessedItem{}, err
	}

	item.ThumbnailURL = image
	item.Markdown = updated
	return item, nil
}
