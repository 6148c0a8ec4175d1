// Package pipeline contains the content generation pipeline: collaborator
// contracts, the run orchestrator and its error taxonomy. The generative
// collaborators are modeled as single-method interfaces so tests can swap in
// deterministic fakes without network access.
package pipeline

import (
	"context"

	"content-forge/models"
)

// ContentSource discovers raw content items for a topic. Implementations
// must attempt perSourceCount items for each of the three fixed source
// categories, but the count actually returned is not guaranteed; callers
// tolerate any count including zero. A failure to interpret the underlying
// response as a well-formed item list is a *DiscoveryError and aborts the
// whole run.
type ContentSource interface {
	Discover(ctx context.Context, topic string, perSourceCount int) ([]models.RawContentItem, []models.GroundingChunk, error)
}

// Analyzer derives structured metadata from one raw item. Failures are
// item-scoped (*AnalysisError) and never abort a run.
type Analyzer interface {
	Analyze(ctx context.Context, item models.RawContentItem) (models.AnalyzedData, error)
}

// DraftComposer turns a raw item plus its analysis into a markdown draft.
// Failures are item-scoped (*ComposeError) and never abort a run.
type DraftComposer interface {
	Compose(ctx context.Context, item models.RawContentItem, analysis models.AnalyzedData) (string, error)
}

// ImageGenerator produces a thumbnail image reference (data URI or URL) from
// a prompt. It runs outside pipeline runs; failures surface directly to the
// caller as *ImageGenError and are never aggregated into a RunReport.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Result is the outcome of one pipeline run. Report is always populated,
// even when the run failed at discovery and Items is empty.
type Result struct {
	Items  []models.ProcessedItem `json:"items"`
	Report *models.RunReport      `json:"report"`
}
