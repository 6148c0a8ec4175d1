package models

// GroundingChunk is an opaque provenance record forwarded from the discovery
// collaborator (e.g. a web source the generative model grounded on).
type GroundingChunk struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// RunReport summarizes one pipeline run. It is created at the start of a run,
// mutated only by the orchestrator while the run is in flight, and immutable
// once the run returns. A report is returned even when the run fails.
type RunReport struct {
	RunID             string           `json:"runId"`
	TotalItemsFetched int              `json:"totalItemsFetched"`
	ItemsPerSource    map[Source]int   `json:"itemsPerSource"`
	DuplicatesFound   int              `json:"duplicatesFound"`
	Errors            []string         `json:"errors"`
	Warnings          []string         `json:"warnings"`
	GroundingChunks   []GroundingChunk `json:"groundingChunks,omitempty"`
}

// NewRunReport returns an empty report for a new run.
func NewRunReport(runID string) *RunReport {
	return &RunReport{
		RunID:          runID,
		ItemsPerSource: map[Source]int{},
		Errors:         []string{},
		Warnings:       []string{},
	}
}
