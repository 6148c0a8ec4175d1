package pipeline

import "fmt"

// DiscoveryError means the discovery collaborator returned output that could
// not be interpreted as a well-formed item list. Run-fatal: the whole run
// aborts with no partial results.
type DiscoveryError struct {
	Err error
}

func (e *DiscoveryError) Error() string { return fmt.Sprintf("discovery failed: %v", e.Err) }
func (e *DiscoveryError) Unwrap() error { return e.Err }

// AnalysisError means analyzing a single item failed. Item-scoped: the
// orchestrator records it and continues with the next item.
type AnalysisError struct {
	Err error
}

func (e *AnalysisError) Error() string { return fmt.Sprintf("analysis failed: %v", e.Err) }
func (e *AnalysisError) Unwrap() error { return e.Err }

// ComposeError means composing a markdown draft for a single item failed.
// Item-scoped, same isolation as AnalysisError.
type ComposeError struct {
	Err error
}

func (e *ComposeError) Error() string { return fmt.Sprintf("compose failed: %v", e.Err) }
func (e *ComposeError) Unwrap() error { return e.Err }

// ImageGenError means thumbnail image generation failed. Surfaced directly
// to whoever requested the image; never touches a RunReport.
type ImageGenError struct {
	Err error
}

func (e *ImageGenError) Error() string { return fmt.Sprintf("image generation failed: %v", e.Err) }
func (e *ImageGenError) Unwrap() error { return e.Err }
