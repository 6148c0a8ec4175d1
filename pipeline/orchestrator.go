package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"content-forge/fingerprint"
	"content-forge/logger"
	"content-forge/models"
)

// Orchestrator sequences one pipeline run: discovery, then per item analysis,
// dedup check and draft composition. Items are processed strictly in the
// order discovery returned them, one at a time, so the seen-hash set evolves
// deterministically and duplicate counts are reproducible.
type Orchestrator struct {
	source   ContentSource
	analyzer Analyzer
	composer DraftComposer
}

// NewOrchestrator wires an orchestrator from its collaborators.
func NewOrchestrator(source ContentSource, analyzer Analyzer, composer DraftComposer) *Orchestrator {
	return &Orchestrator{
		source:   source,
		analyzer: analyzer,
		composer: composer,
	}
}

// Run executes one end-to-end run for a topic. The returned report is always
// non-nil; err is non-nil only for run-fatal failures (invalid input or
// discovery failure), in which case Items is empty and the failure is also
// recorded in the report. Item-scoped failures never escape: they are
// appended to report.Errors and the run continues.
func (o *Orchestrator) Run(ctx context.Context, topic string, perSourceCount int) (Result, error) {
	report := models.NewRunReport(uuid.New().String())
	seenHashes := map[string]struct{}{}

	if topic == "" || perSourceCount <= 0 {
		err := fmt.Errorf("invalid run input: topic=%q perSourceCount=%d", topic, perSourceCount)
		report.Errors = append(report.Errors, err.Error())
		return Result{Items: []models.ProcessedItem{}, Report: report}, err
	}

	logger.InfoWithFields("searching for content", logger.Fields{
		"run_id": report.RunID, "topic": topic, "per_source_count": perSourceCount,
	})

	rawItems, groundingChunks, err := o.source.Discover(ctx, topic, perSourceCount)
	if err != nil {
		report.Errors = append(report.Errors, err.Error())
		logger.ErrorWithFields("discovery failed", logger.Fields{"run_id": report.RunID, "error": err.Error()})
		return Result{Items: []models.ProcessedItem{}, Report: report}, err
	}

	// Tally per source before any filtering: the report reflects everything
	// that was fetched, including items that later fail analysis.
	report.TotalItemsFetched = len(rawItems)
	report.GroundingChunks = groundingChunks
	for _, item := range rawItems {
		report.ItemsPerSource[item.Source]++
	}

	processed := []models.ProcessedItem{}

	for i, item := range rawItems {
		logger.InfoWithFields("analyzing item", logger.Fields{
			"run_id": report.RunID, "index": i + 1, "total": len(rawItems), "title": item.Title,
		})
		analysis, err := o.analyzer.Analyze(ctx, item)
		if err != nil {
			o.recordItemFailure(report, item, err)
			continue
		}

		// Never trust the collaborator's read time.
		analysis.ReadingTimeMinutes = ReadingTime(item.FullText)

		hash := fingerprint.Fingerprint(fingerprint.Key(item.Title, analysis.Summaries.Medium, item.Source))
		_, isDuplicate := seenHashes[hash]
		if isDuplicate {
			report.DuplicatesFound++
		} else {
			seenHashes[hash] = struct{}{}
		}

		logger.InfoWithFields("composing draft", logger.Fields{
			"run_id": report.RunID, "index": i + 1, "total": len(rawItems), "title": item.Title,
		})
		markdown, err := o.composer.Compose(ctx, item, analysis)
		if err != nil {
			o.recordItemFailure(report, item, err)
			continue
		}

		processed = append(processed, models.NewProcessedItem(item, analysis, i, markdown, isDuplicate))
	}

	logger.InfoWithFields("run finished", logger.Fields{
		"run_id":     report.RunID,
		"fetched":    report.TotalItemsFetched,
		"processed":  len(processed),
		"duplicates": report.DuplicatesFound,
		"errors":     len(report.Errors),
	})

	return Result{Items: processed, Report: report}, nil
}

func (o *Orchestrator) recordItemFailure(report *models.RunReport, item models.RawContentItem, err error) {
	msg := fmt.Sprintf("Failed to process item: %s. Reason: %v", item.Title, err)
	report.Errors = append(report.Errors, msg)
	logger.ErrorWithFields("item failed", logger.Fields{
		"run_id": report.RunID, "title": item.Title, "error": err.Error(),
	})
}

// UpdateItem replaces the item with the same ID wholesale and returns the
// updated slice. Unknown IDs are a no-op; other items keep their identity.
func UpdateItem(items []models.ProcessedItem, updated models.ProcessedItem) []models.ProcessedItem {
	out := make([]models.ProcessedItem, len(items))
	for i, item := range items {
		if item.ID == updated.ID {
			out[i] = updated
		} else {
			out[i] = item
		}
	}
	return out
}
