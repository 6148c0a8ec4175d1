package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-forge/models"
	"content-forge/pipeline"
)

// fakeSource returns canned items, or a discovery error when err is set.
type fakeSource struct {
	items  []models.RawContentItem
	chunks []models.GroundingChunk
	err    error
}

func (f *fakeSource) Discover(ctx context.Context, topic string, perSourceCount int) ([]models.RawContentItem, []models.GroundingChunk, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.items, f.chunks, nil
}

// fakeAnalyzer returns a fixed analysis keyed on the item title, failing for
// titles listed in failTitles. readingTime is deliberately wrong so tests
// can assert the orchestrator override.
type fakeAnalyzer struct {
	failTitles  map[string]bool
	readingTime int
	mediumFor   func(item models.RawContentItem) string
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, item models.RawContentItem) (models.AnalyzedData, error) {
	if f.failTitles[item.Title] {
		return models.AnalyzedData{}, &pipeline.AnalysisError{Err: errors.New("capability unavailable")}
	}
	medium := "Medium summary for " + item.Title
	if f.mediumFor != nil {
		medium = f.mediumFor(item)
	}
	return models.AnalyzedData{
		Keywords:  []string{"kw"},
		SEOTitles: []string{"seo: " + item.Title},
		Tags:      []string{"tag-a", "tag-b", "tag-c"},
		Summaries: models.Summaries{
			Short:  "Short.",
			Medium: medium,
			Long:   "Long summary for " + item.Title,
		},
		Sentiment:          models.SentimentNeutral,
		ReadingTimeMinutes: f.readingTime,
		Thumbnail:          models.ThumbnailMeta{AltText: "alt", Credit: "credit"},
	}, nil
}

// fakeComposer renders a deterministic draft, failing for listed titles.
type fakeComposer struct {
	failTitles map[string]bool
}

func (f *fakeComposer) Compose(ctx context.Context, item models.RawContentItem, analysis models.AnalyzedData) (string, error) {
	if f.failTitles[item.Title] {
		return "", &pipeline.ComposeError{Err: errors.New("capability unavailable")}
	}
	return fmt.Sprintf("---\ntitle: %s\nthumbnail: %s\n---\n\nDraft body.\n", item.Title, item.ThumbnailURL), nil
}

func rawItem(source models.Source, title string) models.RawContentItem {
	return models.RawContentItem{
		Source:       source,
		SourceID:     "id-" + title,
		Permalink:    "https://example.com/" + title,
		Title:        title,
		Creator:      "creator",
		PublishDate:  "2026-01-01T00:00:00Z",
		ThumbnailURL: "https://example.com/thumb.png",
		FullText:     strings.Repeat("word ", 450),
		TopComments:  []models.Comment{},
	}
}

func newOrchestrator(source *fakeSource, analyzer *fakeAnalyzer, composer *fakeComposer) *pipeline.Orchestrator {
	if analyzer == nil {
		analyzer = &fakeAnalyzer{readingTime: 42}
	}
	if composer == nil {
		composer = &fakeComposer{}
	}
	return pipeline.NewOrchestrator(source, analyzer, composer)
}

func TestRunHappyPathProcessesEveryItem(t *testing.T) {
	source := &fakeSource{
		items: []models.RawContentItem{
			rawItem(models.SourceVideo, "Video One"),
			rawItem(models.SourceForum, "Forum One"),
			rawItem(models.SourceNews, "News One"),
		},
		chunks: []models.GroundingChunk{{URI: "https://example.com/src", Title: "Source"}},
	}

	result, err := newOrchestrator(source, nil, nil).Run(context.Background(), "golang", 1)
	require.NoError(t, err)

	assert.Len(t, result.Items, 3)
	assert.Empty(t, result.Report.Errors)
	assert.Equal(t, 3, result.Report.TotalItemsFetched)
	assert.Equal(t, 0, result.Report.DuplicatesFound)
	assert.Equal(t, source.chunks, result.Report.GroundingChunks)
	assert.Empty(t, result.Report.Warnings)
}

func TestRunGeneratesPositionalIDs(t *testing.T) {
	source := &fakeSource{
		items: []models.RawContentItem{
			rawItem(models.SourceVideo, "A"),
			rawItem(models.SourceNews, "B"),
		},
	}

	result, err := newOrchestrator(source, nil, nil).Run(context.Background(), "golang", 1)
	require.NoError(t, err)
	require.Len(t, result.Items, 2)

	assert.Equal(t, "Video-0", result.Items[0].ID)
	assert.Equal(t, "News-1", result.Items[1].ID)
	assert.False(t, result.Items[0].CreatedAt.IsZero())
	assert.NotEmpty(t, result.Items[0].Markdown)
}

func TestRunOverridesReadingTime(t *testing.T) {
	// 450 words at 200 wpm is 3 minutes; the analyzer claims 42.
	source := &fakeSource{items: []models.RawContentItem{rawItem(models.SourceNews, "A")}}
	analyzer := &fakeAnalyzer{readingTime: 42}

	result, err := newOrchestrator(source, analyzer, nil).Run(context.Background(), "golang", 1)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)

	assert.Equal(t, 3, result.Items[0].ReadingTimeMinutes)
}

func TestRunFlagsDuplicatesWithoutDroppingThem(t *testing.T) {
	// Same title/summary/source with different bodies: the second collides.
	first := rawItem(models.SourceNews, "Same Story")
	second := rawItem(models.SourceNews, "Same Story")
	second.FullText = "completely different body text"
	other := rawItem(models.SourceVideo, "Same Story")

	source := &fakeSource{items: []models.RawContentItem{first, second, other}}
	analyzer := &fakeAnalyzer{
		readingTime: 1,
		mediumFor:   func(item models.RawContentItem) string { return "Shared medium summary" },
	}

	result, err := newOrchestrator(source, analyzer, nil).Run(context.Background(), "golang", 1)
	require.NoError(t, err)
	require.Len(t, result.Items, 3)

	assert.False(t, result.Items[0].IsDuplicate)
	assert.True(t, result.Items[1].IsDuplicate)
	// Same title and summary but a different source is not a duplicate.
	assert.False(t, result.Items[2].IsDuplicate)
	assert.Equal(t, 1, result.Report.DuplicatesFound)
}

func TestRunItemsPerSourceSumsToTotal(t *testing.T) {
	source := &fakeSource{
		items: []models.RawContentItem{
			rawItem(models.SourceVideo, "V1"),
			rawItem(models.SourceVideo, "V2"),
			rawItem(models.SourceForum, "F1"),
			rawItem(models.SourceNews, "N1"),
		},
	}
	// One analysis failure: the item still counts toward the per-source tally.
	analyzer := &fakeAnalyzer{readingTime: 1, failTitles: map[string]bool{"F1": true}}

	result, err := newOrchestrator(source, analyzer, nil).Run(context.Background(), "golang", 2)
	require.NoError(t, err)

	sum := 0
	for _, n := range result.Report.ItemsPerSource {
		sum += n
	}
	assert.Equal(t, result.Report.TotalItemsFetched, sum)
	assert.Equal(t, 4, result.Report.TotalItemsFetched)
	assert.Equal(t, 2, result.Report.ItemsPerSource[models.SourceVideo])
	assert.Equal(t, 1, result.Report.ItemsPerSource[models.SourceForum])
	assert.Len(t, result.Items, 3)
}

func TestRunZeroDiscoveredItems(t *testing.T) {
	result, err := newOrchestrator(&fakeSource{}, nil, nil).Run(context.Background(), "golang", 1)
	require.NoError(t, err)

	assert.Empty(t, result.Items)
	assert.Equal(t, 0, result.Report.TotalItemsFetched)
	assert.Empty(t, result.Report.ItemsPerSource)
	assert.Empty(t, result.Report.Errors)
}

func TestRunIsolatesAnalysisFailure(t *testing.T) {
	source := &fakeSource{
		items: []models.RawContentItem{
			rawItem(models.SourceVideo, "First"),
			rawItem(models.SourceForum, "Broken Item"),
			rawItem(models.SourceNews, "Third"),
		},
	}
	analyzer := &fakeAnalyzer{readingTime: 1, failTitles: map[string]bool{"Broken Item": true}}

	result, err := newOrchestrator(source, analyzer, nil).Run(context.Background(), "golang", 1)
	require.NoError(t, err)

	assert.Len(t, result.Items, 2)
	require.Len(t, result.Report.Errors, 1)
	assert.Contains(t, result.Report.Errors[0], "Broken Item")
	// The failed item still counts toward the fetch tally.
	assert.Equal(t, 3, result.Report.TotalItemsFetched)
}

func TestRunIsolatesComposeFailure(t *testing.T) {
	source := &fakeSource{
		items: []models.RawContentItem{
			rawItem(models.SourceVideo, "Good"),
			rawItem(models.SourceNews, "Uncomposable"),
		},
	}
	composer := &fakeComposer{failTitles: map[string]bool{"Uncomposable": true}}

	result, err := newOrchestrator(source, nil, composer).Run(context.Background(), "golang", 1)
	require.NoError(t, err)

	// The analyzed result is discarded entirely: no partial item without
	// markdown is emitted.
	assert.Len(t, result.Items, 1)
	assert.Equal(t, "Good", result.Items[0].Title)
	require.Len(t, result.Report.Errors, 1)
	assert.Contains(t, result.Report.Errors[0], "Uncomposable")
}

func TestRunDiscoveryFailureAbortsWithReport(t *testing.T) {
	discErr := &pipeline.DiscoveryError{Err: errors.New("response is not a valid item array")}
	source := &fakeSource{err: discErr}

	result, err := newOrchestrator(source, nil, nil).Run(context.Background(), "golang", 1)
	require.Error(t, err)

	var de *pipeline.DiscoveryError
	assert.True(t, errors.As(err, &de))
	assert.Empty(t, result.Items)
	require.NotNil(t, result.Report)
	require.Len(t, result.Report.Errors, 1)
	assert.Contains(t, result.Report.Errors[0], "not a valid item array")
}

func TestRunRejectsInvalidInput(t *testing.T) {
	source := &fakeSource{items: []models.RawContentItem{rawItem(models.SourceNews, "A")}}

	result, err := newOrchestrator(source, nil, nil).Run(context.Background(), "", 1)
	assert.Error(t, err)
	assert.Empty(t, result.Items)

	result, err = newOrchestrator(source, nil, nil).Run(context.Background(), "golang", 0)
	assert.Error(t, err)
	assert.Empty(t, result.Items)
	assert.NotEmpty(t, result.Report.Errors)
}

func TestRunDedupStateResetsBetweenRuns(t *testing.T) {
	item := rawItem(models.SourceNews, "Recurring Story")
	source := &fakeSource{items: []models.RawContentItem{item}}
	orch := newOrchestrator(source, nil, nil)

	first, err := orch.Run(context.Background(), "golang", 1)
	require.NoError(t, err)
	second, err := orch.Run(context.Background(), "golang", 1)
	require.NoError(t, err)

	// The same item in a fresh run is not a duplicate: the seen-hash set is
	// scoped to one run.
	assert.False(t, first.Items[0].IsDuplicate)
	assert.False(t, second.Items[0].IsDuplicate)
	assert.NotEqual(t, first.Report.RunID, second.Report.RunID)
}

func TestUpdateItemReplacesMatchingID(t *testing.T) {
	a := models.ProcessedItem{ID: "Video-0", Markdown: "draft a"}
	b := models.ProcessedItem{ID: "News-1", Markdown: "draft b"}

	updated := b
	updated.Markdown = "draft b, revised"

	items := pipeline.UpdateItem([]models.ProcessedItem{a, b}, updated)
	require.Len(t, items, 2)
	assert.Equal(t, "draft a", items[0].Markdown)
	assert.Equal(t, "draft b, revised", items[1].Markdown)
}

func TestUpdateItemUnknownIDIsNoOp(t *testing.T) {
	a := models.ProcessedItem{ID: "Video-0", Markdown: "draft a"}

	items := pipeline.UpdateItem([]models.ProcessedItem{a}, models.ProcessedItem{ID: "Ghost-9"})
	require.Len(t, items, 1)
	assert.Equal(t, a, items[0])
}
