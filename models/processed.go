package models

import (
	"fmt"
	"time"
)

// ProcessedItem is a fully enriched content item: the raw discovery fields,
// the analysis metadata, and the composed markdown draft.
type ProcessedItem struct {
	RawContentItem
	AnalyzedData

	ID          string    `json:"id"`
	Markdown    string    `json:"markdown"`
	IsDuplicate bool      `json:"isDuplicate"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewProcessedItem merges a raw item with its analysis into a ProcessedItem.
// Every field is assigned explicitly so schema changes surface as compile
// errors instead of silently shadowed fields. index is the position of the
// item in the discovery result and forms the run-unique id.
func NewProcessedItem(raw RawContentItem, analysis AnalyzedData, index int, markdown string, isDuplicate bool) ProcessedItem {
	return ProcessedItem{
		RawContentItem: RawContentItem{
			Source:       raw.Source,
			SourceID:     raw.SourceID,
			Permalink:    raw.Permalink,
			Title:        raw.Title,
			Creator:      raw.Creator,
			PublishDate:  raw.PublishDate,
			ThumbnailURL: raw.ThumbnailURL,
			FullText:     raw.FullText,
			TopComments:  raw.TopComments,
		},
		AnalyzedData: AnalyzedData{
			Keywords:           analysis.Keywords,
			SEOTitles:          analysis.SEOTitles,
			Tags:               analysis.Tags,
			Summaries:          analysis.Summaries,
			Sentiment:          analysis.Sentiment,
			ReadingTimeMinutes: analysis.ReadingTimeMinutes,
			Thumbnail:          analysis.Thumbnail,
		},
		ID:          fmt.Sprintf("%s-%d", raw.Source, index),
		Markdown:    markdown,
		IsDuplicate: isDuplicate,
		CreatedAt:   time.Now(),
	}
}
