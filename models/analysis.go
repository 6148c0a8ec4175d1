package models

// Sentiment classifies the overall tone of a content item.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// IsValid reports whether s is one of the three allowed sentiment values.
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// Summaries holds three summaries of increasing length.
type Summaries struct {
	Short  string `json:"short"`
	Medium string `json:"medium"`
	Long   string `json:"long"`
}

// ThumbnailMeta carries the alt text and credit line for an item thumbnail.
type ThumbnailMeta struct {
	AltText string `json:"altText"`
	Credit  string `json:"credit"`
}

// AnalyzedData is the structured metadata derived from one RawContentItem
// by the analysis collaborator. ReadingTimeMinutes is never trusted from the
// collaborator: the orchestrator overwrites it with the locally computed
// value after analysis returns.
type AnalyzedData struct {
	Keywords           []string      `json:"keywords"`
	SEOTitles          []string      `json:"seoTitles"`
	Tags               []string      `json:"tags"`
	Summaries          Summaries     `json:"summaries"`
	Sentiment          Sentiment     `json:"sentiment"`
	ReadingTimeMinutes int           `json:"readingTimeMinutes"`
	Thumbnail          ThumbnailMeta `json:"thumbnail"`
}
