package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"content-forge/models"
	"content-forge/pipeline"
)

// Analyzer derives keywords, summaries, tags and sentiment for one item.
// The read time is computed locally before prompting and handed to the model
// as a given; the orchestrator overwrites the returned value again anyway.
type Analyzer struct {
	client *Client
}

func NewAnalyzer(client *Client) *Analyzer {
	return &Analyzer{client: client}
}

// analysisSchema constrains the model reply to the AnalyzedData shape.
var analysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"keywords": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "List of 8 keywords max.",
		},
		"seoTitles": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "3 SEO-friendly title variations.",
		},
		"tags": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "3-5 recommended tags.",
		},
		"summaries": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"short":  {Type: genai.TypeString, Description: "1-2 sentences."},
				"medium": {Type: genai.TypeString, Description: "3-5 sentences."},
				"long":   {Type: genai.TypeString, Description: "6-12 sentences."},
			},
			Required: []string{"short", "medium", "long"},
		},
		"sentiment": {
			Type: genai.TypeString,
			Enum: []string{"positive", "neutral", "negative"},
		},
		"readingTimeMinutes": {
			Type:        genai.TypeInteger,
			Description: "Estimated reading time at 200 WPM.",
		},
		"thumbnail": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"altText": {Type: genai.TypeString},
				"credit":  {Type: genai.TypeString, Description: "Credit line for the thumbnail image, e.g., 'Photo by [Creator]'"},
			},
			Required: []string{"altText", "credit"},
		},
	},
	Required: []string{"keywords", "seoTitles", "tags", "summaries", "sentiment", "readingTimeMinutes", "thumbnail"},
}

const analysisPromptTemplate = `You are ContentForge, an AI agent. Analyze the following content item and generate the required metadata. The reading time is already calculated as %d minutes.

Content:
Title: %s
Creator: %s
Text: %s

Generate all required fields according to the provided JSON schema.`

// maxAnalysisTextRunes bounds the prompt size for very long bodies.
const maxAnalysisTextRunes = 4000

// Analyze implements pipeline.Analyzer. Failures are wrapped as
// *pipeline.AnalysisError so the orchestrator can isolate them per item.
func (a *Analyzer) Analyze(ctx context.Context, item models.RawContentItem) (models.AnalyzedData, error) {
	readingTime := pipeline.ReadingTime(item.FullText)
	prompt := fmt.Sprintf(analysisPromptTemplate, readingTime, item.Title, item.Creator, truncateRunes(item.FullText, maxAnalysisTextRunes))

	result, err := a.client.generateText(ctx, "analyze", prompt, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   analysisSchema,
	})
	if err != nil {
		return models.AnalyzedData{}, &pipeline.AnalysisError{Err: err}
	}

	analysis, err := decodeAnalysis(result.Text())
	if err != nil {
		return models.AnalyzedData{}, &pipeline.AnalysisError{Err: err}
	}

	analysis.ReadingTimeMinutes = readingTime
	return analysis, nil
}

func decodeAnalysis(text string) (models.AnalyzedData, error) {
	var analysis models.AnalyzedData
	if err := json.Unmarshal([]byte(stripJSONFence(text)), &analysis); err != nil {
		return models.AnalyzedData{}, fmt.Errorf("response is not a valid analysis object: %w", err)
	}

	if !analysis.Sentiment.IsValid() {
		return models.AnalyzedData{}, fmt.Errorf("invalid sentiment %q", analysis.Sentiment)
	}
	if analysis.Summaries.Short == "" || analysis.Summaries.Medium == "" || analysis.Summaries.Long == "" {
		return models.AnalyzedData{}, fmt.Errorf("missing summaries")
	}

	return analysis, nil
}

func truncateRunes(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max]) + "..."
}
