package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"content-forge/models"
	"content-forge/pipeline"
)

// Composer writes the publish-ready markdown draft for an analyzed item.
type Composer struct {
	client *Client
}

func NewComposer(client *Client) *Composer {
	return &Composer{client: client}
}

// composeInput is the subset of item data handed to the drafting prompt.
type composeInput struct {
	Title        string           `json:"title"`
	Tags         []string         `json:"tags"`
	ReadingTime  int              `json:"readingTime"`
	ThumbnailURL string           `json:"thumbnailUrl"`
	CanonicalURL string           `json:"canonicalUrl"`
	Summary      string           `json:"summary"`
	KeyTakeaways []string         `json:"keyTakeaways"`
	FullText     string           `json:"fullText"`
	TopComments  []models.Comment `json:"topComments"`
	Creator      string           `json:"creator"`
	Source       models.Source    `json:"source"`
}

const composePromptTemplate = `You are a blog post writer for Medium. Using the following JSON data, create a Medium-ready Markdown draft.

Data:
%s

Instructions:
1. Create frontmatter as a YAML code block (---). Include 'title', 'canonical_url', 'tags' (as a YAML list), 'read_time', and 'thumbnail'. The thumbnail value should be a URL string.
2. Write a short TL;DR section using a blockquote (>).
3. Write a compelling introduction paragraph.
4. Create a '## Key Takeaways' section with bullet points (*).
5. Paraphrase the full content. NEVER copy the original text directly. Use short quotes only with proper attribution.
6. Create a "## Top Comments" section if comments exist, using blockquotes for each comment.
7. Create a "## Sources & Credits" section, linking to the original article and crediting the author.
8. The output must be a single block of valid Markdown.`

// Compose implements pipeline.DraftComposer. Failures are wrapped as
// *pipeline.ComposeError and isolated per item by the orchestrator.
func (c *Composer) Compose(ctx context.Context, item models.RawContentItem, analysis models.AnalyzedData) (string, error) {
	input := composeInput{
		Title:        item.Title,
		Tags:         analysis.Tags,
		ReadingTime:  analysis.ReadingTimeMinutes,
		ThumbnailURL: item.ThumbnailURL,
		CanonicalURL: item.Permalink,
		Summary:      analysis.Summaries.Short,
		KeyTakeaways: keyTakeaways(analysis.Summaries.Medium),
		FullText:     item.FullText,
		TopComments:  item.TopComments,
		Creator:      item.Creator,
		Source:       item.Source,
	}

	data, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return "", &pipeline.ComposeError{Err: err}
	}

	result, err := c.client.generateText(ctx, "compose", fmt.Sprintf(composePromptTemplate, data), nil)
	if err != nil {
		return "", &pipeline.ComposeError{Err: err}
	}

	markdown := strings.TrimSpace(result.Text())
	if markdown == "" {
		return "", &pipeline.ComposeError{Err: fmt.Errorf("model returned an empty draft")}
	}

	return markdown, nil
}

// keyTakeaways splits the medium summary into bullet-sized sentences.
func keyTakeaways(mediumSummary string) []string {
	var takeaways []string
	for _, s := range strings.Split(mediumSummary, ". ") {
		if len(s) > 5 {
			takeaways = append(takeaways, s)
		}
	}
	return takeaways
}
