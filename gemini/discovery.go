package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"content-forge/models"
	"content-forge/pipeline"
)

// Discovery finds trending content about a topic by delegating the search to
// the generative model with web grounding enabled. It is not a crawler: the
// model does the finding, this type owns the prompt and the strict parsing
// of the reply.
type Discovery struct {
	client *Client
}

func NewDiscovery(client *Client) *Discovery {
	return &Discovery{client: client}
}

const discoveryPromptTemplate = `You are an expert research assistant. Your task is to find real, trending content from the web about a specific topic.

Topic: %q
Number of items per source: %d
Sources: Video, Forum, News
Timeframe: Last 12 months.

Instructions:
1. Find %d popular videos, %d popular forum posts, and %d recent news articles related to the topic.
2. For each item, extract the following information:
    - source: 'Video', 'Forum', or 'News'.
    - sourceId: The unique identifier from the platform (e.g., the video ID). If not available, create a unique ID based on the title.
    - permalink: The exact, real URL to the content. This is critical.
    - title: The real title of the content.
    - creator: The name of the channel, forum user, or author.
    - publishDate: The actual publication date in ISO 8601 format.
    - thumbnailUrl: A URL to the actual thumbnail. If not available, use a placeholder image URL.
    - fullText: A detailed summary or transcript of the content. For a forum post, the post body. For a video, a summary of it. For news, the article content.
    - topComments: An array of 1-3 top comments, with author and text. If not available, provide an empty array [].

Your response MUST be a single, valid JSON array of objects. Do not include any other text, explanations, or markdown formatting before or after the JSON array.
The JSON should conform to this structure:
[
  {
    "source": "Video",
    "sourceId": "some_video_id",
    "permalink": "https://www.youtube.com/watch?v=some_video_id",
    "title": "Real Video Title",
    "creator": "Real Channel Name",
    "publishDate": "YYYY-MM-DDTHH:MM:SSZ",
    "thumbnailUrl": "https://i.ytimg.com/vi/some_video_id/hqdefault.jpg",
    "fullText": "A detailed summary of the video content...",
    "topComments": [
      { "author": "commenter1", "text": "This was a great video!" }
    ]
  }
]`

// Discover implements pipeline.ContentSource. Unparseable model output is a
// *pipeline.DiscoveryError and aborts the caller's run.
func (d *Discovery) Discover(ctx context.Context, topic string, perSourceCount int) ([]models.RawContentItem, []models.GroundingChunk, error) {
	prompt := fmt.Sprintf(discoveryPromptTemplate, topic, perSourceCount, perSourceCount, perSourceCount, perSourceCount)

	result, err := d.client.generateText(ctx, "discover", prompt, &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		return nil, nil, &pipeline.DiscoveryError{Err: err}
	}

	items, err := parseDiscoveryItems(result.Text())
	if err != nil {
		return nil, nil, &pipeline.DiscoveryError{Err: err}
	}

	return items, groundingChunks(result), nil
}

// parseDiscoveryItems decodes the model reply into raw items. The contract
// is strict: the reply must be a JSON array whose objects carry exactly the
// RawContentItem field set. A stray markdown fence around the array is
// tolerated and stripped.
func parseDiscoveryItems(text string) ([]models.RawContentItem, error) {
	raw := stripJSONFence(strings.TrimSpace(text))

	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()

	var items []models.RawContentItem
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("response is not a valid item array: %w", err)
	}

	for i := range items {
		if err := validateRawItem(items[i]); err != nil {
			return nil, fmt.Errorf("item %d violates the discovery contract: %w", i, err)
		}
		if items[i].TopComments == nil {
			items[i].TopComments = []models.Comment{}
		}
	}

	return items, nil
}

func validateRawItem(item models.RawContentItem) error {
	if !item.Source.IsValid() {
		return fmt.Errorf("unknown source %q", item.Source)
	}
	switch {
	case item.SourceID == "":
		return fmt.Errorf("missing sourceId")
	case item.Permalink == "":
		return fmt.Errorf("missing permalink")
	case item.Title == "":
		return fmt.Errorf("missing title")
	case item.FullText == "":
		return fmt.Errorf("missing fullText")
	}
	return nil
}

// stripJSONFence removes a surrounding ```json ... ``` block when present.
func stripJSONFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func groundingChunks(result *genai.GenerateContentResponse) []models.GroundingChunk {
	if len(result.Candidates) == 0 || result.Candidates[0].GroundingMetadata == nil {
		return nil
	}

	var chunks []models.GroundingChunk
	for _, gc := range result.Candidates[0].GroundingMetadata.GroundingChunks {
		if gc == nil || gc.Web == nil {
			continue
		}
		chunks = append(chunks, models.GroundingChunk{
			URI:   gc.Web.URI,
			Title: gc.Web.Title,
		})
	}
	return chunks
}
