package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-forge/models"
	"content-forge/services"
)

func TestApplyThumbnailUpdatesFieldAndMarkdown(t *testing.T) {
	svc := services.NewForgeService(nil, nil, nil, nil)

	item := models.ProcessedItem{
		ID:       "Video-0",
		Markdown: "---\ntitle: Clip\nthumbnail: https://example.com/old.jpg\n---\n\nBody.\n",
	}
	item.ThumbnailURL = "https://example.com/old.jpg"

	updated, err := svc.ApplyThumbnail(item, "data:image/jpeg;base64,QUJD")
	require.NoError(t, err)

	assert.Equal(t, "data:image/jpeg;base64,QUJD", updated.ThumbnailURL)
	assert.Contains(t, updated.Markdown, "thumbnail: data:image/jpeg;base64,QUJD")
	assert.NotContains(t, updated.Markdown, "old.jpg")
	// The input item is untouched; ApplyThumbnail returns a copy.
	assert.Equal(t, "https://example.com/old.jpg", item.ThumbnailURL)
}

func TestApplyThumbnailFailsWithoutFrontmatter(t *testing.T) {
	svc := services.NewForgeService(nil, nil, nil, nil)

	item := models.ProcessedItem{ID: "Video-0", Markdown: "no frontmatter here"}
	_, err := svc.ApplyThumbnail(item, "new.png")
	assert.Error(t, err)
}
