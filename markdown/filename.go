package markdown

import (
	"strings"
	"unicode"

	"content-forge/models"
)

// Slugify lowercases s and collapses everything that is not a letter or
// digit into single hyphens.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// DraftFilename builds the export file name for a processed item,
// e.g. "news-4-go-1-25-released.md".
func DraftFilename(item models.ProcessedItem) string {
	name := strings.ToLower(item.ID)
	if slug := Slugify(item.Title); slug != "" {
		name += "-" + slug
	}
	return name + ".md"
}
