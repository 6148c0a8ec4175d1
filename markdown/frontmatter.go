// Package markdown holds small helpers for the composed draft documents:
// targeted frontmatter edits and export file naming.
package markdown

import (
	"fmt"
	"strings"
)

const frontmatterDelimiter = "---"
const thumbnailKey = "thumbnail:"

// ApplyThumbnail replaces the value of the `thumbnail:` line inside the
// draft's YAML frontmatter with url, leaving every other byte of the
// document untouched. This is a targeted single-line substitution, not a
// re-render: round-tripping the block through a YAML library would reformat
// lines the composer model wrote.
func ApplyThumbnail(doc, url string) (string, error) {
	lines := strings.Split(doc, "\n")

	inFrontmatter := false
	delimitersSeen := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == frontmatterDelimiter {
			delimitersSeen++
			if delimitersSeen == 1 {
				inFrontmatter = true
				continue
			}
			// closing delimiter
			break
		}

		if !inFrontmatter {
			// Content before the first delimiter means there is no leading
			// frontmatter block to edit.
			if trimmed != "" {
				return "", fmt.Errorf("document has no frontmatter block")
			}
			continue
		}

		if strings.HasPrefix(strings.TrimLeft(line, " \t"), thumbnailKey) {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			lines[i] = indent + thumbnailKey + " " + url
			return strings.Join(lines, "\n"), nil
		}
	}

	if !inFrontmatter {
		return "", fmt.Errorf("document has no frontmatter block")
	}
	return "", fmt.Errorf("frontmatter has no %s line", thumbnailKey)
}
