// Package fingerprint provides the deterministic content fingerprint used
// for in-run duplicate detection. Any fingerprint collision is treated as a
// duplicate regardless of true content equality (approximate dedup policy).
package fingerprint

import (
	"fmt"
	"hash/fnv"

	"content-forge/models"
)

// Fingerprint maps an arbitrary string to a short stable hex fingerprint.
// Pure and total: equal inputs always yield equal outputs, across restarts.
func Fingerprint(input string) string {
	h := fnv.New64a()
	h.Write([]byte(input))
	return fmt.Sprintf("%016x", h.Sum64())
}

// Key builds the dedup key for a content item. Dedup is keyed on
// (title, medium summary, source), not on the raw full text, so items with
// the same title and summary from the same platform collapse together even
// when their bodies differ.
func Key(title, mediumSummary string, source models.Source) string {
	return title + mediumSummary + string(source)
}
