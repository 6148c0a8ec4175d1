package pipeline

import "strings"

// wordsPerMinute is the reading speed used for the read-time estimate.
const wordsPerMinute = 200

// WordCount counts whitespace-delimited tokens in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// ReadingTime returns ceil(WordCount(text)/200) in minutes. This is computed
// locally and always overrides whatever the analysis collaborator returns.
func ReadingTime(text string) int {
	return (WordCount(text) + wordsPerMinute - 1) / wordsPerMinute
}
