package pipeline_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"content-forge/pipeline"
)

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, pipeline.WordCount(""))
	assert.Equal(t, 0, pipeline.WordCount("   \n\t "))
	assert.Equal(t, 1, pipeline.WordCount("hello"))
	assert.Equal(t, 4, pipeline.WordCount("one  two\nthree\tfour"))
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 0, pipeline.ReadingTime(""))
	assert.Equal(t, 1, pipeline.ReadingTime("a single word"))
	assert.Equal(t, 1, pipeline.ReadingTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, pipeline.ReadingTime(strings.Repeat("word ", 201)))
	assert.Equal(t, 5, pipeline.ReadingTime(strings.Repeat("word ", 1000)))
}
