package dataset

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "counsellor_qa.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadNormalizesQuestions(t *testing.T) {
	path := writeDataset(t, "question,answer\n  What Should I Study ,Pick something you enjoy.\n")

	pairs := Load(path, discardLogger())
	require.Len(t, pairs, 1)
	assert.Equal(t, "what should i study", pairs[0].Question)
	assert.Equal(t, "Pick something you enjoy.", pairs[0].Answer)
}

func TestLoadSkipsIncompleteRows(t *testing.T) {
	path := writeDataset(t, "question,answer\nvalid question,valid answer\n,missing question\nmissing answer,\n")

	pairs := Load(path, discardLogger())
	require.Len(t, pairs, 1)
	assert.Equal(t, "valid question", pairs[0].Question)
}

func TestLoadHandlesReorderedColumns(t *testing.T) {
	path := writeDataset(t, "answer,question\nthe answer,the question\n")

	pairs := Load(path, discardLogger())
	require.Len(t, pairs, 1)
	assert.Equal(t, "the question", pairs[0].Question)
	assert.Equal(t, "the answer", pairs[0].Answer)
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	pairs := Load(filepath.Join(t.TempDir(), "nope.csv"), discardLogger())
	assert.Equal(t, FallbackPairs(), pairs)
}

func TestLoadBadHeaderFallsBack(t *testing.T) {
	path := writeDataset(t, "foo,bar\na,b\n")

	pairs := Load(path, discardLogger())
	assert.Equal(t, FallbackPairs(), pairs)
}

func TestFallbackPairsAreNormalized(t *testing.T) {
	for _, qa := range FallbackPairs() {
		assert.NotEmpty(t, qa.Question)
		assert.NotEmpty(t, qa.Answer)
		assert.Equal(t, strings.ToLower(qa.Question), qa.Question)
		assert.Equal(t, strings.TrimSpace(qa.Question), qa.Question)
	}
}
