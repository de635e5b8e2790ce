package chatlog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLog(t *testing.T) *Log {
	t.Helper()
	log, err := Open(filepath.Join(t.TempDir(), "exchanges.db"))
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })
	return log
}

func TestRecordAndCount(t *testing.T) {
	log := openTestLog(t)

	ex := Exchange{
		UserID:    "alice",
		Question:  "how do I choose a major?",
		Answer:    "Consider your interests and career goals.",
		Source:    "deepseek",
		CreatedAt: time.Now(),
	}
	require.NoError(t, log.Record(ex))
	require.NoError(t, log.Record(ex))

	n, err := log.Count("alice")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = log.Count("bob")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exchanges.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Record(Exchange{UserID: "alice", Question: "q", Answer: "a", Source: "dataset", CreatedAt: time.Now()}))
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	n, err := second.Count("alice")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
