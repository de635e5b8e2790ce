package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func clearKeyEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DEEPSEEK_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("HUGGINGFACE_API_KEY", "")
}

func TestLoadKeysFromEnvironment(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("DEEPSEEK_API_KEY", "ds-key")
	t.Setenv("GROQ_API_KEY", "groq-key")

	keys := LoadKeys(filepath.Join(t.TempDir(), "keys.json"), discardLogger())
	assert.Equal(t, "ds-key", keys[ProviderDeepSeek])
	assert.Equal(t, "groq-key", keys[ProviderGroq])
	assert.Empty(t, keys[ProviderGemini])
	assert.Empty(t, keys[ProviderHuggingFace])
}

func TestLoadKeysFileFillsGaps(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("DEEPSEEK_API_KEY", "env-wins")

	path := filepath.Join(t.TempDir(), "keys.json")
	content := `{"deepseek_api_key":"file-loses","gemini_api_key":"gem-key","huggingface_api_key":"hf-key"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	keys := LoadKeys(path, discardLogger())
	assert.Equal(t, "env-wins", keys[ProviderDeepSeek])
	assert.Equal(t, "gem-key", keys[ProviderGemini])
	assert.Equal(t, "hf-key", keys[ProviderHuggingFace])
	assert.Empty(t, keys[ProviderGroq])
}

func TestLoadKeysMalformedFile(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("GEMINI_API_KEY", "gem-key")

	path := filepath.Join(t.TempDir(), "keys.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	keys := LoadKeys(path, discardLogger())
	assert.Equal(t, "gem-key", keys[ProviderGemini])
}

func TestProviderOrderIsStable(t *testing.T) {
	assert.Equal(t, []string{ProviderDeepSeek, ProviderGemini, ProviderGroq, ProviderHuggingFace}, ProviderOrder)
}
