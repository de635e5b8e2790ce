package config

import (
	"encoding/json"
	"log/slog"
	"os"
)

// keysFile mirrors the layout of an optional keys.json next to the binary.
type keysFile struct {
	DeepSeekAPIKey    string `json:"deepseek_api_key"`
	GeminiAPIKey      string `json:"gemini_api_key"`
	GroqAPIKey        string `json:"groq_api_key"`
	HuggingFaceAPIKey string `json:"huggingface_api_key"`
}

// LoadKeys collects provider API keys from the environment, falling back to
// keys.json for any key the environment does not set. A missing key simply
// disables that provider; this never fails.
func LoadKeys(path string, logger *slog.Logger) map[string]string {
	keys := map[string]string{
		ProviderDeepSeek:    os.Getenv("DEEPSEEK_API_KEY"),
		ProviderGemini:      os.Getenv("GEMINI_API_KEY"),
		ProviderGroq:        os.Getenv("GROQ_API_KEY"),
		ProviderHuggingFace: os.Getenv("HUGGINGFACE_API_KEY"),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read keys file", "path", path, "error", err)
		}
		return keys
	}

	var kf keysFile
	if err := json.Unmarshal(data, &kf); err != nil {
		logger.Warn("failed to parse keys file", "path", path, "error", err)
		return keys
	}

	if keys[ProviderDeepSeek] == "" {
		keys[ProviderDeepSeek] = kf.DeepSeekAPIKey
	}
	if keys[ProviderGemini] == "" {
		keys[ProviderGemini] = kf.GeminiAPIKey
	}
	if keys[ProviderGroq] == "" {
		keys[ProviderGroq] = kf.GroqAPIKey
	}
	if keys[ProviderHuggingFace] == "" {
		keys[ProviderHuggingFace] = kf.HuggingFaceAPIKey
	}

	return keys
}
