package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"CareerGuide/internal/config"
	"CareerGuide/internal/session"
)

// DeepSeek calls the DeepSeek chat completions API, an OpenAI-compatible
// endpoint. It receives the full role-tagged conversation history.
type DeepSeek struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// NewDeepSeek creates a DeepSeek adapter with its default endpoint and a
// 15 second per-call timeout.
func NewDeepSeek(httpClient *http.Client) *DeepSeek {
	return &DeepSeek{
		baseURL:    "https://api.deepseek.com",
		httpClient: httpClient,
		timeout:    15 * time.Second,
	}
}

// Name returns the provider identifier.
func (d *DeepSeek) Name() string { return config.ProviderDeepSeek }

// Invoke sends the conversation to DeepSeek and extracts the reply.
func (d *DeepSeek) Invoke(ctx context.Context, history []session.Message, apiKey string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	reqBody := OpenAIRequest{
		Model:       "deepseek-chat",
		Messages:    chatMessages(history),
		MaxTokens:   800,
		Temperature: 0.7,
		Stream:      false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", d.baseURL+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("content-type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error: %s - %s", resp.Status, string(body))
	}

	var apiResp OpenAIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from DeepSeek")
	}

	answer := strings.TrimSpace(apiResp.Choices[0].Message.Content)
	if answer == "" {
		return "", fmt.Errorf("empty response from DeepSeek")
	}
	return answer, nil
}
