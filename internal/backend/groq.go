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

// Groq calls the Groq OpenAI-compatible chat completions API.
type Groq struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// NewGroq creates a Groq adapter with its default endpoint and a 15 second
// per-call timeout.
func NewGroq(httpClient *http.Client) *Groq {
	return &Groq{
		baseURL:    "https://api.groq.com",
		httpClient: httpClient,
		timeout:    15 * time.Second,
	}
}

// Name returns the provider identifier.
func (g *Groq) Name() string { return config.ProviderGroq }

// Invoke sends the conversation to Groq and extracts the reply.
func (g *Groq) Invoke(ctx context.Context, history []session.Message, apiKey string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	reqBody := OpenAIRequest{
		Model:       "llama2-70b-4096",
		Messages:    chatMessages(history),
		MaxTokens:   800,
		Temperature: 0.7,
		TopP:        0.8,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+"/openai/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("content-type", "application/json")

	resp, err := g.httpClient.Do(req)
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
		return "", fmt.Errorf("empty response from Groq")
	}

	answer := strings.TrimSpace(apiResp.Choices[0].Message.Content)
	if answer == "" {
		return "", fmt.Errorf("empty response from Groq")
	}
	return answer, nil
}
