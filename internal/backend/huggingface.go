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

// HuggingFaceRequest represents the inference API request body.
type HuggingFaceRequest struct {
	Inputs     string                 `json:"inputs"`
	Parameters map[string]interface{} `json:"parameters"`
	Options    map[string]interface{} `json:"options"`
}

// HuggingFaceOutput is one element of the inference API's list response.
type HuggingFaceOutput struct {
	GeneratedText string `json:"generated_text"`
}

// HuggingFace calls the Hugging Face inference API. Unlike the chat
// providers it works from the latest user turn only, wrapped in a counsellor
// prompt, because the hosted model is a single-exchange dialogue model.
type HuggingFace struct {
	baseURL    string
	model      string
	httpClient *http.Client
	timeout    time.Duration
}

// NewHuggingFace creates a HuggingFace adapter with its default endpoint and
// a 20 second per-call timeout. The hosted model can need a cold start, so
// the timeout is longer than the chat providers'.
func NewHuggingFace(httpClient *http.Client) *HuggingFace {
	return &HuggingFace{
		baseURL:    "https://api-inference.huggingface.co",
		model:      "microsoft/DialoGPT-large",
		httpClient: httpClient,
		timeout:    20 * time.Second,
	}
}

// Name returns the provider identifier.
func (h *HuggingFace) Name() string { return config.ProviderHuggingFace }

// Invoke builds a counsellor prompt from the last user turn and extracts the
// generated continuation.
func (h *HuggingFace) Invoke(ctx context.Context, history []session.Message, apiKey string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	userMessage := lastUserMessage(history)
	if userMessage == "" {
		return "", fmt.Errorf("no user message in history")
	}

	prompt := fmt.Sprintf(`As a student counsellor, provide helpful advice for this student question:

Student: %s

Counsellor:`, userMessage)

	reqBody := HuggingFaceRequest{
		Inputs: prompt,
		Parameters: map[string]interface{}{
			"max_new_tokens":     400,
			"temperature":        0.8,
			"do_sample":          true,
			"top_p":              0.9,
			"repetition_penalty": 1.1,
			"return_full_text":   false,
		},
		Options: map[string]interface{}{
			"wait_for_model": true,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", h.baseURL, h.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("content-type", "application/json")

	resp, err := h.httpClient.Do(req)
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

	var outputs []HuggingFaceOutput
	if err := json.Unmarshal(body, &outputs); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(outputs) == 0 || outputs[0].GeneratedText == "" {
		return "", fmt.Errorf("empty response from Hugging Face")
	}

	// Some model revisions echo the prompt despite return_full_text=false.
	answer := strings.TrimSpace(strings.Replace(outputs[0].GeneratedText, prompt, "", 1))
	if answer == "" {
		return "", fmt.Errorf("empty response from Hugging Face")
	}
	return answer, nil
}

func lastUserMessage(history []session.Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == session.RoleUser {
			return history[i].Content
		}
	}
	return ""
}
