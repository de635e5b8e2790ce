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

// defaultGeminiModel is tried first; ListModels may confirm availability.
const defaultGeminiModel = "models/gemini-2.5-flash"

// GeminiRequest represents the generateContent request body.
type GeminiRequest struct {
	Contents []GeminiContent `json:"contents"`
}

// GeminiContent is one content block of a Gemini request.
type GeminiContent struct {
	Parts []GeminiPart `json:"parts"`
}

// GeminiPart is a single text part.
type GeminiPart struct {
	Text string `json:"text"`
}

// GeminiModelsResponse represents the response from the models list endpoint.
type GeminiModelsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// Gemini calls the Gemini REST generateContent API. The conversation is
// flattened into a single User/Assistant-tagged prompt; system turns are
// dropped before flattening.
type Gemini struct {
	baseURL    string
	model      string
	httpClient *http.Client
	timeout    time.Duration
}

// NewGemini creates a Gemini adapter with its default endpoint and a
// 15 second per-call timeout.
func NewGemini(httpClient *http.Client) *Gemini {
	return &Gemini{
		baseURL:    "https://generativelanguage.googleapis.com",
		model:      defaultGeminiModel,
		httpClient: httpClient,
		timeout:    15 * time.Second,
	}
}

// Name returns the provider identifier.
func (g *Gemini) Name() string { return config.ProviderGemini }

// ListModels fetches the models available to this API key.
func (g *Gemini) ListModels(ctx context.Context, apiKey string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", g.baseURL+"/v1beta/models", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-goog-api-key", apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error: %s - %s", resp.Status, string(body))
	}

	var modelsResp GeminiModelsResponse
	if err := json.Unmarshal(body, &modelsResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	names := make([]string, len(modelsResp.Models))
	for i, m := range modelsResp.Models {
		names[i] = m.Name
	}
	return names, nil
}

// Invoke flattens the conversation into a prompt, sends it to Gemini, and
// extracts the generated text.
func (g *Gemini) Invoke(ctx context.Context, history []session.Message, apiKey string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := flattenHistory(history)
	if prompt == "" {
		return "", fmt.Errorf("empty prompt after formatting conversation history")
	}

	reqBody := GeminiRequest{
		Contents: []GeminiContent{
			{Parts: []GeminiPart{{Text: prompt}}},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-goog-api-key", apiKey)
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

	answer, err := extractGeminiText(body)
	if err != nil {
		return "", err
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return answer, nil
}

// flattenHistory converts the conversation to User/Assistant-tagged lines,
// skipping system turns.
func flattenHistory(history []session.Message) string {
	var lines []string
	for _, msg := range history {
		switch msg.Role {
		case session.RoleSystem:
			continue
		case session.RoleUser:
			lines = append(lines, "User: "+msg.Content)
		default:
			lines = append(lines, "Assistant: "+msg.Content)
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// extractGeminiText pulls generated text out of a Gemini response body.
// Response shapes vary across API generations, so three interpreters are
// tried in order: the candidates/content/parts structure, a direct text
// field, and a list of output items.
func extractGeminiText(body []byte) (string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	// candidates -> content -> parts -> text
	if candRaw, ok := raw["candidates"]; ok {
		var candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		}
		if err := json.Unmarshal(candRaw, &candidates); err == nil && len(candidates) > 0 {
			var pieces []string
			for _, part := range candidates[0].Content.Parts {
				if part.Text != "" {
					pieces = append(pieces, part.Text)
				}
			}
			if len(pieces) > 0 {
				return strings.Join(pieces, "\n"), nil
			}
		}
	}

	// direct text field
	if textRaw, ok := raw["text"]; ok {
		var text string
		if err := json.Unmarshal(textRaw, &text); err == nil && text != "" {
			return text, nil
		}
	}

	// list-of-outputs structure
	if outRaw, ok := raw["output"]; ok {
		var outputs []struct {
			Content string `json:"content"`
		}
		if err := json.Unmarshal(outRaw, &outputs); err == nil && len(outputs) > 0 {
			var pieces []string
			for _, item := range outputs {
				if item.Content != "" {
					pieces = append(pieces, item.Content)
				}
			}
			if len(pieces) > 0 {
				return strings.Join(pieces, "\n"), nil
			}
		}
	}

	return "", fmt.Errorf("no usable text in Gemini response")
}
