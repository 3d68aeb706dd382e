package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "mistralai/mistral-small-3.1-24b-instruct:free"

	// noResponseFallback is returned when the provider answers 200 with an
	// empty or missing message body.
	noResponseFallback = "No response"
)

// OpenRouterClient issues one chat-completion request per turn against the
// OpenRouter OpenAI-compatible API. No retry, no backoff, no streaming;
// error detail stays opaque to callers.
type OpenRouterClient struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
}

// NewOpenRouterClient constructs a client. Empty baseURL/model fall back to
// the OpenRouter defaults; httpClient may be nil.
func NewOpenRouterClient(baseURL, model, apiKey string, httpClient *http.Client) *OpenRouterClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &OpenRouterClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		client:  httpClient,
	}
}

// NewOpenRouterClientFromEnv reads OPENROUTER_API_KEY (required) and the
// optional OPENROUTER_URL / OPENROUTER_MODEL overrides.
func NewOpenRouterClientFromEnv() (*OpenRouterClient, error) {
	apiKey := strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("openrouter: OPENROUTER_API_KEY environment variable is not set")
	}
	return NewOpenRouterClient(os.Getenv("OPENROUTER_URL"), os.Getenv("OPENROUTER_MODEL"), apiKey, nil), nil
}

// Complete sends prompt as a single user message and returns the generated
// text, or the provider's fallback text when the body carries no content.
func (c *OpenRouterClient) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("openrouter: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openrouter: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openrouter: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("openrouter: unexpected status %d", resp.StatusCode)
	}

	var apiResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("openrouter: decode response: %w", err)
	}

	if len(apiResp.Choices) == 0 || apiResp.Choices[0].Message.Content == "" {
		return noResponseFallback, nil
	}
	return apiResp.Choices[0].Message.Content, nil
}
