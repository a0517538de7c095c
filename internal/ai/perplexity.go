// README: Perplexity chat completions client (OpenAI-compatible wire format).
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultPerplexityBaseURL = "https://api.perplexity.ai"

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	// Temperature is always serialized; the zero value is the deterministic
	// sampling the callers rely on.
	Temperature float64 `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// PerplexityProvider implements ChatProvider against the Perplexity API,
// which speaks the OpenAI chat completions wire format.
type PerplexityProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewPerplexityProvider creates a client for the given API key.
// baseURL may be empty, in which case the public endpoint is used.
func NewPerplexityProvider(apiKey, baseURL string) *PerplexityProvider {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = defaultPerplexityBaseURL
	}
	return &PerplexityProvider{
		apiKey:  apiKey,
		baseURL: base,
		// 30s guards against stalled connections; context cancellation is
		// still honoured via NewRequestWithContext.
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Complete sends one chat completion request and returns choices[0].message.content.
func (p *PerplexityProvider) Complete(ctx context.Context, model string, messages []Message) (string, error) {
	if strings.TrimSpace(p.apiKey) == "" {
		return "", fmt.Errorf("perplexity: missing api key")
	}
	if len(messages) == 0 {
		return "", fmt.Errorf("perplexity: empty message list")
	}

	reqBody, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("perplexity: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("perplexity: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("perplexity: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("perplexity: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("perplexity: api error (status %d): %s", resp.StatusCode, body)
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("perplexity: unmarshal response: %w", err)
	}
	if cr.Error != nil {
		return "", fmt.Errorf("perplexity: api error: %s", cr.Error.Message)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("perplexity: API returned empty choices array")
	}
	return cr.Choices[0].Message.Content, nil
}
