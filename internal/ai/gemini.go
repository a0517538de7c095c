// README: Gemini implementation of the ChatProvider contract.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements ChatProvider using Google's official SDK.
// Gemini has no chat-completions wire format, so system messages are mapped
// onto the model's system instruction and the remaining messages are joined
// into a single prompt.
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider initializes a Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiProvider{client: client}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// Complete sends one generation request and returns the model's text output.
func (p *GeminiProvider) Complete(ctx context.Context, model string, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("gemini: empty message list")
	}

	m := p.client.GenerativeModel(model)
	m.SetTemperature(0)

	var userParts []string
	for _, msg := range messages {
		if msg.Role == RoleSystem {
			m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(msg.Content)}}
			continue
		}
		userParts = append(userParts, msg.Content)
	}
	if len(userParts) == 0 {
		return "", fmt.Errorf("gemini: no user content in message list")
	}

	resp, err := m.GenerateContent(ctx, genai.Text(strings.Join(userParts, "\n")))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: API returned empty candidates")
	}

	var textParts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		txt, ok := part.(genai.Text)
		if !ok || strings.TrimSpace(string(txt)) == "" {
			continue
		}
		textParts = append(textParts, string(txt))
	}
	if len(textParts) == 0 {
		return "", fmt.Errorf("gemini: API returned empty text parts")
	}
	return strings.Join(textParts, "\n"), nil
}
