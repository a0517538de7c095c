// README: Provider-agnostic chat completion contract.
package ai

import "context"

// Roles used in chat exchanges.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is a single entry in a chat completion exchange.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatProvider defines the contract for talking to an LLM chat API.
// This interface allows swapping providers (Perplexity, Gemini, ...) without
// touching the callers.
type ChatProvider interface {
	// Complete sends one chat exchange and returns the text of the first
	// completion choice. Sampling is deterministic (temperature 0).
	Complete(ctx context.Context, model string, messages []Message) (string, error)
}
