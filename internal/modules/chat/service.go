// README: Resilient chat caller with exponential backoff on rate limiting.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"journey/internal/ai"
)

const (
	defaultMaxRetries = 3
	defaultBaseDelay  = 2 * time.Second
)

// Config tunes the retry behaviour of a Caller.
type Config struct {
	Model      string
	MaxRetries int
	BaseDelay  time.Duration
}

// Caller wraps a ChatProvider with a retry loop. Rate-limit errors are
// retried with exponential backoff (baseDelay * 2^attempt); any other error
// fails fast on the attempt it occurs.
type Caller struct {
	provider   ai.ChatProvider
	model      string
	maxRetries int
	baseDelay  time.Duration
	logger     *slog.Logger

	// sleep is swapped out in tests to observe backoff without waiting.
	sleep func(time.Duration)
}

// NewCaller creates a Caller. Zero Config fields fall back to the defaults
// (3 attempts, 2s base delay).
func NewCaller(provider ai.ChatProvider, cfg Config, logger *slog.Logger) *Caller {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = defaultBaseDelay
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Caller{
		provider:   provider,
		model:      cfg.Model,
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.BaseDelay,
		logger:     logger,
		sleep:      time.Sleep,
	}
}

// Ask sends prompt as a single user message and returns the reply text.
// Failure is either ErrRateLimited (retry budget exhausted on 429s) or
// ErrUnavailable (anything else), both carrying the underlying cause.
func (c *Caller) Ask(ctx context.Context, prompt string) (string, error) {
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		c.logger.Info("calling chat completion API",
			"attempt", attempt+1, "model", c.model)

		reply, err := c.provider.Complete(ctx, c.model, []ai.Message{
			{Role: ai.RoleUser, Content: prompt},
		})
		if err == nil {
			c.logger.Info("chat completion succeeded",
				"attempt", attempt+1, "response_length", len(reply))
			return reply, nil
		}

		c.logger.Error("chat completion failed",
			"attempt", attempt+1, "error", err.Error(), "retries_left", c.maxRetries-attempt-1)

		if !IsRateLimitSignal(err) {
			return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if attempt == c.maxRetries-1 {
			return "", fmt.Errorf("%w: %v", ErrRateLimited, err)
		}

		wait := c.baseDelay * (1 << attempt)
		c.logger.Warn("rate limited, backing off", "wait", wait.String())
		c.sleep(wait)
	}
	// Unreachable: the loop always returns on the final attempt.
	return "", ErrUnavailable
}
