// README: Chat module error taxonomy.
package chat

import (
	"errors"
	"strings"
)

var (
	// ErrRateLimited means the upstream API kept returning rate-limit errors
	// until the retry budget ran out.
	ErrRateLimited = errors.New("api rate limit exceeded, please try again later")

	// ErrUnavailable means the upstream API failed for a non-rate-limit reason.
	ErrUnavailable = errors.New("external AI service temporarily unavailable")
)

// IsRateLimitSignal reports whether err looks like an upstream rate-limit
// rejection: a 429 status marker or the phrase "rate limit" in the message.
func IsRateLimitSignal(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(strings.ToLower(msg), "rate limit")
}
