// README: Itinerary orchestrator; AI request, schema validation, fallback.
package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"journey/internal/ai"
	"journey/internal/modules/chat"
)

const itinerarySystemMessage = "You are a travel planning assistant. " +
	"You respond with strictly valid JSON only, never with prose, markdown, or code fences."

// Service plans trips by asking the model for a strict-JSON itinerary and
// degrading to the deterministic fallback whenever that path fails.
type Service struct {
	provider ai.ChatProvider
	model    string
	logger   *slog.Logger
}

func NewService(provider ai.ChatProvider, model string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{provider: provider, model: model, logger: logger}
}

// PlanTrip never fails: a valid TripRequest always yields a valid
// ItineraryResponse. Call, parse, or validation failures are logged and
// absorbed by the fallback, not propagated.
func (s *Service) PlanTrip(ctx context.Context, req TripRequest) ItineraryResponse {
	raw, err := s.requestItinerary(ctx, itinerarySystemMessage, buildItineraryPrompt(req))
	if err != nil {
		s.logger.Error("itinerary API call failed, using fallback",
			"city", req.City, "error", err.Error())
		return BuildFallback(req)
	}

	var resp ItineraryResponse
	if err := json.Unmarshal([]byte(cleanJSONString(raw)), &resp); err != nil {
		s.logger.Error("itinerary response is not valid JSON, using fallback",
			"city", req.City, "error", err.Error())
		return BuildFallback(req)
	}

	if err := resp.validate(req); err != nil {
		s.logger.Error("itinerary response failed schema validation, using fallback",
			"city", req.City, "error", err.Error())
		return BuildFallback(req)
	}

	// Schema-valid model output is returned unchanged; dates and day numbers
	// are not re-derived.
	return resp
}

// requestItinerary sends one system+user exchange with no retry loop. The
// caller falls back immediately on failure, so retries here would only delay
// the guaranteed-success path.
func (s *Service) requestItinerary(ctx context.Context, systemMsg, userPrompt string) (string, error) {
	raw, err := s.provider.Complete(ctx, s.model, []ai.Message{
		{Role: ai.RoleSystem, Content: systemMsg},
		{Role: ai.RoleUser, Content: strings.TrimSpace(userPrompt)},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", chat.ErrUnavailable, err)
	}
	return raw, nil
}

func buildItineraryPrompt(req TripRequest) string {
	return fmt.Sprintf(`Create a day-by-day travel itinerary for %s from %s to %s.
Return strictly valid JSON matching exactly this shape, with no surrounding prose or code fences:
{"city": %q, "start_date": %q, "end_date": %q, "days": [{"day": 1, "date": %q, "summary": "...", "activities": ["...", "..."]}]}
The "days" array must contain one entry per calendar date from start_date to end_date inclusive,
with "day" starting at 1 and incrementing by one.`,
		req.City, req.StartDate, req.EndDate,
		req.City, req.StartDate, req.EndDate, req.StartDate)
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
