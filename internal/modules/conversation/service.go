// README: Conversation state machine; collects slots, dispatches one AI call.
package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Asker is the single-turn AI call the finished conversation is dispatched to.
// Satisfied by *chat.Caller.
type Asker interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// Service runs the per-user slot-filling dialogue. Each HandleMessage call
// either asks the next unanswered question or, once every slot is filled,
// dispatches one AI call and clears the user's state.
type Service struct {
	store  *Store
	caller Asker
	logger *slog.Logger
}

func NewService(store *Store, caller Asker, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, caller: caller, logger: logger}
}

// HandleMessage merges the supplied answers into the user's state and returns
// either the next question or the final AI-generated itinerary text. It never
// returns an error: a failed dispatch yields a fixed apology instead.
func (s *Service) HandleMessage(ctx context.Context, userID string, answers map[string]string) string {
	if userID == "" {
		userID = DefaultUserID
	}

	state := s.store.Merge(userID, answers)

	for _, q := range conversationQuestions {
		if _, ok := state[q.slot]; !ok {
			return q.question
		}
	}

	reply, err := s.caller.Ask(ctx, buildPlannerPrompt(state))
	// State is cleared whether or not the dispatch succeeded; the next message
	// from this user starts a fresh questionnaire.
	s.store.Delete(userID)
	if err != nil {
		s.logger.Error("final itinerary call failed, substituting apology",
			"user_id", userID, "error", err.Error())
		return apologyReply
	}
	return reply
}

// tripPreferences serializes the completed slot set with stable key order.
type tripPreferences struct {
	Day             string `json:"day"`
	Location        string `json:"location"`
	Date            string `json:"date"`
	TravelStyle     string `json:"travel_style"`
	Budget          string `json:"budget"`
	Accommodation   string `json:"accommodation"`
	Activities      string `json:"activities"`
	Transportation  string `json:"transportation"`
	Dining          string `json:"dining"`
	SpecialRequests string `json:"special_requests"`
}

func buildPlannerPrompt(state map[string]string) string {
	prefs := tripPreferences{
		Day:             state["day"],
		Location:        state["location"],
		Date:            state["date"],
		TravelStyle:     state["travel_style"],
		Budget:          state["budget"],
		Accommodation:   state["accommodation"],
		Activities:      state["activities"],
		Transportation:  state["transportation"],
		Dining:          state["dining"],
		SpecialRequests: state["special_requests"],
	}
	encoded, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		// Cannot happen for a struct of strings; keep the prompt usable anyway.
		encoded = []byte(fmt.Sprintf("%+v", prefs))
	}
	return fmt.Sprintf(`You are a professional travel planner AI. Based on these user preferences, create a detailed day-wise itinerary:
%s
Return just the JSON formatted itinerary without extra text.`, encoded)
}
