// README: State machine tests; question order, dispatch, apology, reset.
package conversation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

type stubAsker struct {
	reply   string
	err     error
	calls   int
	prompts []string
}

func (a *stubAsker) Ask(_ context.Context, prompt string) (string, error) {
	a.calls++
	a.prompts = append(a.prompts, prompt)
	return a.reply, a.err
}

func newTestService(asker Asker) *Service {
	return NewService(NewStore(), asker, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var allSlots = []string{
	"day", "location", "date", "travel_style", "budget",
	"accommodation", "activities", "transportation", "dining", "special_requests",
}

func TestHandleMessageAsksQuestionsInFixedOrder(t *testing.T) {
	asker := &stubAsker{reply: "your itinerary"}
	svc := newTestService(asker)
	ctx := context.Background()

	wantQuestions := []string{
		"Which day are you planning your tour?",
		"Which city/country/region do you want to visit?",
		"What are your preferred travel dates?",
		"Are you looking for luxury, mid-range, or budget travel?",
		"Approximate budget per person (including accommodation, food, transport, activities)?",
		"Do you prefer hotels, hostels, resorts, or homestays?",
		"What kind of experiences are you interested in? (nature, adventure, cultural experiences, shopping, nightlife)",
		"How do you prefer to travel locally? (rental car, public transport, walking, bike)",
		"Do you have any dietary restrictions or food interests?",
		"Any special requests, accessibility needs, or events you want included?",
	}

	// First contact with no answers should ask the first question.
	if got := svc.HandleMessage(ctx, "u1", nil); got != wantQuestions[0] {
		t.Fatalf("first response = %q, want %q", got, wantQuestions[0])
	}

	// Answer one slot per turn, in order. Each turn should ask for the
	// following slot; the final turn should dispatch the AI call.
	for i, slot := range allSlots {
		got := svc.HandleMessage(ctx, "u1", map[string]string{slot: "answer"})
		if i < len(allSlots)-1 {
			if got != wantQuestions[i+1] {
				t.Fatalf("after answering %q got %q, want %q", slot, got, wantQuestions[i+1])
			}
			continue
		}
		if got != "your itinerary" {
			t.Fatalf("final response = %q, want AI reply", got)
		}
	}
	if asker.calls != 1 {
		t.Fatalf("AI called %d times, want 1", asker.calls)
	}

	// State is cleared after dispatch: the sequence starts over.
	if got := svc.HandleMessage(ctx, "u1", nil); got != wantQuestions[0] {
		t.Fatalf("post-dispatch response = %q, want first question again", got)
	}
}

func TestHandleMessageAcceptsMultipleAnswersAtOnce(t *testing.T) {
	asker := &stubAsker{reply: "done"}
	svc := newTestService(asker)

	answers := make(map[string]string, len(allSlots))
	for _, s := range allSlots {
		answers[s] = "v"
	}
	got := svc.HandleMessage(context.Background(), "u2", answers)
	if got != "done" {
		t.Fatalf("response = %q, want AI reply when every slot is supplied", got)
	}
}

func TestHandleMessageOverwritesEarlierAnswers(t *testing.T) {
	asker := &stubAsker{reply: "done"}
	svc := newTestService(asker)
	ctx := context.Background()

	svc.HandleMessage(ctx, "u3", map[string]string{"location": "Paris"})
	answers := map[string]string{"location": "Lisbon"}
	for _, s := range allSlots {
		if s == "location" {
			continue
		}
		answers[s] = "v"
	}
	svc.HandleMessage(ctx, "u3", answers)

	if len(asker.prompts) != 1 {
		t.Fatalf("AI called %d times, want 1", len(asker.prompts))
	}
	if !strings.Contains(asker.prompts[0], `"location": "Lisbon"`) {
		t.Fatalf("prompt kept stale answer: %s", asker.prompts[0])
	}
}

func TestHandleMessageSubstitutesApologyAndStillClearsState(t *testing.T) {
	asker := &stubAsker{err: errors.New("api error (status 429)")}
	store := NewStore()
	svc := NewService(store, asker, slog.New(slog.NewTextHandler(io.Discard, nil)))

	answers := make(map[string]string, len(allSlots))
	for _, s := range allSlots {
		answers[s] = "v"
	}
	got := svc.HandleMessage(context.Background(), "u4", answers)
	if got != "Sorry, I couldn't generate the itinerary at this time." {
		t.Fatalf("response = %q, want apology", got)
	}
	if store.Has("u4") {
		t.Fatal("state must be cleared even when the dispatch fails")
	}
}

func TestHandleMessageDefaultsUserID(t *testing.T) {
	asker := &stubAsker{}
	store := NewStore()
	svc := NewService(store, asker, slog.New(slog.NewTextHandler(io.Discard, nil)))

	svc.HandleMessage(context.Background(), "", map[string]string{"day": "Saturday"})
	if !store.Has(DefaultUserID) {
		t.Fatal("empty user id should map onto the default user")
	}
}

func TestBuildPlannerPromptKeyOrder(t *testing.T) {
	state := map[string]string{}
	for _, s := range allSlots {
		state[s] = "v-" + s
	}
	prompt := buildPlannerPrompt(state)

	last := -1
	for _, s := range allSlots {
		idx := strings.Index(prompt, `"`+s+`"`)
		if idx < 0 {
			t.Fatalf("prompt missing slot %q", s)
		}
		if idx < last {
			t.Fatalf("slot %q serialized out of order", s)
		}
		last = idx
	}
	if !strings.Contains(prompt, "professional travel planner") {
		t.Fatal("prompt lost its planner instruction")
	}
}
