// README: Perplexity client tests against a local httptest server.
package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPerplexityCompleteSuccess(t *testing.T) {
	var gotBody chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "bonjour"}},
			},
		})
	}))
	defer srv.Close()

	p := NewPerplexityProvider("test-key", srv.URL)
	got, err := p.Complete(context.Background(), "sonar-pro", []Message{
		{Role: RoleUser, Content: "hello"},
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got != "bonjour" {
		t.Fatalf("reply = %q", got)
	}
	if gotBody.Model != "sonar-pro" {
		t.Fatalf("model = %q", gotBody.Model)
	}
	if gotBody.Temperature != 0 {
		t.Fatalf("temperature = %v, want deterministic 0", gotBody.Temperature)
	}
	// Temperature must actually be on the wire, not omitted.
	b, _ := json.Marshal(chatRequest{Model: "m", Messages: []Message{{Role: RoleUser, Content: "x"}}})
	if !strings.Contains(string(b), `"temperature":0`) {
		t.Fatalf("temperature missing from serialized request: %s", b)
	}
}

func TestPerplexityCompleteSurfacesStatusCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewPerplexityProvider("test-key", srv.URL)
	_, err := p.Complete(context.Background(), "sonar-pro", []Message{{Role: RoleUser, Content: "hi"}})
	if err == nil {
		t.Fatal("expected error")
	}
	// Callers classify rate limiting by the status marker in the message.
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("error %q does not carry the 429 marker", err)
	}
}

func TestPerplexityCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	p := NewPerplexityProvider("test-key", srv.URL)
	if _, err := p.Complete(context.Background(), "sonar-pro", []Message{{Role: RoleUser, Content: "hi"}}); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestPerplexityCompleteRequiresKeyAndMessages(t *testing.T) {
	p := NewPerplexityProvider("", "")
	if _, err := p.Complete(context.Background(), "sonar-pro", []Message{{Role: RoleUser, Content: "hi"}}); err == nil {
		t.Fatal("expected error for missing api key")
	}
	p = NewPerplexityProvider("k", "")
	if _, err := p.Complete(context.Background(), "sonar-pro", nil); err == nil {
		t.Fatal("expected error for empty message list")
	}
}
