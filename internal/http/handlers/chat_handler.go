// README: Chat handlers; plain single-turn chat and the conversational flow.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"journey/internal/modules/conversation"
)

// Asker is the single-turn AI dependency of the plain chat endpoint.
// Satisfied by *chat.Caller.
type Asker interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

type ChatHandler struct {
	caller Asker
	convo  *conversation.Service
}

func NewChatHandler(caller Asker, convo *conversation.Service) *ChatHandler {
	return &ChatHandler{caller: caller, convo: convo}
}

type legacyChatReq struct {
	Query *string `json:"query"`
}

// LegacyChat handles POST /legacy_chat: one prompt in, one reply out.
// Empty or whitespace-only queries short-circuit to an empty reply without
// touching the AI API.
func (h *ChatHandler) LegacyChat(c *gin.Context) {
	var req legacyChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Query == nil {
		writeError(c, http.StatusBadRequest, "query is required")
		return
	}

	q := strings.TrimSpace(*req.Query)
	if q == "" {
		writeJSON(c, http.StatusOK, gin.H{"reply": ""})
		return
	}

	reply, err := h.caller.Ask(c.Request.Context(), q)
	if err != nil {
		writeChatError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"reply": reply})
}

type conversationReq struct {
	UserID *string `json:"user_id"`
	// Query is accepted for older clients but carries no slot value.
	Query           *string `json:"query"`
	Day             *string `json:"day"`
	Location        *string `json:"location"`
	Date            *string `json:"date"`
	TravelStyle     *string `json:"travel_style"`
	Budget          *string `json:"budget"`
	Accommodation   *string `json:"accommodation"`
	Activities      *string `json:"activities"`
	Transportation  *string `json:"transportation"`
	Dining          *string `json:"dining"`
	SpecialRequests *string `json:"special_requests"`
}

func (r *conversationReq) answers() map[string]string {
	out := map[string]string{}
	put := func(slot string, v *string) {
		if v != nil {
			out[slot] = *v
		}
	}
	put("day", r.Day)
	put("location", r.Location)
	put("date", r.Date)
	put("travel_style", r.TravelStyle)
	put("budget", r.Budget)
	put("accommodation", r.Accommodation)
	put("activities", r.Activities)
	put("transportation", r.Transportation)
	put("dining", r.Dining)
	put("special_requests", r.SpecialRequests)
	return out
}

// Chat handles POST /chat: the slot-filling conversational flow. The response
// is either the next question or the final AI-generated itinerary text.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req conversationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	userID := conversation.DefaultUserID
	if req.UserID != nil && strings.TrimSpace(*req.UserID) != "" {
		userID = strings.TrimSpace(*req.UserID)
	}

	resp := h.convo.HandleMessage(c.Request.Context(), userID, req.answers())
	writeJSON(c, http.StatusOK, gin.H{"response": resp})
}
