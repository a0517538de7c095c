// README: In-memory conversation state store keyed by user id.
package conversation

import "sync"

// Store holds in-flight slot answers per user id. State lives only in process
// memory: a restart loses all open conversations.
//
// A single coarse lock guards the map, so operations on different user ids
// never corrupt each other. Concurrent duplicate submissions for the SAME
// user id are merged last-write-wins per slot; which wins is not guaranteed.
type Store struct {
	mu     sync.RWMutex
	states map[string]map[string]string
}

func NewStore() *Store {
	return &Store{states: make(map[string]map[string]string)}
}

// Merge creates the user's state on first use, writes the supplied answers
// over it in slot order, and returns a snapshot copy of the merged state.
// Keys outside the fixed slot list are ignored.
func (s *Store) Merge(userID string, answers map[string]string) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[userID]
	if !ok {
		state = make(map[string]string, len(conversationQuestions))
		s.states[userID] = state
	}
	for _, q := range conversationQuestions {
		if v, ok := answers[q.slot]; ok {
			state[q.slot] = v
		}
	}

	snapshot := make(map[string]string, len(state))
	for k, v := range state {
		snapshot[k] = v
	}
	return snapshot
}

// Delete removes the user's state. Deleting an absent user is a no-op.
func (s *Store) Delete(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
}

// Has reports whether the user currently has in-flight state.
func (s *Store) Has(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.states[userID]
	return ok
}
