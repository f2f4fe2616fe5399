package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/justsurfingit/job-application-assistant/internal/models"
)

// Store keeps conversation history in memory for the lifetime of the
// process. There is no durable persistence of chat history: a restart or an
// explicit reset clears it. The Google Sheet, not this store, is the system
// of record for applications.
type Store struct {
	mu       sync.Mutex
	sessions map[string][]models.ChatMessage
}

func NewStore() *Store {
	return &Store{sessions: make(map[string][]models.ChatMessage)}
}

// Ensure returns the given session id, minting a fresh one when blank.
func (s *Store) Ensure(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

// Append adds one turn to a session. Turns are never mutated afterwards.
func (s *Store) Append(id string, msg models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = append(s.sessions[id], msg)
}

// History returns a copy of the session's turns, oldest first.
func (s *Store) History(id string) []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	turns := s.sessions[id]
	out := make([]models.ChatMessage, len(turns))
	copy(out, turns)
	return out
}

// Reset clears the conversation for one session. It never touches the sheet.
func (s *Store) Reset(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
