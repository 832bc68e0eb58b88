package chat

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store persists chat messages. The chat pipeline treats it as
// best-effort: a failing Append must never abort a turn.
type Store interface {
	Append(ctx context.Context, message Message) error
	ListByConversation(ctx context.Context, conversationID string) ([]Message, error)
}

// MemoryStore implements Store with an in-memory map, suitable for
// early iterations.
type MemoryStore struct {
	mu       sync.RWMutex
	messages map[string][]Message
}

// NewMemoryStore bootstraps the in-memory message store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{messages: make(map[string][]Message)}
}

// Append records a message under its conversation.
func (s *MemoryStore) Append(_ context.Context, message Message) error {
	message.ID = uuid.NewString()
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	s.messages[message.ConversationID] = append(s.messages[message.ConversationID], message)
	s.mu.Unlock()
	return nil
}

// ListByConversation returns stored messages for the given conversation.
func (s *MemoryStore) ListByConversation(_ context.Context, conversationID string) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := s.messages[conversationID]
	copied := make([]Message, len(messages))
	copy(copied, messages)
	return copied, nil
}
