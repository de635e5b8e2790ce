package session

import (
	"sync"
	"time"
)

// MaxHistory caps per-user history length. When exceeded, the oldest turns
// are dropped but the system prompt at index 0 is always retained.
const MaxHistory = 20

// conversation is the mutable per-user message log. Each conversation has its
// own mutex so users never contend with each other.
type conversation struct {
	mu       sync.Mutex
	messages []Message
}

// Store keeps one conversation per user id, created lazily on first contact.
// The store-level lock guards only the map; message reads and writes are
// serialized per user.
type Store struct {
	mu    sync.RWMutex
	users map[string]*conversation
	now   func() time.Time
}

// NewStore creates an empty conversation store.
func NewStore() *Store {
	return &Store{
		users: make(map[string]*conversation),
		now:   time.Now,
	}
}

// NewStoreWithClock creates a store with an injected clock for tests.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		users: make(map[string]*conversation),
		now:   now,
	}
}

// conversationFor returns the user's conversation, bootstrapping a fresh one
// seeded with the system prompt and greeting on first contact.
func (s *Store) conversationFor(userID string) *conversation {
	s.mu.RLock()
	c, ok := s.users[userID]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.users[userID]; ok {
		return c
	}
	c = &conversation{
		messages: []Message{
			{Role: RoleSystem, Content: SystemPrompt, Timestamp: s.now()},
			{Role: RoleAssistant, Content: Greeting, Timestamp: s.now()},
		},
	}
	s.users[userID] = c
	return c
}

// GetOrCreate returns a copy of the user's full message log, creating the
// conversation if this is the user's first contact.
func (s *Store) GetOrCreate(userID string) []Message {
	c := s.conversationFor(userID)
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Append adds one message to the user's history and prunes the log to
// MaxHistory entries, keeping the system prompt plus the most recent tail.
func (s *Store) Append(userID, role, content string) {
	c := s.conversationFor(userID)
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, Message{
		Role:      role,
		Content:   content,
		Timestamp: s.now(),
	})

	if len(c.messages) > MaxHistory {
		pruned := make([]Message, 0, MaxHistory)
		pruned = append(pruned, c.messages[0])
		pruned = append(pruned, c.messages[len(c.messages)-(MaxHistory-1):]...)
		c.messages = pruned
	}
}

// History returns the user's messages excluding system turns, for display.
func (s *Store) History(userID string) []Message {
	c := s.conversationFor(userID)
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Message, 0, len(c.messages))
	for _, msg := range c.messages {
		if msg.Role == RoleSystem {
			continue
		}
		out = append(out, msg)
	}
	return out
}

// Clear removes the user's conversation entirely. The next access recreates
// a fresh bootstrapped history. Clearing an unknown user is a no-op.
func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, userID)
}

// Len reports the stored history length for a user without creating one.
func (s *Store) Len(userID string) int {
	s.mu.RLock()
	c, ok := s.users[userID]
	s.mu.RUnlock()
	if !ok {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}
