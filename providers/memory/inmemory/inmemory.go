package inmemory

import (
	"context"
	"sync"

	"github.com/tripsmith-ai/tripsmith/providers/ai"
	"github.com/tripsmith-ai/tripsmith/providers/memory"
)

// Store is a simple, concurrency-safe in-memory transcript. It uses an
// RWMutex to guard access and is efficient for the read-heavy pattern of the
// orchestration loop, which replays the transcript on every model call.
type Store struct {
	mu       sync.RWMutex
	messages []ai.Message
}

// New returns a new, empty [Store] ready for immediate use.
func New() *Store {
	return &Store{
		messages: []ai.Message{},
	}
}

// Ensure Store implements memory.Store at compile time.
var _ memory.Store = (*Store)(nil)

// AppendMessage stores a copy of message at the end of the transcript.
// It is a no-op when message is nil. The returned error is always nil.
func (s *Store) AppendMessage(_ context.Context, message *ai.Message) error {
	if message == nil {
		return nil
	}
	s.mu.Lock()
	s.messages = append(s.messages, *message)
	s.mu.Unlock()
	return nil
}

// AllMessages returns a copy of all messages to avoid external mutation of
// internal state. The returned error is always nil.
func (s *Store) AllMessages(_ context.Context) ([]ai.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ai.Message, len(s.messages))
	copy(out, s.messages)
	return out, nil
}

// Count returns the number of stored messages. The returned error is
// always nil.
func (s *Store) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	n := len(s.messages)
	s.mu.RUnlock()
	return n, nil
}

// ClearMessages removes all messages while retaining the underlying slice
// capacity, so subsequent appends do not immediately trigger a reallocation.
// The returned error is always nil.
func (s *Store) ClearMessages(_ context.Context) error {
	s.mu.Lock()
	s.messages = s.messages[:0]
	s.mu.Unlock()
	return nil
}
