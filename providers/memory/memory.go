package memory

import (
	"context"

	"github.com/tripsmith-ai/tripsmith/providers/ai"
)

// Store holds the transcript of one conversation. Implementations must keep
// messages in append order; the orchestration loop depends on chronological
// replay when it rebuilds provider requests.
type Store interface {
	// AppendMessage stores a copy of message at the end of the transcript.
	AppendMessage(ctx context.Context, message *ai.Message) error

	// AllMessages returns the full transcript in append order. The returned
	// slice must be safe for the caller to hold while the store keeps
	// receiving appends.
	AllMessages(ctx context.Context) ([]ai.Message, error)

	// Count returns the number of stored messages.
	Count(ctx context.Context) (int, error)

	// ClearMessages removes the whole transcript.
	ClearMessages(ctx context.Context) error
}
