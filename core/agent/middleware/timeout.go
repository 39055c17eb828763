package middleware

import (
	"context"
	"time"

	"github.com/tripsmith-ai/tripsmith/core/agent"
	"github.com/tripsmith-ai/tripsmith/providers/ai"
)

// NewTimeoutMiddleware creates a middleware that enforces a per-request
// deadline on provider calls. The deadline covers a single model call, not
// the whole run; a session with several tool rounds gets a fresh deadline
// for each call.
//
// If the caller supplies a context that already has a shorter deadline, that
// shorter deadline wins as per normal context semantics.
func NewTimeoutMiddleware(timeout time.Duration) agent.Middleware {
	return func(next agent.SendFunc) agent.SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			return next(ctx, request)
		}
	}
}
