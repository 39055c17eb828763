package agent

import (
	"context"

	"github.com/tripsmith-ai/tripsmith/providers/ai"
)

// SendFunc is a function that sends a chat request to the LLM provider and
// returns the completed response. It is the base unit threaded through the
// middleware chain.
type SendFunc func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error)

// Middleware intercepts and optionally transforms provider calls. Each
// Middleware receives the next SendFunc in the chain and returns a new
// SendFunc that wraps it. Middlewares are applied outermost-first: the first
// middleware passed to WithMiddleware is the outermost wrapper.
//
// Retry, timeout, and logging concerns belong here rather than in the
// orchestration loop, which treats every provider failure as final.
type Middleware func(next SendFunc) SendFunc

// buildChain constructs the linear middleware chain over the provider.
// Middlewares are applied in reverse so that the first entry in the slice
// becomes the outermost wrapper, i.e. the first to execute on an incoming
// request.
func buildChain(provider ai.Provider, middlewares []Middleware) SendFunc {
	var chain SendFunc = func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
		return provider.SendMessage(ctx, request)
	}

	for i := len(middlewares) - 1; i >= 0; i-- {
		chain = middlewares[i](chain)
	}

	return chain
}
