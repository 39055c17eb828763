package tool

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tripsmith-ai/tripsmith/providers/ai"
)

// Executor dispatches model-requested tool calls against a [Registry].
//
// Failure handling is split by who can fix the problem. An unknown tool name
// means the advertised tool set and the registry disagree, so the error
// propagates and kills the session. Everything else that goes wrong inside a
// call (argument validation, handler errors, panics) is contained: the model
// receives an "Error: ..." result string and may self-correct on the next
// round.
type Executor struct {
	registry *Registry
	logger   *slog.Logger
}

// NewExecutor creates an executor bound to registry.
func NewExecutor(registry *Registry, options ...func(*Executor)) *Executor {
	e := &Executor{
		registry: registry,
		logger:   slog.Default(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// WithLogger sets the logger used for per-call execution records.
func WithLogger(logger *slog.Logger) func(*Executor) {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Execute runs a single tool call and returns its result text. The returned
// error is non-nil only for unresolvable calls ([ErrUnknownTool]); contained
// failures come back as a result string describing the error.
func (e *Executor) Execute(ctx context.Context, call ai.ToolCall) (string, error) {
	name := call.Function.Name
	def, err := e.registry.Lookup(name)
	if err != nil {
		return "", err
	}

	start := time.Now()
	result, err := e.invoke(ctx, def, call.Function.Arguments)
	duration := time.Since(start)

	if err != nil {
		e.logger.WarnContext(ctx, "tool call failed",
			"tool", name,
			"tool_call_id", call.ID,
			"duration", duration,
			"error", err.Error(),
		)
		return "Error: " + err.Error(), nil
	}

	e.logger.DebugContext(ctx, "tool call completed",
		"tool", name,
		"tool_call_id", call.ID,
		"duration", duration,
		"result_length", len(result),
	)
	return result, nil
}

// invoke runs the tool behind a panic guard. A handler panic must not take
// down the session; it is converted to an ordinary error and contained like
// any other handler failure.
func (e *Executor) invoke(ctx context.Context, def Definition, arguments string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool panicked: %v", r)
		}
	}()
	return def.Call(ctx, arguments)
}
