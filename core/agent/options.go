package agent

import (
	"log/slog"

	"github.com/tripsmith-ai/tripsmith/providers/ai"
	"github.com/tripsmith-ai/tripsmith/providers/memory"
	"github.com/tripsmith-ai/tripsmith/providers/tool"
)

const (
	defaultMaxRounds = 10
	defaultMaxDepth  = 5
)

// Option configures an agent at construction time.
type Option func(*options)

type options struct {
	model        string
	description  string
	instructions string
	generation   *ai.GenerationConfig
	tools        []tool.Definition
	store        memory.Store
	logger       *slog.Logger
	middlewares  []Middleware
	maxRounds    int
	maxDepth     int
}

// WithModel selects the model identifier sent on every provider call.
func WithModel(model string) Option {
	return func(o *options) {
		o.model = model
	}
}

// WithDescription sets a short summary of what the agent does. It becomes
// the default tool description when the agent is exposed via [Agent.AsTool].
func WithDescription(description string) Option {
	return func(o *options) {
		o.description = description
	}
}

// WithInstructions sets the system instructions seeded as the first message
// of a fresh conversation. Resumed conversations keep their existing system
// message and the instructions are not re-added.
func WithInstructions(instructions string) Option {
	return func(o *options) {
		o.instructions = instructions
	}
}

// WithGenerationConfig sets the sampling parameters forwarded on every
// model call.
func WithGenerationConfig(config ai.GenerationConfig) Option {
	return func(o *options) {
		o.generation = &config
	}
}

// WithTools registers the tools the agent may dispatch to. Duplicate names
// fail construction.
func WithTools(tools ...tool.Definition) Option {
	return func(o *options) {
		o.tools = append(o.tools, tools...)
	}
}

// WithMemory injects the conversation store. A store that already holds
// messages resumes that conversation. Defaults to a fresh in-memory store
// private to the agent.
func WithMemory(store memory.Store) Option {
	return func(o *options) {
		if store != nil {
			o.store = store
		}
	}
}

// WithLogger sets the logger used for loop and tool-dispatch events.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMiddleware wraps provider calls with the given middlewares. The first
// middleware listed is the outermost wrapper.
func WithMiddleware(middlewares ...Middleware) Option {
	return func(o *options) {
		o.middlewares = append(o.middlewares, middlewares...)
	}
}

// WithMaxRounds caps the number of tool dispatch rounds in a single run.
// When the model still wants tools after the cap, the run ends with the last
// response as the final answer and Result.Capped set. Values below one are
// ignored; the default is 10.
func WithMaxRounds(rounds int) Option {
	return func(o *options) {
		if rounds > 0 {
			o.maxRounds = rounds
		}
	}
}

// WithMaxDepth caps sub-agent nesting for agents exposed via
// [Agent.AsTool]. A delegation that would exceed the cap fails as a
// contained tool error. Values below one are ignored; the default is 5.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}
