package agent

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/tripsmith-ai/tripsmith/internal/schema"
	"github.com/tripsmith-ai/tripsmith/providers/ai"
	"github.com/tripsmith-ai/tripsmith/providers/memory"
	"github.com/tripsmith-ai/tripsmith/providers/memory/inmemory"
	"github.com/tripsmith-ai/tripsmith/providers/tool"
)

// Agent drives a tool-calling conversation with an LLM provider and shapes
// the final answer into T. Use T = string for free-text agents; any other
// type is reflected into a JSON Schema that is sent with each request and
// used to validate the final answer.
//
// An agent owns one conversation: successive Run calls extend the same
// transcript. Run is sequential; do not call it concurrently on the same
// agent.
type Agent[T any] struct {
	name         string
	description  string
	provider     ai.Provider
	send         SendFunc
	registry     *tool.Registry
	executor     *tool.Executor
	store        memory.Store
	logger       *slog.Logger
	model        string
	instructions string
	generation   *ai.GenerationConfig
	output       *schema.Generated // nil for free-text agents
	maxRounds    int
	maxDepth     int
}

// New constructs an agent. Everything that can be checked up front is:
// tools are registered (duplicate names fail), the output schema for T is
// reflected and compiled (unless T is a string type), and the middleware
// chain is assembled around the provider.
func New[T any](name string, provider ai.Provider, opts ...Option) (*Agent[T], error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("tripsmith: agent name is empty")
	}
	if provider == nil {
		return nil, fmt.Errorf("tripsmith: agent %s has no provider", name)
	}

	o := &options{
		maxRounds: defaultMaxRounds,
		maxDepth:  defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(o)
	}

	registry, err := tool.NewRegistry(o.tools...)
	if err != nil {
		return nil, fmt.Errorf("tripsmith: agent %s: %w", name, err)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}
	store := o.store
	if store == nil {
		store = inmemory.New()
	}

	var output *schema.Generated
	if reflect.TypeFor[T]().Kind() != reflect.String {
		output, err = schema.Generate[T]()
		if err != nil {
			return nil, fmt.Errorf("tripsmith: agent %s: derive output schema: %w", name, err)
		}
	}

	return &Agent[T]{
		name:         name,
		description:  o.description,
		provider:     provider,
		send:         buildChain(provider, o.middlewares),
		registry:     registry,
		executor:     tool.NewExecutor(registry, tool.WithLogger(logger)),
		store:        store,
		logger:       logger,
		model:        o.model,
		instructions: o.instructions,
		generation:   o.generation,
		output:       output,
		maxRounds:    o.maxRounds,
		maxDepth:     o.maxDepth,
	}, nil
}

// Name returns the agent's name.
func (a *Agent[T]) Name() string {
	return a.name
}

// Description returns the agent's summary, if one was configured.
func (a *Agent[T]) Description() string {
	return a.description
}

// Tools returns the names of the agent's registered tools in registration
// order.
func (a *Agent[T]) Tools() []string {
	return a.registry.Names()
}
