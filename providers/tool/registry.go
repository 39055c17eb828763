package tool

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tripsmith-ai/tripsmith/providers/ai"
)

// Registry holds the fixed set of tools an agent can dispatch to. Lookups
// are case-insensitive because models occasionally echo tool names with
// different casing; descriptions keep the names exactly as registered.
//
// The registry is safe for concurrent readers. Registration happens at agent
// construction and the set does not change afterwards.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Definition
	order []string
}

// NewRegistry creates a registry pre-populated with the given tools.
// Registration fails on the first duplicate name.
func NewRegistry(tools ...Definition) (*Registry, error) {
	r := &Registry{
		tools: make(map[string]Definition, len(tools)),
	}
	for _, t := range tools {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds one tool. A second tool under the same name (compared
// case-insensitively) is rejected with [ErrDuplicateTool].
func (r *Registry) Register(def Definition) error {
	if def == nil {
		return fmt.Errorf("tripsmith: nil tool definition")
	}
	info := def.Describe()
	if info.Name == "" {
		return fmt.Errorf("tripsmith: tool name is empty")
	}

	key := strings.ToLower(info.Name)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, info.Name)
	}
	r.tools[key] = def
	r.order = append(r.order, key)
	return nil
}

// Lookup resolves a tool by name (case-insensitive). Exact match only; an
// unregistered name returns [ErrUnknownTool].
func (r *Registry) Lookup(name string) (Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, exists := r.tools[strings.ToLower(name)]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return def, nil
}

// Descriptions returns the advertisement for every registered tool in
// registration order. The same slice content is produced on every call, so
// requests built from it are deterministic.
func (r *Registry) Descriptions() []ai.ToolDescription {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ai.ToolDescription, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.tools[key].Describe())
	}
	return out
}

// Names returns the registered tool names in registration order, as
// registered (not normalized).
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.tools[key].Describe().Name)
	}
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}
