package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tripsmith-ai/tripsmith/core/parse"
	"github.com/tripsmith-ai/tripsmith/internal/schema"
	"github.com/tripsmith-ai/tripsmith/providers/ai"
)

// Definition is the provider-agnostic interface for all tools. It abstracts
// over the concrete generic type parameters of [Tool] so that tools can be
// stored, advertised, and dispatched without knowing their exact input and
// output types. Agents exposed as tools implement it directly.
type Definition interface {
	// Describe returns the metadata (name, description, parameter schema)
	// used to advertise this tool to the model.
	Describe() ai.ToolDescription

	// Call invokes the tool with the raw JSON argument string produced by
	// the model and returns the tool-result text. Argument problems surface
	// as errors wrapping [ErrBadArguments].
	Call(ctx context.Context, arguments string) (string, error)
}

// Tool binds a name and description to a strongly-typed Go function. The
// JSON Schema for the input type I is derived by reflection at construction
// and every call is validated against it before the handler runs.
type Tool[I, O any] struct {
	Name        string
	Description string
	Function    func(ctx context.Context, input I) (O, error)

	params *schema.Generated
}

// funcToolOptions holds optional configuration for a tool created via [New].
type funcToolOptions struct {
	Description string
}

// WithDescription sets a human-readable description for the tool. Providers
// surface this description to the language model to help it decide when and
// how to invoke the tool.
func WithDescription(description string) func(*funcToolOptions) {
	return func(o *funcToolOptions) {
		o.Description = description
	}
}

// New constructs a [Tool] from the given name and handler function. The
// parameter schema is derived from the input type I via reflection; struct
// fields become required properties unless tagged omitempty. Construction
// fails when the schema cannot be derived, so misdeclared tools are caught
// before an agent ever runs.
//
// Example:
//
//	search, err := tool.New("web_search", searchFunc,
//	    tool.WithDescription("Search the web for current information."),
//	)
func New[I, O any](name string, function func(ctx context.Context, input I) (O, error), options ...func(*funcToolOptions)) (*Tool[I, O], error) {
	if name == "" {
		return nil, fmt.Errorf("tripsmith: tool name is empty")
	}
	if function == nil {
		return nil, fmt.Errorf("tripsmith: tool %s has no handler", name)
	}

	toolOptions := &funcToolOptions{}
	for _, option := range options {
		option(toolOptions)
	}

	params, err := schema.Generate[I]()
	if err != nil {
		return nil, fmt.Errorf("tripsmith: derive parameter schema for tool %s: %w", name, err)
	}

	return &Tool[I, O]{
		Name:        name,
		Description: toolOptions.Description,
		Function:    function,
		params:      params,
	}, nil
}

// Describe returns the [ai.ToolDescription] used to advertise this tool.
func (t *Tool[I, O]) Describe() ai.ToolDescription {
	return ai.ToolDescription{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  t.params.Raw(),
	}
}

// Call validates the raw argument JSON against the tool's parameter schema,
// decodes it into the input type, runs the handler, and serializes the
// output. String outputs pass through unencoded so the model sees plain
// text; other output types are JSON-encoded.
//
// Malformed arguments or schema violations return an error wrapping
// [ErrBadArguments] without invoking the handler.
func (t *Tool[I, O]) Call(ctx context.Context, arguments string) (string, error) {
	data, err := argumentJSON(arguments)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrBadArguments, t.Name, err)
	}
	if err := t.params.ValidateJSON(data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrBadArguments, t.Name, err)
	}

	var input I
	if err := json.Unmarshal(data, &input); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrBadArguments, t.Name, err)
	}

	output, err := t.Function(ctx, input)
	if err != nil {
		return "", err
	}

	if text, ok := any(output).(string); ok {
		return text, nil
	}
	outputBytes, err := json.Marshal(output)
	if err != nil {
		return "", fmt.Errorf("tripsmith: marshal output of tool %s: %w", t.Name, err)
	}
	return string(outputBytes), nil
}

// argumentJSON normalizes the model-provided argument payload. Models
// occasionally send an empty string for no-argument tools and relaxed JSON
// elsewhere; both are recovered before validation.
func argumentJSON(arguments string) ([]byte, error) {
	if arguments == "" {
		return []byte("{}"), nil
	}
	return parse.RecoverJSON(arguments)
}
