package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	validator "github.com/santhosh-tekuri/jsonschema/v6"
)

// Generated holds the JSON Schema reflected from a Go type. The raw form is
// embedded in provider requests; the compiled forms validate instances before
// they are decoded into the type. Strict validation rejects undeclared
// properties (the contract advertised to the model); loose validation checks
// declared properties only, since models often add commentary fields the
// contract never asked for.
type Generated struct {
	raw     json.RawMessage
	strict  *validator.Schema
	lenient *validator.Schema
}

// Generate reflects T into a JSON Schema and compiles it for validation.
// Struct fields become required properties unless tagged omitempty, and the
// wire form carries additionalProperties: false throughout. Field metadata
// follows the usual jsonschema struct tags (jsonschema_description, enum,
// and so on).
func Generate[T any]() (*Generated, error) {
	r := &jsonschema.Reflector{
		Anonymous:                 true,
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	reflected := r.Reflect(v)
	// The $schema marker is noise on the provider wire.
	reflected.Version = ""

	raw, err := json.Marshal(reflected)
	if err != nil {
		return nil, fmt.Errorf("marshal schema for %T: %w", v, err)
	}

	strict, err := compile(raw)
	if err != nil {
		return nil, fmt.Errorf("compile schema for %T: %w", v, err)
	}

	loose, err := loosen(raw)
	if err != nil {
		return nil, fmt.Errorf("loosen schema for %T: %w", v, err)
	}
	lenient, err := compile(loose)
	if err != nil {
		return nil, fmt.Errorf("compile loose schema for %T: %w", v, err)
	}

	return &Generated{raw: raw, strict: strict, lenient: lenient}, nil
}

// Raw returns the schema as a JSON object suitable for embedding verbatim in
// provider requests (tool parameters, response formats).
func (g *Generated) Raw() json.RawMessage {
	return g.raw
}

// Validate checks an already-decoded JSON instance against the strict schema.
func (g *Generated) Validate(instance any) error {
	return g.strict.Validate(instance)
}

// ValidateJSON decodes data and validates it strictly: missing required
// properties, type mismatches, and undeclared properties all fail.
func (g *Generated) ValidateJSON(data []byte) error {
	instance, err := validator.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode instance: %w", err)
	}
	return g.strict.Validate(instance)
}

// ValidateLooseJSON decodes data and validates declared properties only.
// Undeclared properties are tolerated; missing or mistyped declared
// properties still fail.
func (g *Generated) ValidateLooseJSON(data []byte) error {
	instance, err := validator.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode instance: %w", err)
	}
	return g.lenient.Validate(instance)
}

func compile(raw json.RawMessage) (*validator.Schema, error) {
	doc, err := validator.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	compiler := validator.NewCompiler()
	if err := compiler.AddResource("schema.json", doc); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

// loosen returns a copy of raw with every additionalProperties constraint
// removed, at any nesting depth.
func loosen(raw json.RawMessage) (json.RawMessage, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	stripAdditionalProperties(doc)
	return json.Marshal(doc)
}

func stripAdditionalProperties(node map[string]any) {
	delete(node, "additionalProperties")
	for _, val := range node {
		switch v := val.(type) {
		case map[string]any:
			stripAdditionalProperties(v)
		case []any:
			for _, item := range v {
				if m, ok := item.(map[string]any); ok {
					stripAdditionalProperties(m)
				}
			}
		}
	}
}
