package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchArgs struct {
	Query string `json:"query" jsonschema_description:"The search query"`
	Limit int    `json:"limit,omitempty"`
}

type mathArgs struct {
	A  float64 `json:"a"`
	B  float64 `json:"b"`
	Op string  `json:"op" jsonschema:"enum=add,enum=subtract"`
}

func TestGenerate_RawShape(t *testing.T) {
	g, err := Generate[searchArgs]()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(g.Raw(), &doc))

	assert.Equal(t, "object", doc["type"])
	assert.NotContains(t, doc, "$schema")
	assert.NotContains(t, doc, "$id")
	assert.Equal(t, false, doc["additionalProperties"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok, "properties must be an object")
	assert.Contains(t, props, "query")
	assert.Contains(t, props, "limit")

	query, ok := props["query"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "The search query", query["description"])

	// omitempty fields stay optional; the rest are required.
	required, ok := doc["required"].([]any)
	require.True(t, ok, "required must be present")
	assert.Equal(t, []any{"query"}, required)
}

func TestGenerate_EnumTag(t *testing.T) {
	g, err := Generate[mathArgs]()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(g.Raw(), &doc))
	props := doc["properties"].(map[string]any)
	op := props["op"].(map[string]any)
	assert.ElementsMatch(t, []any{"add", "subtract"}, op["enum"])
}

func TestValidateJSON(t *testing.T) {
	g, err := Generate[searchArgs]()
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "valid full", data: `{"query":"hotels in Tokyo","limit":3}`, wantErr: false},
		{name: "valid without optional", data: `{"query":"hotels in Tokyo"}`, wantErr: false},
		{name: "missing required field", data: `{"limit":3}`, wantErr: true},
		{name: "wrong type", data: `{"query":42}`, wantErr: true},
		{name: "undeclared property", data: `{"query":"x","verbose":true}`, wantErr: true},
		{name: "not an object", data: `"just a string"`, wantErr: true},
		{name: "malformed JSON", data: `{"query":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.ValidateJSON([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLooseJSON(t *testing.T) {
	g, err := Generate[searchArgs]()
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "valid", data: `{"query":"ryokan in Kyoto"}`, wantErr: false},
		{name: "undeclared property tolerated", data: `{"query":"ryokan in Kyoto","notes":"model chatter"}`, wantErr: false},
		{name: "missing required field still fails", data: `{"notes":"model chatter"}`, wantErr: true},
		{name: "wrong type still fails", data: `{"query":true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.ValidateLooseJSON([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_DecodedInstance(t *testing.T) {
	g, err := Generate[mathArgs]()
	require.NoError(t, err)

	require.NoError(t, g.Validate(map[string]any{"a": 1.5, "b": 2.0, "op": "add"}))
	assert.Error(t, g.Validate(map[string]any{"a": 1.5, "b": 2.0, "op": "divide"}), "value outside the enum must fail")
}
