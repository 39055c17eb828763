package anthropic

import (
	"encoding/json"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"

	"github.com/tripsmith-ai/tripsmith/providers/ai"
)

func TestRequestToParams_SystemLifting(t *testing.T) {
	params, err := requestToParams(ai.ChatRequest{
		Model:        "claude-sonnet-4-5",
		SystemPrompt: "You are a travel planner.",
		Messages: []ai.Message{
			{Role: ai.RoleSystem, Content: "Answer in JSON."},
			{Role: ai.RoleUser, Content: "Plan a trip to Kyoto."},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(params.System) != 2 {
		t.Fatalf("expected 2 system blocks, got %d", len(params.System))
	}
	if params.System[0].Text != "You are a travel planner." {
		t.Errorf("first system block = %q", params.System[0].Text)
	}
	if params.System[1].Text != "Answer in JSON." {
		t.Errorf("second system block = %q", params.System[1].Text)
	}

	// The transcript system message must not survive as a conversation turn.
	if len(params.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(params.Messages))
	}
	if params.Messages[0].Role != sdk.MessageParamRoleUser {
		t.Errorf("role = %s, want user", params.Messages[0].Role)
	}
}

func TestRequestToParams_GenerationConfig(t *testing.T) {
	params, err := requestToParams(ai.ChatRequest{
		Model:    "claude-sonnet-4-5",
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
		GenerationConfig: &ai.GenerationConfig{
			MaxTokens:   2048,
			Temperature: 0.7,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if params.MaxTokens != 2048 {
		t.Errorf("MaxTokens = %d, want 2048", params.MaxTokens)
	}
	if !params.Temperature.Valid() || params.Temperature.Value != 0.7 {
		t.Errorf("Temperature = %+v, want 0.7", params.Temperature)
	}
}

func TestRequestToParams_DefaultMaxTokens(t *testing.T) {
	params, err := requestToParams(ai.ChatRequest{
		Model:    "claude-sonnet-4-5",
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.MaxTokens != defaultMaxTokens {
		t.Errorf("MaxTokens = %d, want %d", params.MaxTokens, defaultMaxTokens)
	}
}

func TestMessagesToParams_ToolResultsMerge(t *testing.T) {
	messages := []ai.Message{
		{Role: ai.RoleUser, Content: "Plan a weekend."},
		{
			Role: ai.RoleAssistant,
			ToolCalls: []ai.ToolCall{
				{ID: "toolu_01", Type: "function", Function: ai.ToolCallFunction{Name: "web_search", Arguments: `{"query": "Kyoto"}`}},
				{ID: "toolu_02", Type: "function", Function: ai.ToolCallFunction{Name: "get_weather", Arguments: `{"city": "Kyoto"}`}},
			},
		},
		{Role: ai.RoleTool, ToolCallID: "toolu_01", Name: "web_search", Content: "Kyoto has many temples."},
		{Role: ai.RoleTool, ToolCallID: "toolu_02", Name: "get_weather", Content: "Clear, 26°C"},
	}

	params, err := messagesToParams(messages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// user, assistant, and ONE merged user turn carrying both results
	if len(params) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(params))
	}

	assistant := params[1]
	if assistant.Role != sdk.MessageParamRoleAssistant {
		t.Fatalf("turn 1 role = %s, want assistant", assistant.Role)
	}
	if len(assistant.Content) != 2 {
		t.Fatalf("expected 2 tool_use blocks, got %d", len(assistant.Content))
	}
	if assistant.Content[0].OfToolUse == nil || assistant.Content[0].OfToolUse.Name != "web_search" {
		t.Errorf("first assistant block is not the web_search tool_use")
	}

	results := params[2]
	if results.Role != sdk.MessageParamRoleUser {
		t.Fatalf("turn 2 role = %s, want user", results.Role)
	}
	if len(results.Content) != 2 {
		t.Fatalf("expected 2 tool_result blocks in one user turn, got %d", len(results.Content))
	}
	for i, wantID := range []string{"toolu_01", "toolu_02"} {
		block := results.Content[i]
		if block.OfToolResult == nil {
			t.Fatalf("block %d is not a tool_result", i)
		}
		if block.OfToolResult.ToolUseID != wantID {
			t.Errorf("block %d tool_use_id = %s, want %s", i, block.OfToolResult.ToolUseID, wantID)
		}
	}
}

func TestMessagesToParams_MissingToolCallID(t *testing.T) {
	_, err := messagesToParams([]ai.Message{
		{Role: ai.RoleTool, Content: "orphan result"},
	})
	if err == nil {
		t.Fatal("expected error for tool message without tool_call_id")
	}
}

func TestMessagesToParams_EmptyToolArguments(t *testing.T) {
	params, err := messagesToParams([]ai.Message{
		{
			Role:      ai.RoleAssistant,
			ToolCalls: []ai.ToolCall{{ID: "toolu_01", Type: "function", Function: ai.ToolCallFunction{Name: "list_tips"}}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	block := params[0].Content[0]
	if block.OfToolUse == nil {
		t.Fatal("expected a tool_use block")
	}
	raw, ok := block.OfToolUse.Input.(json.RawMessage)
	if !ok {
		t.Fatalf("input type = %T, want json.RawMessage", block.OfToolUse.Input)
	}
	if string(raw) != "{}" {
		t.Errorf("empty arguments should normalize to {}, got %s", raw)
	}
}

func TestToolsToParams_SchemaDecomposition(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "object",
		"properties": {"query": {"type": "string"}},
		"required": ["query"],
		"additionalProperties": false
	}`)

	tools, err := toolsToParams([]ai.ToolDescription{
		{Name: "web_search", Description: "Search the web", Parameters: raw},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tools) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(tools))
	}

	tool := tools[0].OfTool
	if tool == nil {
		t.Fatal("expected OfTool variant")
	}
	if tool.Name != "web_search" {
		t.Errorf("name = %s", tool.Name)
	}
	if len(tool.InputSchema.Required) != 1 || tool.InputSchema.Required[0] != "query" {
		t.Errorf("required = %v, want [query]", tool.InputSchema.Required)
	}
	if tool.InputSchema.Properties == nil {
		t.Error("properties not carried over")
	}
}

func TestFinishReason(t *testing.T) {
	tests := []struct {
		reason   sdk.StopReason
		expected string
	}{
		{sdk.StopReasonEndTurn, "stop"},
		{sdk.StopReasonStopSequence, "stop"},
		{sdk.StopReasonMaxTokens, "length"},
		{sdk.StopReasonToolUse, "tool_calls"},
		{sdk.StopReasonRefusal, "content_filter"},
	}
	for _, tc := range tests {
		if got := finishReason(tc.reason); got != tc.expected {
			t.Errorf("finishReason(%s) = %s, want %s", tc.reason, got, tc.expected)
		}
	}
}
