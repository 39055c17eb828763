package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tripsmith-ai/tripsmith/providers/ai"
)

func TestSendMessageWithoutAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("ANTHROPIC_BASE_URL", "")

	p := New()
	_, err := p.SendMessage(context.Background(), ai.ChatRequest{
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hello"}},
	})
	if err == nil {
		t.Fatal("expected error when API key is unset")
	}
	if !strings.Contains(err.Error(), "ANTHROPIC_API_KEY") {
		t.Errorf("error should mention the missing key, got: %v", err)
	}
}

func TestSendMessageWithTextResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/messages") {
			t.Errorf("path = %s, want .../messages", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("x-api-key = %s, want test-key", r.Header.Get("x-api-key"))
		}

		var requestBody map[string]any
		if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
			t.Fatal("failed to decode request body: " + err.Error())
		}
		if _, ok := requestBody["system"]; !ok {
			t.Error("expected system blocks in request")
		}
		if requestBody["max_tokens"] == nil {
			t.Error("expected max_tokens in request")
		}

		response := map[string]any{
			"id":          "msg_01",
			"type":        "message",
			"role":        "assistant",
			"model":       "claude-sonnet-4-5",
			"content":     []map[string]any{{"type": "text", "text": "Kyoto in spring is ideal."}},
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 25, "output_tokens": 10},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			t.Fatal("failed to encode response: " + err.Error())
		}
	}))
	defer server.Close()

	p := New().
		WithAPIKey("test-key").
		WithBaseURL(server.URL)

	response, err := p.SendMessage(context.Background(), ai.ChatRequest{
		Model:        "claude-sonnet-4-5",
		SystemPrompt: "You are a travel planner.",
		Messages:     []ai.Message{{Role: ai.RoleUser, Content: "When should I visit Kyoto?"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if response.Content != "Kyoto in spring is ideal." {
		t.Errorf("content = %s", response.Content)
	}
	if response.FinishReason != "stop" {
		t.Errorf("finish reason = %s, want stop", response.FinishReason)
	}
	if response.Usage == nil || response.Usage.TotalTokens != 35 {
		t.Errorf("usage not mapped: %+v", response.Usage)
	}
}

func TestSendMessageWithToolUse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var requestBody map[string]any
		if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
			t.Fatal("failed to decode request body: " + err.Error())
		}
		tools, ok := requestBody["tools"].([]any)
		if !ok || len(tools) != 1 {
			t.Fatalf("expected one tool in request, got %v", requestBody["tools"])
		}
		if tools[0].(map[string]any)["name"] != "web_search" {
			t.Errorf("tool name = %v, want web_search", tools[0].(map[string]any)["name"])
		}

		response := map[string]any{
			"id":    "msg_02",
			"type":  "message",
			"role":  "assistant",
			"model": "claude-sonnet-4-5",
			"content": []map[string]any{
				{"type": "text", "text": "Let me look that up."},
				{"type": "tool_use", "id": "toolu_01", "name": "web_search", "input": map[string]any{"query": "Kyoto attractions"}},
			},
			"stop_reason": "tool_use",
			"usage":       map[string]any{"input_tokens": 40, "output_tokens": 20},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			t.Fatal("failed to encode response: " + err.Error())
		}
	}))
	defer server.Close()

	p := New().
		WithAPIKey("test-key").
		WithBaseURL(server.URL)

	response, err := p.SendMessage(context.Background(), ai.ChatRequest{
		Model:    "claude-sonnet-4-5",
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "Things to do in Kyoto?"}},
		Tools: []ai.ToolDescription{
			{
				Name:        "web_search",
				Description: "Search the web",
				Parameters:  json.RawMessage(`{"type":"object","properties":{"query":{"type":"string"}},"required":["query"]}`),
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if response.Content != "Let me look that up." {
		t.Errorf("content = %s", response.Content)
	}
	if response.FinishReason != "tool_calls" {
		t.Errorf("finish reason = %s, want tool_calls", response.FinishReason)
	}
	if len(response.ToolCalls) != 1 {
		t.Fatalf("expected one tool call, got %d", len(response.ToolCalls))
	}
	call := response.ToolCalls[0]
	if call.ID != "toolu_01" || call.Function.Name != "web_search" {
		t.Errorf("tool call not mapped: %+v", call)
	}
	if !strings.Contains(call.Function.Arguments, "Kyoto attractions") {
		t.Errorf("arguments = %s", call.Function.Arguments)
	}
}

func TestSendMessageAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"type": "error", "error": {"type": "invalid_request_error", "message": "max_tokens required"}}`))
	}))
	defer server.Close()

	p := New().
		WithAPIKey("test-key").
		WithBaseURL(server.URL)

	_, err := p.SendMessage(context.Background(), ai.ChatRequest{
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hello"}},
	})
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
}

func TestIsStopMessage(t *testing.T) {
	p := New()

	tests := []struct {
		name     string
		message  *ai.ChatResponse
		expected bool
	}{
		{"nil message", nil, true},
		{"end turn", &ai.ChatResponse{Content: "done", FinishReason: "stop"}, true},
		{"tool calls override stop", &ai.ChatResponse{FinishReason: "stop", ToolCalls: []ai.ToolCall{{ID: "toolu_01"}}}, false},
		{"tool calls pending", &ai.ChatResponse{FinishReason: "tool_calls", ToolCalls: []ai.ToolCall{{ID: "toolu_01"}}}, false},
		{"empty response", &ai.ChatResponse{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.IsStopMessage(tc.message); got != tc.expected {
				t.Errorf("IsStopMessage() = %v, want %v", got, tc.expected)
			}
		})
	}
}
