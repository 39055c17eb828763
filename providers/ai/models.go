package ai

import "encoding/json"

/*
	##### PROVIDER INPUT #####
*/

// ChatRequest represents a single request to a chat-completion provider.
type ChatRequest struct {
	Model            string            `json:"model,omitempty"`             // Model name or identifier
	Messages         []Message         `json:"messages"`                    // Conversation transcript, system prompt excluded
	SystemPrompt     string            `json:"system_prompt,omitempty"`     // Optional system prompt
	Tools            []ToolDescription `json:"tools,omitempty"`             // Tool definitions advertised to the model
	ResponseFormat   *ResponseFormat   `json:"response_format,omitempty"`   // Optional structured-output request
	GenerationConfig *GenerationConfig `json:"generation_config,omitempty"` // Optional sampling configuration
}

// ToolDescription advertises one callable tool to the model. Parameters is a
// pre-rendered JSON Schema object describing the tool's argument shape.
type ToolDescription struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

// Message represents a single message in a conversation.
type Message struct {
	// Core fields (always present)
	Role    MessageRole `json:"role"`
	Content string      `json:"content,omitempty"`

	// Tool calling fields
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`   // For role=assistant requesting tools
	ToolCallID string     `json:"tool_call_id,omitempty"` // For role=tool, links to the tool call being responded to
	Name       string     `json:"name,omitempty"`         // For role=tool, name of the tool that produced this result

	// Extended fields
	Refusal string `json:"refusal,omitempty"` // Set when the model refuses to respond (safety/policy)
}

// GenerationConfig carries the sampling parameters forwarded to the provider.
// Zero values are treated as unset and omitted from the wire request.
type GenerationConfig struct {
	MaxTokens   int      `json:"max_tokens,omitempty"`  // Maximum tokens for the response
	Temperature float32  `json:"temperature,omitempty"` // Sampling temperature [0..2]
	TopP        float32  `json:"top_p,omitempty"`       // Nucleus sampling [0..1], alternative to temperature
	Stop        []string `json:"stop,omitempty"`        // Stop sequences
}

// ResponseFormat asks the provider to constrain the final answer to a JSON
// schema. Providers without structured-output support ignore it.
type ResponseFormat struct {
	Name   string          `json:"name,omitempty"` // Schema name reported to the provider
	Schema json.RawMessage `json:"schema"`         // JSON Schema for the response body
	Strict bool            `json:"strict,omitempty"`
}

/*
	##### PROVIDER OUTPUT #####
*/

// Usage reports token consumption for a single provider call.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

// Add accumulates other into u. Sessions use it to aggregate usage across
// the calls of a multi-round run.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}

// ChatResponse represents the completed response from a chat completion.
type ChatResponse struct {
	Id           string     `json:"id"`
	Model        string     `json:"model"`
	Object       string     `json:"object"`
	Created      int64      `json:"created"`
	Content      string     `json:"content"`
	ToolCalls    []ToolCall `json:"tool_calls,omitempty"`
	FinishReason string     `json:"finish_reason,omitempty"`
	Usage        *Usage     `json:"usage,omitempty"`

	// Extended fields
	Refusal string `json:"refusal,omitempty"` // Set when the model refuses to respond (safety/policy)
}

/*
	##### TOOL CALLS #####
*/

// ToolCall represents a function/tool call request from the model.
type ToolCall struct {
	ID       string           `json:"id,omitempty"` // Unique identifier for this tool call
	Type     string           `json:"type"`         // "function"
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction names the requested tool and carries its arguments as the
// raw JSON string produced by the model. Parsing is deferred to the executor.
type ToolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // JSON string
}

// MessageRole represents the role of a message; compatible with string.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"    // System instructions/configuration
	RoleUser      MessageRole = "user"      // End-user message
	RoleAssistant MessageRole = "assistant" // Model response
	RoleTool      MessageRole = "tool"      // Tool/function output
)
