package openai

import (
	"encoding/json"
	"strings"

	"github.com/tripsmith-ai/tripsmith/providers/ai"
)

/*
	##### WIRE FORMAT - INPUT #####
*/

// chatCompletionRequest represents the /v1/chat/completions request body.
type chatCompletionRequest struct {
	Model          string              `json:"model"`
	Messages       []chatMessage       `json:"messages"`
	Temperature    *float64            `json:"temperature,omitempty"`
	TopP           *float64            `json:"top_p,omitempty"`
	MaxTokens      *int                `json:"max_tokens,omitempty"`
	Stop           []string            `json:"stop,omitempty"`
	Tools          []chatTool          `json:"tools,omitempty"`
	ToolChoice     string              `json:"tool_choice,omitempty"`
	ResponseFormat *chatResponseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role       string         `json:"role"`
	Content    string         `json:"content,omitempty"`
	Name       string         `json:"name,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
	ToolCalls  []chatToolCall `json:"tool_calls,omitempty"`
}

type chatTool struct {
	Type     string       `json:"type"` // "function"
	Function chatFunction `json:"function"`
}

type chatFunction struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
	Strict      bool            `json:"strict,omitempty"`
}

type chatToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"` // "function"
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"` // JSON string
	} `json:"function"`
}

type chatResponseFormat struct {
	Type       string          `json:"type"` // "json_schema"
	JSONSchema *jsonSchemaSpec `json:"json_schema,omitempty"`
}

type jsonSchemaSpec struct {
	Name   string          `json:"name"`
	Schema json.RawMessage `json:"schema"`
	Strict bool            `json:"strict,omitempty"`
}

/*
	##### WIRE FORMAT - OUTPUT #####
*/

type chatCompletionResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"` // "chat.completion"
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   *chatUsage   `json:"usage,omitempty"`
}

type chatChoice struct {
	Index        int                 `json:"index"`
	Message      chatResponseMessage `json:"message"`
	FinishReason string              `json:"finish_reason"` // "stop", "length", "tool_calls", "content_filter"
}

type chatResponseMessage struct {
	Role      string         `json:"role"` // "assistant"
	Content   string         `json:"content,omitempty"`
	ToolCalls []chatToolCall `json:"tool_calls,omitempty"`
	Refusal   string         `json:"refusal,omitempty"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

/*
	##### CONVERSION #####
*/

// requestToWire converts an ai.ChatRequest to the chat-completions format.
func requestToWire(request ai.ChatRequest) chatCompletionRequest {
	req := chatCompletionRequest{
		Model: request.Model,
	}

	if request.SystemPrompt != "" {
		req.Messages = append(req.Messages, chatMessage{
			Role:    string(ai.RoleSystem),
			Content: request.SystemPrompt,
		})
	}

	for _, msg := range request.Messages {
		chatMsg := chatMessage{
			Role:       string(msg.Role),
			Content:    msg.Content,
			Name:       msg.Name,
			ToolCallID: msg.ToolCallID,
		}
		for _, tc := range msg.ToolCalls {
			toolCall := chatToolCall{
				ID:   tc.ID,
				Type: tc.Type,
			}
			toolCall.Function.Name = tc.Function.Name
			toolCall.Function.Arguments = tc.Function.Arguments
			chatMsg.ToolCalls = append(chatMsg.ToolCalls, toolCall)
		}
		req.Messages = append(req.Messages, chatMsg)
	}

	if cfg := request.GenerationConfig; cfg != nil {
		if cfg.Temperature > 0 {
			temp := float64(cfg.Temperature)
			req.Temperature = &temp
		}
		if cfg.TopP > 0 {
			topP := float64(cfg.TopP)
			req.TopP = &topP
		}
		if cfg.MaxTokens > 0 {
			maxTokens := cfg.MaxTokens
			req.MaxTokens = &maxTokens
		}
		req.Stop = cfg.Stop
	}

	if len(request.Tools) > 0 {
		for _, tl := range request.Tools {
			req.Tools = append(req.Tools, chatTool{
				Type: "function",
				Function: chatFunction{
					Name:        tl.Name,
					Description: tl.Description,
					Parameters:  tl.Parameters,
				},
			})
		}
		req.ToolChoice = "auto"
	}

	if rf := request.ResponseFormat; rf != nil && len(rf.Schema) > 0 {
		name := rf.Name
		if name == "" {
			name = "response_schema"
		}
		req.ResponseFormat = &chatResponseFormat{
			Type: "json_schema",
			JSONSchema: &jsonSchemaSpec{
				Name:   name,
				Schema: rf.Schema,
				Strict: rf.Strict,
			},
		}
	}

	return req
}

// responseToGeneric converts a chat-completions response to an ai.ChatResponse.
// Only the first choice is consumed.
func responseToGeneric(resp *chatCompletionResponse) *ai.ChatResponse {
	choice := resp.Choices[0]

	chatResp := &ai.ChatResponse{
		Id:           resp.ID,
		Model:        resp.Model,
		Object:       resp.Object,
		Created:      resp.Created,
		Content:      cleanThinkTags(choice.Message.Content),
		Refusal:      choice.Message.Refusal,
		FinishReason: choice.FinishReason,
	}

	for _, tc := range choice.Message.ToolCalls {
		chatResp.ToolCalls = append(chatResp.ToolCalls, ai.ToolCall{
			ID:   tc.ID,
			Type: tc.Type,
			Function: ai.ToolCallFunction{
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			},
		})
	}

	if resp.Usage != nil {
		chatResp.Usage = &ai.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}

	return chatResp
}

// cleanThinkTags strips a <think>...</think> block and returns the remaining
// text. Local reasoning models served through Ollama emit their chain of
// thought in these tags ahead of the answer.
func cleanThinkTags(content string) string {
	content = strings.TrimSpace(content)

	start := strings.Index(content, "<think>")
	if start == -1 {
		start = 0
	}
	end := strings.Index(content, "</think>")
	if end == -1 || end < start {
		return content
	}

	cleaned := content[:start] + content[end+len("</think>"):]
	return strings.TrimSpace(cleaned)
}
