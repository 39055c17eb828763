package anthropic

import (
	"encoding/json"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"

	"github.com/tripsmith-ai/tripsmith/providers/ai"
)

// defaultMaxTokens applies when the request carries no generation config.
// The Messages API requires an explicit max_tokens on every call.
const defaultMaxTokens = 4096

// requestToParams converts the generic request to Messages API parameters.
// System prompts arrive two ways: the dedicated SystemPrompt field and
// role-system messages inside the transcript. Both are lifted into the
// top-level system blocks, since the Messages API rejects a system role
// inside the message list.
func requestToParams(request ai.ChatRequest) (sdk.MessageNewParams, error) {
	params := sdk.MessageNewParams{
		Model:     sdk.Model(request.Model),
		MaxTokens: defaultMaxTokens,
	}

	if cfg := request.GenerationConfig; cfg != nil {
		if cfg.MaxTokens > 0 {
			params.MaxTokens = int64(cfg.MaxTokens)
		}
		if cfg.Temperature > 0 {
			params.Temperature = sdk.Float(float64(cfg.Temperature))
		}
		if cfg.TopP > 0 {
			params.TopP = sdk.Float(float64(cfg.TopP))
		}
		params.StopSequences = cfg.Stop
	}

	var system []sdk.TextBlockParam
	if request.SystemPrompt != "" {
		system = append(system, sdk.TextBlockParam{Text: request.SystemPrompt})
	}
	for _, msg := range request.Messages {
		if msg.Role == ai.RoleSystem && msg.Content != "" {
			system = append(system, sdk.TextBlockParam{Text: msg.Content})
		}
	}
	params.System = system

	messages, err := messagesToParams(request.Messages)
	if err != nil {
		return sdk.MessageNewParams{}, err
	}
	params.Messages = messages

	tools, err := toolsToParams(request.Tools)
	if err != nil {
		return sdk.MessageNewParams{}, err
	}
	params.Tools = tools

	return params, nil
}

// messagesToParams maps the transcript to Messages API turns. Consecutive
// tool results collapse into a single user message, because every tool_use
// block of an assistant turn must be answered in the one user message that
// follows it.
func messagesToParams(messages []ai.Message) ([]sdk.MessageParam, error) {
	var out []sdk.MessageParam
	var pendingResults []sdk.ContentBlockParamUnion

	flush := func() {
		if len(pendingResults) > 0 {
			out = append(out, sdk.NewUserMessage(pendingResults...))
			pendingResults = nil
		}
	}

	for _, msg := range messages {
		switch msg.Role {
		case ai.RoleSystem:
			// Lifted into params.System by requestToParams.
			continue

		case ai.RoleTool:
			if msg.ToolCallID == "" {
				return nil, fmt.Errorf("tool message is missing tool_call_id")
			}
			pendingResults = append(pendingResults, sdk.NewToolResultBlock(msg.ToolCallID, msg.Content, false))

		case ai.RoleUser:
			flush()
			out = append(out, sdk.NewUserMessage(sdk.NewTextBlock(msg.Content)))

		case ai.RoleAssistant:
			flush()
			var blocks []sdk.ContentBlockParamUnion
			if msg.Content != "" {
				blocks = append(blocks, sdk.NewTextBlock(msg.Content))
			}
			for _, tc := range msg.ToolCalls {
				arguments := tc.Function.Arguments
				if strings.TrimSpace(arguments) == "" {
					arguments = "{}"
				}
				blocks = append(blocks, sdk.NewToolUseBlock(tc.ID, json.RawMessage(arguments), tc.Function.Name))
			}
			if len(blocks) == 0 {
				continue
			}
			out = append(out, sdk.NewAssistantMessage(blocks...))

		default:
			return nil, fmt.Errorf("unsupported message role: %s", msg.Role)
		}
	}
	flush()

	return out, nil
}

// toolsToParams advertises the registry's tools to the model. The generated
// parameter schema is decomposed into the properties/required shape the SDK
// expects.
func toolsToParams(tools []ai.ToolDescription) ([]sdk.ToolUnionParam, error) {
	if len(tools) == 0 {
		return nil, nil
	}

	out := make([]sdk.ToolUnionParam, 0, len(tools))
	for _, t := range tools {
		schema, err := inputSchema(t.Parameters)
		if err != nil {
			return nil, fmt.Errorf("tool %s: %w", t.Name, err)
		}
		out = append(out, sdk.ToolUnionParam{OfTool: &sdk.ToolParam{
			Name:        t.Name,
			Description: sdk.String(t.Description),
			InputSchema: schema,
		}})
	}
	return out, nil
}

func inputSchema(raw json.RawMessage) (sdk.ToolInputSchemaParam, error) {
	if len(raw) == 0 {
		return sdk.ToolInputSchemaParam{}, nil
	}

	var decoded struct {
		Properties json.RawMessage `json:"properties"`
		Required   []string        `json:"required"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return sdk.ToolInputSchemaParam{}, fmt.Errorf("invalid parameter schema: %w", err)
	}

	schema := sdk.ToolInputSchemaParam{Required: decoded.Required}
	if len(decoded.Properties) > 0 {
		schema.Properties = decoded.Properties
	}
	return schema, nil
}

// messageToGeneric maps a Messages API response onto the generic shape. Text
// blocks are joined in order; tool_use blocks become tool calls with their
// raw JSON input preserved as the argument string.
func messageToGeneric(msg *sdk.Message) *ai.ChatResponse {
	resp := &ai.ChatResponse{
		Id:           msg.ID,
		Model:        string(msg.Model),
		Object:       string(msg.Type),
		FinishReason: finishReason(msg.StopReason),
	}

	var texts []string
	for _, block := range msg.Content {
		switch v := block.AsAny().(type) {
		case sdk.TextBlock:
			texts = append(texts, v.Text)
		case sdk.ToolUseBlock:
			resp.ToolCalls = append(resp.ToolCalls, ai.ToolCall{
				ID:   v.ID,
				Type: "function",
				Function: ai.ToolCallFunction{
					Name:      v.Name,
					Arguments: v.JSON.Input.Raw(),
				},
			})
		}
	}
	resp.Content = strings.TrimSpace(strings.Join(texts, "\n"))

	resp.Usage = &ai.Usage{
		PromptTokens:     int(msg.Usage.InputTokens),
		CompletionTokens: int(msg.Usage.OutputTokens),
		TotalTokens:      int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
	}

	return resp
}

// finishReason translates Messages API stop reasons to the generic values
// shared with the OpenAI provider.
func finishReason(reason sdk.StopReason) string {
	switch reason {
	case sdk.StopReasonEndTurn, sdk.StopReasonStopSequence:
		return "stop"
	case sdk.StopReasonMaxTokens:
		return "length"
	case sdk.StopReasonToolUse:
		return "tool_calls"
	case sdk.StopReasonRefusal:
		return "content_filter"
	default:
		return string(reason)
	}
}
