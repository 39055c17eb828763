package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/tripsmith-ai/tripsmith/core/parse"
	"github.com/tripsmith-ai/tripsmith/providers/ai"
)

// Result carries the outcome of one Run: the parsed final answer, the last
// provider response, and per-run accounting.
type Result[T any] struct {
	// Output is the final answer parsed into T. When the model drifted from
	// the output contract, Output.Valid is false and Output.Raw still holds
	// the text.
	Output parse.Outcome[T]

	// Response is the last provider response of the run.
	Response *ai.ChatResponse

	// Rounds is the number of tool dispatch rounds executed.
	Rounds int

	// Capped reports that the run ended because the round cap was reached
	// while the model still wanted tools. The last response is taken as the
	// final answer; capping is not an error.
	Capped bool

	// Usage aggregates token usage across every model call of the run.
	Usage ai.Usage
}

// Run sends prompt to the model and drives the conversation until the model
// stops asking for tools, returning the final answer parsed into T.
//
// Each iteration replays the transcript to the provider. When the response
// carries tool calls, every call is executed in request order and its result
// appended to the transcript before the next model call. Tool handler
// failures are fed back to the model as error text; only provider failures
// and calls to unregistered tools end the run, as *OrchestrationError.
func (a *Agent[T]) Run(ctx context.Context, prompt string) (*Result[T], error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("tripsmith: agent %s: prompt is empty", a.name)
	}
	if err := a.seed(ctx, prompt); err != nil {
		return nil, err
	}

	var (
		response *ai.ChatResponse
		total    ai.Usage
		rounds   int
		capped   bool
	)

	for {
		transcript, err := a.store.AllMessages(ctx)
		if err != nil {
			return nil, fmt.Errorf("tripsmith: agent %s: read transcript: %w", a.name, err)
		}

		response, err = a.send(ctx, a.buildRequest(transcript))
		if err != nil {
			return nil, &OrchestrationError{Agent: a.name, Round: rounds, Err: err}
		}
		if response.Usage != nil {
			total.Add(*response.Usage)
		}

		if response.Content != "" || len(response.ToolCalls) > 0 {
			assistant := &ai.Message{
				Role:      ai.RoleAssistant,
				Content:   response.Content,
				ToolCalls: response.ToolCalls,
				Refusal:   response.Refusal,
			}
			if err := a.store.AppendMessage(ctx, assistant); err != nil {
				return nil, fmt.Errorf("tripsmith: agent %s: append assistant turn: %w", a.name, err)
			}
		}

		if len(response.ToolCalls) == 0 || a.provider.IsStopMessage(response) {
			break
		}

		if rounds >= a.maxRounds {
			capped = true
			a.logger.WarnContext(ctx, "tool round cap reached, taking last response as final",
				"agent", a.name,
				"max_rounds", a.maxRounds,
				"pending_calls", len(response.ToolCalls),
			)
			break
		}

		if err := a.dispatch(ctx, response.ToolCalls, rounds); err != nil {
			return nil, err
		}
		rounds++
	}

	return &Result[T]{
		Output:   parse.Structured[T](response.Content, a.output),
		Response: response,
		Rounds:   rounds,
		Capped:   capped,
		Usage:    total,
	}, nil
}

// seed prepares the transcript for a run. A fresh store receives the system
// instructions first; a store that already holds messages is a resumed
// conversation and only gets the user turn.
func (a *Agent[T]) seed(ctx context.Context, prompt string) error {
	count, err := a.store.Count(ctx)
	if err != nil {
		return fmt.Errorf("tripsmith: agent %s: inspect transcript: %w", a.name, err)
	}
	if count == 0 && a.instructions != "" {
		system := &ai.Message{Role: ai.RoleSystem, Content: a.instructions}
		if err := a.store.AppendMessage(ctx, system); err != nil {
			return fmt.Errorf("tripsmith: agent %s: seed instructions: %w", a.name, err)
		}
	}
	user := &ai.Message{Role: ai.RoleUser, Content: prompt}
	if err := a.store.AppendMessage(ctx, user); err != nil {
		return fmt.Errorf("tripsmith: agent %s: append prompt: %w", a.name, err)
	}
	return nil
}

func (a *Agent[T]) buildRequest(transcript []ai.Message) ai.ChatRequest {
	request := ai.ChatRequest{
		Model:            a.model,
		Messages:         transcript,
		GenerationConfig: a.generation,
	}
	if a.registry.Len() > 0 {
		request.Tools = a.registry.Descriptions()
	}
	if a.output != nil {
		request.ResponseFormat = &ai.ResponseFormat{Schema: a.output.Raw()}
	}
	return request
}

// dispatch executes one round of tool calls in request order, appending one
// tool-result message per call. An unknown tool name is unrecoverable and
// fails the run; everything else came back as result text from the executor.
func (a *Agent[T]) dispatch(ctx context.Context, calls []ai.ToolCall, round int) error {
	for _, call := range calls {
		a.logger.DebugContext(ctx, "dispatching tool call",
			"agent", a.name,
			"round", round,
			"tool", call.Function.Name,
			"tool_call_id", call.ID,
		)

		result, err := a.executor.Execute(ctx, call)
		if err != nil {
			return &OrchestrationError{Agent: a.name, Round: round, Err: err}
		}

		message := &ai.Message{
			Role:       ai.RoleTool,
			Content:    result,
			ToolCallID: call.ID,
			Name:       call.Function.Name,
		}
		if err := a.store.AppendMessage(ctx, message); err != nil {
			return fmt.Errorf("tripsmith: agent %s: append tool result: %w", a.name, err)
		}
	}
	return nil
}
