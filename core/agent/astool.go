package agent

import (
	"context"
	"fmt"

	"github.com/tripsmith-ai/tripsmith/providers/tool"
)

// depthKey carries the sub-agent nesting depth through the context.
type depthKey struct{}

// Depth reports the sub-agent nesting depth carried by ctx. Top-level
// callers run at depth zero; each delegation through an agent-tool adds one.
func Depth(ctx context.Context) int {
	depth, _ := ctx.Value(depthKey{}).(int)
	return depth
}

// delegateInput is the argument shape of an agent exposed as a tool.
type delegateInput struct {
	Prompt string `json:"prompt" jsonschema_description:"The task or question to hand to this agent"`
}

// AsTool exposes the agent as a tool so that a parent agent can delegate
// work to it. The tool accepts a single "prompt" argument and returns the
// child run's final text (the JSON body, for structured agents).
//
// Nesting depth travels through the context. A delegation that would exceed
// the agent's depth cap fails as an ordinary tool error; the executor feeds
// it back to the parent model, so the parent loop still terminates.
//
// The wrapped agent keeps its own conversation across delegations.
func (a *Agent[T]) AsTool(name, description string) (tool.Definition, error) {
	if description == "" {
		description = a.description
	}
	return tool.New(name, func(ctx context.Context, input delegateInput) (string, error) {
		depth := Depth(ctx) + 1
		if depth > a.maxDepth {
			return "", fmt.Errorf("agent %s: nesting depth %d exceeds limit %d", a.name, depth, a.maxDepth)
		}

		result, err := a.Run(context.WithValue(ctx, depthKey{}, depth), input.Prompt)
		if err != nil {
			return "", err
		}
		return result.Output.Raw, nil
	}, tool.WithDescription(description))
}
