// Package agent implements the tool-calling orchestration loop.
//
// An [Agent] wraps an LLM provider, a set of tools, and a conversation
// store. Run sends the user prompt, executes any tool calls the model
// requests, feeds the results back, and repeats until the model produces a
// final answer, which is parsed into the agent's output type:
//
//	type Answer struct {
//	    City    string `json:"city"`
//	    Summary string `json:"summary"`
//	}
//
//	a, err := agent.New[Answer]("researcher", provider,
//	    agent.WithModel("gpt-4o-mini"),
//	    agent.WithInstructions("Answer with the requested JSON object."),
//	    agent.WithTools(search),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := a.Run(ctx, "Tell me about Kyoto.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Output.Valid {
//	    fmt.Println(result.Output.Data.Summary)
//	} else {
//	    fmt.Println(result.Output.Raw)
//	}
//
// Use T = string for agents that answer in free text.
//
// Tool dispatch is sequential and bounded: WithMaxRounds caps how many
// dispatch rounds a run may perform (default 10). A capped run is not an
// error; the last response becomes the final answer and Result.Capped is
// set.
//
// Agents compose. [Agent.AsTool] exposes an agent as a tool for another
// agent, with nesting depth carried through the context and bounded by
// WithMaxDepth.
//
// Cross-cutting concerns on the provider call path (retry, timeouts,
// request logging) are middleware, not loop features; see the middleware
// subpackage and [WithMiddleware].
package agent
