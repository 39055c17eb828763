// Package travel assembles the trip planning system: an orchestrator agent
// whose only tools are three specialist agents, wired through
// [github.com/tripsmith-ai/tripsmith/core/agent.Agent.AsTool].
//
// The planner specialist drafts day-by-day itineraries, the budget
// specialist estimates costs, and the local guide recommends food and
// neighborhoods. Each answers with its own small JSON record; the
// orchestrator calls them in order and merges their answers into a [Plan].
//
//	provider := openai.NewOpenAIProvider()
//	planner, err := travel.New(provider, travel.WithModel("gpt-4o-mini"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := planner.Run(ctx, "Plan a 3-day trip to Kyoto under $1500.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Output.Valid {
//	    fmt.Println(result.Output.Data.Summary)
//	}
//
// The specialists are also exported individually (NewPlanner, NewBudget,
// NewLocalGuide) for callers that want to run or compose them directly.
package travel
