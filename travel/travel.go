package travel

import (
	"log/slog"

	"github.com/tripsmith-ai/tripsmith/core/agent"
	"github.com/tripsmith-ai/tripsmith/providers/ai"
	"github.com/tripsmith-ai/tripsmith/providers/memory"
	"github.com/tripsmith-ai/tripsmith/providers/tool"
	"github.com/tripsmith-ai/tripsmith/providers/tool/calculator"
	"github.com/tripsmith-ai/tripsmith/providers/tool/webfetch"
	"github.com/tripsmith-ai/tripsmith/providers/tool/websearch"
)

const (
	defaultModel       = "gpt-4o-mini"
	defaultTemperature = 0.7
)

// Plan is the orchestrator's final answer: the three specialist
// contributions merged into one record.
type Plan struct {
	Destination string `json:"destination" jsonschema_description:"Where the trip goes"`
	Duration    string `json:"duration"    jsonschema_description:"How long the trip lasts, e.g. 3 days"`
	Summary     string `json:"summary"     jsonschema_description:"Day-by-day summary of the itinerary"`
	Cost        string `json:"cost"        jsonschema_description:"Estimated total cost with a rough breakdown"`
	Tips        string `json:"tips"        jsonschema_description:"Restaurants, neighborhoods, and local highlights"`
}

// Itinerary is the planner specialist's output.
type Itinerary struct {
	Destination string `json:"destination" jsonschema_description:"Where the trip goes"`
	Duration    string `json:"duration"    jsonschema_description:"How long the trip lasts, e.g. 3 days"`
	Summary     string `json:"summary"     jsonschema_description:"Day-by-day summary of the itinerary"`
}

// Estimate is the budget specialist's output.
type Estimate struct {
	Cost string `json:"cost" jsonschema_description:"Estimated total cost with a rough breakdown"`
}

// GuideNotes is the local guide specialist's output.
type GuideNotes struct {
	Tips string `json:"tips" jsonschema_description:"Restaurants, neighborhoods, and local highlights"`
}

const (
	plannerInstructions = "You specialize in building day-by-day travel itineraries and " +
		"sequencing activities. Use your tools to research the destination before you " +
		"commit to a plan. Always return JSON with this structure: " +
		`{"destination": "string", "duration": "string", "summary": "string"}`

	budgetInstructions = "You estimate costs for lodging, food, transport, and activities " +
		"at a high level, and you flag budget violations. Use your tools to check prices " +
		"and do the arithmetic. Always return JSON with this structure: " +
		`{"cost": "string"}`

	guideInstructions = "You provide restaurants, neighborhoods, cultural tips, and " +
		"current local highlights. Use your tools to find what is actually there. " +
		"Always return JSON with this structure: " +
		`{"tips": "string"}`

	orchestratorInstructions = "You are a friendly and knowledgeable travel planner. " +
		"You do not plan trips yourself: you orchestrate specialist agents and combine " +
		"their work. Call one specialist at a time, in this order: plan_itinerary for " +
		"the day-by-day plan, then estimate_budget for costs, then local_guide for food " +
		"and local tips. Pass each specialist the relevant parts of the request and of " +
		"the answers you already have. When all three have answered, merge their results " +
		"into a single JSON object with exactly this structure: " +
		`{"destination": "string", "duration": "string", "summary": "string", "cost": "string", "tips": "string"}`
)

// Option configures the assembly built by New.
type Option func(*config)

type config struct {
	model       string
	temperature float32
	logger      *slog.Logger
	middlewares []agent.Middleware
	store       memory.Store
	maxRounds   int
}

// WithModel sets the model used by the orchestrator and every specialist.
func WithModel(model string) Option {
	return func(c *config) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTemperature sets the sampling temperature for all agents.
func WithTemperature(temperature float32) Option {
	return func(c *config) {
		c.temperature = temperature
	}
}

// WithLogger sets the logger shared by the orchestrator and the specialists.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMiddleware appends provider middleware applied to every agent in
// the assembly, outermost first.
func WithMiddleware(middlewares ...agent.Middleware) Option {
	return func(c *config) {
		c.middlewares = append(c.middlewares, middlewares...)
	}
}

// WithMemory sets the orchestrator's conversation store, so a planning
// session can be persisted and resumed. Specialists keep their own
// private in-memory transcripts.
func WithMemory(store memory.Store) Option {
	return func(c *config) {
		if store != nil {
			c.store = store
		}
	}
}

// WithMaxRounds caps the orchestrator's tool dispatch rounds.
func WithMaxRounds(rounds int) Option {
	return func(c *config) {
		if rounds >= 1 {
			c.maxRounds = rounds
		}
	}
}

// agentOptions translates the shared knobs into options every agent in
// the assembly receives.
func (c *config) agentOptions() []agent.Option {
	opts := []agent.Option{
		agent.WithModel(c.model),
		agent.WithGenerationConfig(ai.GenerationConfig{Temperature: c.temperature}),
	}
	if c.logger != nil {
		opts = append(opts, agent.WithLogger(c.logger))
	}
	if len(c.middlewares) > 0 {
		opts = append(opts, agent.WithMiddleware(c.middlewares...))
	}
	return opts
}

// NewPlanner returns the itinerary specialist. It researches the
// destination with web search and page fetch, then drafts a day-by-day
// plan as an Itinerary record.
func NewPlanner(provider ai.Provider, extra ...agent.Option) (*agent.Agent[Itinerary], error) {
	search, err := websearch.NewTool()
	if err != nil {
		return nil, err
	}
	fetch, err := webfetch.NewTool()
	if err != nil {
		return nil, err
	}
	opts := append(specialistDefaults(
		"Builds day-by-day travel itineraries and sequences activities.",
		plannerInstructions,
		search, fetch,
	), extra...)
	return agent.New[Itinerary]("planner", provider, opts...)
}

// NewBudget returns the cost specialist. It checks prices with web
// search, runs the arithmetic through the calculator, and answers with
// an Estimate record.
func NewBudget(provider ai.Provider, extra ...agent.Option) (*agent.Agent[Estimate], error) {
	search, err := websearch.NewTool()
	if err != nil {
		return nil, err
	}
	calc, err := calculator.NewTool()
	if err != nil {
		return nil, err
	}
	opts := append(specialistDefaults(
		"Estimates trip costs and flags budget violations.",
		budgetInstructions,
		search, calc,
	), extra...)
	return agent.New[Estimate]("budget", provider, opts...)
}

// NewLocalGuide returns the local knowledge specialist. It looks up
// restaurants, neighborhoods, and current highlights and answers with a
// GuideNotes record.
func NewLocalGuide(provider ai.Provider, extra ...agent.Option) (*agent.Agent[GuideNotes], error) {
	search, err := websearch.NewTool()
	if err != nil {
		return nil, err
	}
	fetch, err := webfetch.NewTool()
	if err != nil {
		return nil, err
	}
	opts := append(specialistDefaults(
		"Recommends restaurants, neighborhoods, and current local highlights.",
		guideInstructions,
		search, fetch,
	), extra...)
	return agent.New[GuideNotes]("local_guide", provider, opts...)
}

func specialistDefaults(description, instructions string, tools ...tool.Definition) []agent.Option {
	return []agent.Option{
		agent.WithModel(defaultModel),
		agent.WithDescription(description),
		agent.WithInstructions(instructions),
		agent.WithTools(tools...),
		agent.WithGenerationConfig(ai.GenerationConfig{Temperature: defaultTemperature}),
	}
}

// New returns the travel orchestrator. Its only tools are the three
// specialists, exposed through AsTool, and its structured output is the
// merged Plan. Options route shared knobs (model, temperature, logger)
// to every agent in the assembly and orchestrator-only knobs (memory,
// round cap) to the orchestrator.
func New(provider ai.Provider, options ...Option) (*agent.Agent[Plan], error) {
	cfg := &config{
		model:       defaultModel,
		temperature: defaultTemperature,
	}
	for _, option := range options {
		option(cfg)
	}
	shared := cfg.agentOptions()

	planner, err := NewPlanner(provider, shared...)
	if err != nil {
		return nil, err
	}
	budget, err := NewBudget(provider, shared...)
	if err != nil {
		return nil, err
	}
	guide, err := NewLocalGuide(provider, shared...)
	if err != nil {
		return nil, err
	}

	planItinerary, err := planner.AsTool("plan_itinerary",
		"Plan or outline a day-by-day itinerary, schedule, or daily plan for a trip.")
	if err != nil {
		return nil, err
	}
	estimateBudget, err := budget.AsTool("estimate_budget",
		"Estimate the total cost of a trip and flag budget violations.")
	if err != nil {
		return nil, err
	}
	localGuide, err := guide.AsTool("local_guide",
		"Recommend restaurants, neighborhoods, cultural tips, and current local highlights.")
	if err != nil {
		return nil, err
	}

	opts := make([]agent.Option, 0, len(shared)+5)
	opts = append(opts, shared...)
	opts = append(opts,
		agent.WithDescription("Plans trips end to end by delegating to specialist agents."),
		agent.WithInstructions(orchestratorInstructions),
		agent.WithTools(planItinerary, estimateBudget, localGuide),
	)
	if cfg.store != nil {
		opts = append(opts, agent.WithMemory(cfg.store))
	}
	if cfg.maxRounds >= 1 {
		opts = append(opts, agent.WithMaxRounds(cfg.maxRounds))
	}
	return agent.New[Plan]("travel_planner", provider, opts...)
}
