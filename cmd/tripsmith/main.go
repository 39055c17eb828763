// Command tripsmith plans trips from the command line. It assembles the
// travel orchestrator over the chosen provider, runs one planning session,
// and prints the resulting plan field by field.
//
// API keys are read from the environment (OPENAI_API_KEY or
// ANTHROPIC_API_KEY), with a .env file honored when present.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/tripsmith-ai/tripsmith/core/agent/middleware"
	"github.com/tripsmith-ai/tripsmith/core/parse"
	"github.com/tripsmith-ai/tripsmith/providers/ai"
	"github.com/tripsmith-ai/tripsmith/providers/ai/anthropic"
	"github.com/tripsmith-ai/tripsmith/providers/ai/openai"
	"github.com/tripsmith-ai/tripsmith/providers/memory"
	"github.com/tripsmith-ai/tripsmith/providers/memory/inmemory"
	"github.com/tripsmith-ai/tripsmith/travel"
)

const (
	defaultOpenAIModel    = "gpt-4o-mini"
	defaultAnthropicModel = "claude-3-5-sonnet-20241022"

	callTimeout = 2 * time.Minute
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "tripsmith:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		prompt      = flag.String("prompt", "", "trip request to plan (required)")
		providerArg = flag.String("provider", "openai", "LLM provider: openai or anthropic")
		model       = flag.String("model", "", "model name (defaults per provider)")
		baseURL     = flag.String("base-url", "", "override the provider base URL")
		rounds      = flag.Int("rounds", 0, "cap on orchestrator tool rounds (default 10)")
		temp        = flag.Float64("temp", 0.7, "sampling temperature")
		resume      = flag.String("resume", "", "transcript file to load and save, for resumable sessions")
		verbose     = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *prompt == "" {
		fmt.Fprintln(os.Stderr, `usage: tripsmith -prompt "Plan a 3-day trip to Kyoto under $1500"`)
		flag.PrintDefaults()
		os.Exit(2)
	}

	logLevel := slog.LevelWarn
	middlewareLevel := middleware.LogLevelStandard
	if *verbose {
		logLevel = slog.LevelDebug
		middlewareLevel = middleware.LogLevelVerbose
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	provider, providerModel, err := buildProvider(*providerArg)
	if err != nil {
		return err
	}
	if *baseURL != "" {
		provider = provider.WithBaseURL(*baseURL)
	}
	if *model == "" {
		*model = os.Getenv("TRIPSMITH_MODEL")
	}
	if *model == "" {
		*model = providerModel
	}

	ctx := context.Background()

	store := inmemory.New()
	if *resume != "" {
		loaded, err := memory.LoadFile(*resume)
		if err != nil {
			return err
		}
		for i := range loaded {
			if err := store.AppendMessage(ctx, &loaded[i]); err != nil {
				return err
			}
		}
		if len(loaded) > 0 {
			logger.Info("resumed transcript", "file", *resume, "messages", len(loaded))
		}
	}

	planner, err := travel.New(provider,
		travel.WithModel(*model),
		travel.WithTemperature(float32(*temp)),
		travel.WithLogger(logger),
		travel.WithMemory(store),
		travel.WithMaxRounds(*rounds),
		travel.WithMiddleware(
			middleware.NewTimeoutMiddleware(callTimeout),
			middleware.NewRetryMiddleware(middleware.RetryConfig{}),
			middleware.NewLoggingMiddleware(logger, middlewareLevel),
		),
	)
	if err != nil {
		return err
	}

	result, err := planner.Run(ctx, *prompt)
	if err != nil {
		return err
	}

	logger.Debug("session finished",
		"rounds", result.Rounds,
		"capped", result.Capped,
		"total_tokens", result.Usage.TotalTokens,
	)
	printPlan(result.Output)

	if *resume != "" {
		messages, err := store.AllMessages(ctx)
		if err != nil {
			return err
		}
		if err := memory.SaveFile(*resume, messages); err != nil {
			return err
		}
	}
	return nil
}

func buildProvider(name string) (ai.Provider, string, error) {
	switch name {
	case "openai":
		return openai.NewOpenAIProvider(), defaultOpenAIModel, nil
	case "anthropic":
		return anthropic.New(), defaultAnthropicModel, nil
	}
	return nil, "", fmt.Errorf("unknown provider %q (want openai or anthropic)", name)
}

// printPlan prints the parsed plan field by field, or the raw model text
// when parsing fell back.
func printPlan(output parse.Outcome[travel.Plan]) {
	if !output.Valid {
		fmt.Println("Raw output:", output.Raw)
		return
	}
	plan := output.Data
	fmt.Println("Destination:", plan.Destination)
	fmt.Println("Duration:", plan.Duration)
	fmt.Println("Summary:", plan.Summary)
	fmt.Println("Cost:", plan.Cost)
	fmt.Println("Tips:", plan.Tips)
}
