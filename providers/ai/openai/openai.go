package openai

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/tripsmith-ai/tripsmith/internal/utils"
	"github.com/tripsmith-ai/tripsmith/providers/ai"
)

const (
	defaultBaseURL          = "https://api.openai.com/v1"
	chatCompletionsEndpoint = "/chat/completions"
)

// OpenAIProvider implements the Provider interface for the OpenAI
// chat-completions API and compatible servers such as Ollama.
type OpenAIProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

var _ ai.Provider = (*OpenAIProvider)(nil)

// NewOpenAIProvider creates a provider configured from the environment.
// OPENAI_API_KEY supplies the key and OPENAI_BASE_URL overrides the endpoint,
// which is how a local Ollama server (http://localhost:11434/v1) is reached.
func NewOpenAIProvider() *OpenAIProvider {
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &OpenAIProvider{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key for the provider
func (p *OpenAIProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API
func (p *OpenAIProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client
func (p *OpenAIProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// SendMessage implements the Provider interface. An API key is required only
// when talking to the hosted endpoint; key-less compatible servers work with
// a custom base URL.
func (p *OpenAIProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if p.apiKey == "" && p.baseURL == defaultBaseURL {
		return nil, fmt.Errorf("API key is not set")
	}

	httpResponse, resp, err := utils.DoPostSync[chatCompletionResponse](ctx, p.client, p.baseURL+chatCompletionsEndpoint, p.apiKey, requestToWire(request))
	if err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, fmt.Errorf("empty response from OpenAI API: %s", httpResponse.Status)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return responseToGeneric(resp), nil
}

// IsStopMessage reports whether the given chat response should be treated as a stop/end signal.
func (p *OpenAIProvider) IsStopMessage(message *ai.ChatResponse) bool {
	if message == nil {
		return true
	}
	// Prefer explicit finish reason from API
	if message.FinishReason == "stop" || message.FinishReason == "length" || message.FinishReason == "content_filter" {
		return true
	}
	// If there's no content and no tool calls, treat as stop
	if message.Content == "" && len(message.ToolCalls) == 0 {
		return true
	}
	return false
}
