package anthropic

import (
	"context"
	"fmt"
	"net/http"
	"os"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/tripsmith-ai/tripsmith/providers/ai"
)

// AnthropicProvider implements [ai.Provider] on top of the official
// anthropic-sdk-go client for the Messages API.
type AnthropicProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	client     sdk.Client
}

var _ ai.Provider = (*AnthropicProvider)(nil)

// New returns an [AnthropicProvider] initialized from the environment. It
// reads ANTHROPIC_API_KEY for authentication and ANTHROPIC_BASE_URL for the
// endpoint base. Use the With* methods to override these values after
// construction.
func New() *AnthropicProvider {
	p := &AnthropicProvider{
		apiKey:  os.Getenv("ANTHROPIC_API_KEY"),
		baseURL: os.Getenv("ANTHROPIC_BASE_URL"),
	}
	p.rebuild()
	return p
}

// rebuild recreates the SDK client from the current settings. The SDK client
// is immutable once constructed, so every With* call goes through here.
func (p *AnthropicProvider) rebuild() {
	var opts []option.RequestOption
	if p.apiKey != "" {
		opts = append(opts, option.WithAPIKey(p.apiKey))
	}
	if p.baseURL != "" {
		opts = append(opts, option.WithBaseURL(p.baseURL))
	}
	if p.httpClient != nil {
		opts = append(opts, option.WithHTTPClient(p.httpClient))
	}
	p.client = sdk.NewClient(opts...)
}

// WithAPIKey sets the API key used for authenticating requests and returns
// the provider so calls can be chained.
func (p *AnthropicProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	p.rebuild()
	return p
}

// WithBaseURL overrides the API base URL and returns the provider so calls
// can be chained. Use this when targeting a proxy or a test server.
func (p *AnthropicProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	p.rebuild()
	return p
}

// WithHttpClient replaces the HTTP client used for API calls and returns the
// provider so calls can be chained.
func (p *AnthropicProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.httpClient = httpClient
	p.rebuild()
	return p
}

// SendMessage implements [ai.Provider] by sending a synchronous request to
// the Messages API and mapping the result to the generic format. The
// ResponseFormat field of the request is ignored: the Messages API has no
// structured-output mode, so schema guidance travels in the instructions and
// the reply is validated on the way back instead.
func (p *AnthropicProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is not set")
	}

	params, err := requestToParams(request)
	if err != nil {
		return nil, fmt.Errorf("failed to build Anthropic request: %w", err)
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, fmt.Errorf("empty response from Anthropic API")
	}

	result := messageToGeneric(msg)
	if result.Model == "" {
		result.Model = request.Model
	}
	return result, nil
}

// IsStopMessage reports whether message represents a terminal response.
// Responses that contain tool calls are never stops, even when the stop
// reason says "end_turn", because the tools still need to be executed.
func (p *AnthropicProvider) IsStopMessage(message *ai.ChatResponse) bool {
	if message == nil {
		return true
	}
	if len(message.ToolCalls) > 0 {
		return false
	}
	if message.FinishReason == "stop" || message.FinishReason == "length" || message.FinishReason == "content_filter" {
		return true
	}
	return message.Content == ""
}
