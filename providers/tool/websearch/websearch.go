package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tripsmith-ai/tripsmith/providers/tool"
)

const (
	defaultBaseURL = "https://api.duckduckgo.com"
	userAgent      = "tripsmith-websearch/1.0"
	requestTimeout = 15 * time.Second

	noResults = "No information found for this query."
)

// Input is the argument shape advertised to the model.
type Input struct {
	Query string `json:"query" jsonschema_description:"The search query to look up"`
}

type searcher struct {
	baseURL string
	client  *http.Client
}

// Option configures the search tool.
type Option func(*searcher)

// WithBaseURL overrides the DuckDuckGo API endpoint. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(s *searcher) {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for API requests.
func WithHTTPClient(client *http.Client) Option {
	return func(s *searcher) {
		if client != nil {
			s.client = client
		}
	}
}

// NewTool returns the web_search tool. It queries the DuckDuckGo Instant
// Answer API and reduces the response to a plain-text summary the model can
// quote from: the topic abstract when one exists, otherwise the instant
// answer, a definition, or related-topic snippets.
func NewTool(options ...Option) (tool.Definition, error) {
	s := &searcher{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
	for _, option := range options {
		option(s)
	}

	return tool.New("web_search", s.search,
		tool.WithDescription("Search the web for current information about a topic. Returns instant answers and topic summaries."),
	)
}

// ddgResponse is the subset of the Instant Answer payload the summary uses.
type ddgResponse struct {
	AbstractText  string `json:"AbstractText"`
	AbstractURL   string `json:"AbstractURL"`
	Answer        string `json:"Answer"`
	Definition    string `json:"Definition"`
	Heading       string `json:"Heading"`
	RelatedTopics []struct {
		Text string `json:"Text"`
	} `json:"RelatedTopics"`
}

func (s *searcher) search(ctx context.Context, input Input) (string, error) {
	params := url.Values{}
	params.Add("q", input.Query)
	params.Add("format", "json")
	params.Add("no_html", "1")
	params.Add("skip_disambig", "1")

	requestURL := s.baseURL + "/?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("failed to close search response body", "error", closeErr.Error())
		}
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	var ddg ddgResponse
	if err := json.Unmarshal(body, &ddg); err != nil {
		return "", fmt.Errorf("error parsing response: %w", err)
	}

	return summarize(&ddg), nil
}

// summarize picks the richest available answer: abstract first, then instant
// answer, then definition, then related-topic snippets.
func summarize(ddg *ddgResponse) string {
	if ddg.AbstractText != "" {
		if ddg.AbstractURL != "" {
			return fmt.Sprintf("%s\n\nSource: %s", ddg.AbstractText, ddg.AbstractURL)
		}
		return ddg.AbstractText
	}
	if ddg.Answer != "" {
		return ddg.Answer
	}
	if ddg.Definition != "" {
		return ddg.Definition
	}

	topics := make([]string, 0, 5)
	for _, topic := range ddg.RelatedTopics {
		if topic.Text == "" {
			continue
		}
		topics = append(topics, topic.Text)
		if len(topics) == 5 {
			break
		}
	}
	if len(topics) > 0 {
		return "Related topics: " + strings.Join(topics, "; ")
	}

	return noResults
}
