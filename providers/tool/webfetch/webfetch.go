package webfetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/tripsmith-ai/tripsmith/providers/tool"
)

const (
	// DefaultTimeout bounds a fetch when the model does not request one.
	DefaultTimeout = 30 * time.Second
	// MaxTimeout caps a model-requested timeout.
	MaxTimeout = 300 * time.Second
	// MaxBodySize is the largest response body accepted (10MB).
	MaxBodySize = 10 * 1024 * 1024
	// MaxRedirects bounds the redirect chain.
	MaxRedirects = 10

	userAgent = "tripsmith-webfetch/1.0"
)

// Input holds the parameters the model passes to the web_fetch tool.
type Input struct {
	// URL may be partial ("example.com"); https:// is prepended when the
	// scheme is missing.
	URL string `json:"url" jsonschema_description:"The URL of the page to fetch. Partial URLs like 'example.com' are normalized to https."`

	// TimeoutSeconds overrides the default request timeout.
	TimeoutSeconds int `json:"timeout_seconds,omitempty" jsonschema:"minimum=1,maximum=300" jsonschema_description:"Request timeout in seconds (default 30, max 300)"`
}

// Output is returned to the model. URL reflects the final destination after
// redirects.
type Output struct {
	URL      string `json:"url" jsonschema_description:"The final URL after following redirects"`
	Markdown string `json:"markdown" jsonschema_description:"The page content converted to Markdown"`
}

// sharedClient is reused across fetches. Per-request deadlines come from the
// request context, so Timeout stays zero here.
var sharedClient = &http.Client{
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		ForceAttemptHTTP2:     true,
	},
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		if len(via) >= MaxRedirects {
			return fmt.Errorf("too many redirects (>%d)", MaxRedirects)
		}
		return nil
	},
}

// NewTool returns the web_fetch tool backed by [Fetch].
func NewTool() (tool.Definition, error) {
	return tool.New("web_fetch", Fetch,
		tool.WithDescription("Fetches a web page and converts its HTML content to Markdown. Handles partial URLs by adding an https:// prefix, follows redirects, and returns the final URL with the converted content."),
	)
}

// Fetch retrieves the page at req.URL and converts its HTML to Markdown.
//
// Partial URLs are normalized by prepending "https://". The response body is
// capped at [MaxBodySize] bytes and up to [MaxRedirects] redirects are
// followed. Fetch returns an error when the URL is empty, the status code is
// not 200 OK, the body exceeds the size cap, the conversion fails, or the
// context is cancelled.
func Fetch(ctx context.Context, req Input) (Output, error) {
	pageURL := strings.TrimSpace(req.URL)
	if pageURL == "" {
		return Output{}, fmt.Errorf("URL cannot be empty")
	}
	if !strings.HasPrefix(pageURL, "http://") && !strings.HasPrefix(pageURL, "https://") {
		pageURL = "https://" + pageURL
	}

	timeout := DefaultTimeout
	if req.TimeoutSeconds > 0 {
		timeout = min(time.Duration(req.TimeoutSeconds)*time.Second, MaxTimeout)
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return Output{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", userAgent)

	resp, err := sharedClient.Do(httpReq)
	if err != nil {
		return Output{}, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Output{}, fmt.Errorf("unexpected status code: %d %s", resp.StatusCode, resp.Status)
	}

	// Read one byte past the cap so an oversized body is distinguishable
	// from one that is exactly MaxBodySize.
	htmlBytes, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return Output{}, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(htmlBytes) > MaxBodySize {
		return Output{}, fmt.Errorf("response body exceeds maximum size of %d bytes", MaxBodySize)
	}

	markdown, err := htmltomarkdown.ConvertString(string(htmlBytes))
	if err != nil {
		return Output{}, fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}

	return Output{
		URL:      resp.Request.URL.String(),
		Markdown: markdown,
	}, nil
}
