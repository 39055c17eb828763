package webfetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestFetch_Success tests fetching a page and converting it to Markdown.
func TestFetch_Success(t *testing.T) {
	var receivedUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedUA = r.Header.Get("User-Agent")
		html := `
<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
	<h1>Welcome</h1>
	<p>This is a <strong>test</strong> paragraph.</p>
	<ul>
		<li>Item 1</li>
		<li>Item 2</li>
	</ul>
</body>
</html>`
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, html)
	}))
	defer server.Close()

	output, err := Fetch(context.Background(), Input{URL: server.URL})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if output.URL != server.URL {
		t.Errorf("URL = %s, want %s", output.URL, server.URL)
	}
	if !strings.Contains(output.Markdown, "Welcome") {
		t.Error("Markdown should contain 'Welcome' heading")
	}
	if !strings.Contains(output.Markdown, "test") {
		t.Error("Markdown should contain 'test' text")
	}
	if receivedUA != userAgent {
		t.Errorf("User-Agent = %q, want %q", receivedUA, userAgent)
	}
}

// TestFetch_EmptyURL tests validation of empty and whitespace-only URLs.
func TestFetch_EmptyURL(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		_, err := Fetch(context.Background(), Input{URL: raw})
		if err == nil {
			t.Fatalf("expected error for URL %q", raw)
		}
		if !strings.Contains(err.Error(), "URL cannot be empty") {
			t.Errorf("expected 'URL cannot be empty' error, got: %v", err)
		}
	}
}

// TestFetch_PartialURL tests that a URL without a scheme is normalized with
// an https:// prefix rather than rejected.
func TestFetch_PartialURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body><h1>Test</h1></body></html>")
	}))
	defer server.Close()

	serverHost := strings.TrimPrefix(server.URL, "http://")
	_, err := Fetch(context.Background(), Input{URL: serverHost})

	// The https:// connection to the plain-HTTP test server fails, which
	// proves normalization happened instead of a validation error.
	if err != nil && strings.Contains(err.Error(), "URL cannot be empty") {
		t.Error("partial URL should have been normalized with https:// prefix")
	}
}

// TestFetch_HTTPError tests handling of non-200 status codes.
func TestFetch_HTTPError(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusForbidden, http.StatusInternalServerError} {
		t.Run(fmt.Sprintf("Status_%d", status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))
			defer server.Close()

			_, err := Fetch(context.Background(), Input{URL: server.URL})
			if err == nil {
				t.Fatal("expected error for HTTP error status")
			}
			if !strings.Contains(err.Error(), fmt.Sprintf("%d", status)) {
				t.Errorf("error should contain status code %d, got: %v", status, err)
			}
		})
	}
}

// TestFetch_Timeout tests that a model-requested timeout aborts a slow fetch.
func TestFetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(3 * time.Second)
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), Input{URL: server.URL, TimeoutSeconds: 1})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !strings.Contains(err.Error(), "context deadline exceeded") && !strings.Contains(err.Error(), "timeout") {
		t.Errorf("expected timeout error, got: %v", err)
	}
}

// TestFetch_ContextCancellation tests that a cancelled context aborts the fetch.
func TestFetch_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Fetch(ctx, Input{URL: server.URL})
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if !strings.Contains(err.Error(), "context canceled") {
		t.Errorf("expected context canceled error, got: %v", err)
	}
}

// TestFetch_Redirect tests that redirects are followed and the final URL is
// reported.
func TestFetch_Redirect(t *testing.T) {
	finalServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body><h1>Final Page</h1></body></html>")
	}))
	defer finalServer.Close()

	redirectServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, finalServer.URL, http.StatusMovedPermanently)
	}))
	defer redirectServer.Close()

	output, err := Fetch(context.Background(), Input{URL: redirectServer.URL})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !strings.Contains(output.Markdown, "Final Page") {
		t.Error("expected content from the redirected page")
	}
	if output.URL != finalServer.URL {
		t.Errorf("final URL = %s, want %s", output.URL, finalServer.URL)
	}
}

// TestFetch_TooManyRedirects tests that a redirect loop is cut off.
func TestFetch_TooManyRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, r.URL.String(), http.StatusFound)
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), Input{URL: server.URL})
	if err == nil {
		t.Fatal("expected error for too many redirects")
	}
	if !strings.Contains(err.Error(), "redirect") {
		t.Errorf("expected redirect error, got: %v", err)
	}
}

// TestFetch_LargeResponse tests that a body over the size cap is rejected.
func TestFetch_LargeResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, strings.Repeat("<p>Large content</p>", MaxBodySize/20+1))
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), Input{URL: server.URL})
	if err == nil {
		t.Fatal("expected error for response exceeding max size")
	}
	if !strings.Contains(err.Error(), "exceeds maximum size") {
		t.Errorf("expected max size error, got: %v", err)
	}
}

// TestFetch_PlainText tests that non-HTML content still converts.
func TestFetch_PlainText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, "This is plain text content")
	}))
	defer server.Close()

	output, err := Fetch(context.Background(), Input{URL: server.URL})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !strings.Contains(output.Markdown, "plain text") {
		t.Error("Markdown should contain the plain text content")
	}
}

// TestNewTool tests the advertised tool definition.
func TestNewTool(t *testing.T) {
	def, err := NewTool()
	if err != nil {
		t.Fatalf("NewTool() unexpected error: %v", err)
	}

	desc := def.Describe()
	if desc.Name != "web_fetch" {
		t.Errorf("tool name = %s, want web_fetch", desc.Name)
	}
	if desc.Description == "" {
		t.Error("tool description is empty")
	}
	if !strings.Contains(string(desc.Parameters), `"url"`) {
		t.Errorf("parameter schema missing url property: %s", desc.Parameters)
	}
}

// TestFetch_URLTrimming tests that surrounding whitespace is stripped.
func TestFetch_URLTrimming(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>Test</body></html>")
	}))
	defer server.Close()

	output, err := Fetch(context.Background(), Input{URL: "  " + server.URL + "  "})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if output.URL != server.URL {
		t.Errorf("URL = %q, want %q", output.URL, server.URL)
	}
}
