// Package webfetch provides the bundled web_fetch tool, which retrieves a web
// page over HTTP/HTTPS and converts its HTML content into Markdown for
// consumption by the model.
//
// [NewTool] returns the ready-to-register definition; the underlying fetch
// logic is also available directly through [Fetch]. URL normalization,
// redirect following, response-size limiting, and context-aware cancellation
// are handled automatically.
package webfetch
