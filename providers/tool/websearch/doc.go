// Package websearch provides the bundled web_search tool, backed by the
// DuckDuckGo Instant Answer API. The tool takes a query string and returns a
// plain-text summary suitable for feeding straight back to the model.
package websearch
