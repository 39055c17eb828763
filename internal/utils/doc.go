// Package utils provides shared low-level helpers used throughout the
// tripsmith internals: a JSON-over-HTTP request helper for provider APIs and
// string utilities for safe log output.
//
// Key entry points: [DoPostSync] for synchronous JSON round-trips and
// [TruncateString] for bounding logged payloads.
package utils
