// Package weather provides the bundled get_weather tool, which reports
// typical conditions for well-known cities from a static table. It requires
// no API key and responds instantly, making it useful as a demo tool and in
// tests that need a deterministic tool result.
package weather
