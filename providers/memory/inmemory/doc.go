// Package inmemory provides a concurrency-safe, slice-backed implementation
// of the [memory.Store] interface for holding a conversation transcript in
// process memory. It is the default store for sessions, where persistence
// across restarts is not required. The main entry point is [New], which
// returns a ready-to-use [Store] instance.
package inmemory
