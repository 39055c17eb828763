// Package tool provides the foundational types for defining, registering,
// and executing tools that a language model can invoke.
//
// A tool wraps a typed Go function together with its name, description, and
// an auto-derived JSON Schema for its arguments; [New] is the entry point and
// [WithDescription] configures the advertisement. The [Definition] interface
// abstracts over concrete tool types so heterogeneous tools (including whole
// agents) share one registry.
//
// [Registry] holds an agent's fixed tool set with case-insensitive lookup
// and deterministic, registration-ordered descriptions. [Executor] dispatches
// individual model-requested calls against a registry, containing handler
// failures as model-visible result text while letting configuration errors
// (unknown tools) propagate.
package tool
