// Package parse converts raw LLM text output into structured data. Models
// frequently wrap JSON in markdown code fences or relaxed syntax, so decoding
// applies automatic JSON repair before giving up.
//
// [As] is the strict entry point: it decodes into a target type and reports
// failure as an error. [Structured] is the forgiving one used for final
// answers: it validates against a JSON Schema and returns an [Outcome] that
// is either the typed record or the untouched raw text, never an error.
package parse
