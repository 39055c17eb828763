// Package openai implements the AI provider interface over the
// /v1/chat/completions endpoint, which is also the lingua franca of
// compatible servers such as Ollama, OpenRouter, and Azure OpenAI.
//
// The main entry point is [NewOpenAIProvider], which reads OPENAI_API_KEY and
// OPENAI_BASE_URL from the environment. Use [OpenAIProvider.WithAPIKey] and
// [OpenAIProvider.WithBaseURL] to override these values programmatically; a
// custom base URL (for example http://localhost:11434/v1 for Ollama) lifts
// the API-key requirement.
package openai
