// Package anthropic implements the AI provider interface for Anthropic's
// Messages API using the official anthropic-sdk-go client.
//
// The main entry point is [New], which reads ANTHROPIC_API_KEY and
// ANTHROPIC_BASE_URL from the environment. Tool definitions and tool results
// are translated between the generic chat shapes and the Messages API block
// format; structured-output requests are carried in the instructions because
// the Messages API has no response_format parameter.
package anthropic
