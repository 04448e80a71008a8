// Package llm provides the text-completion clients behind the
// announcement drafting helper.
package llm

import "context"

// CompletionClient is the interface for text-completion operations.
// Use it for dependency injection to enable mocking in tests. Completion
// calls are side-effect-free; callers leave stored state unchanged when a
// call fails.
type CompletionClient interface {
	// Complete returns the completion for a prompt.
	Complete(ctx context.Context, prompt string, systemMessage string) (string, error)

	// Model returns the configured model name.
	Model() string
}

// Compile-time checks that both providers implement the interface.
var (
	_ CompletionClient = (*OpenAIClient)(nil)
	_ CompletionClient = (*AnthropicClient)(nil)
)
