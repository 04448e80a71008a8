package llm

import (
	"fmt"

	"go.uber.org/zap"
)

// Provider names accepted by NewClient.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// NewClient creates the completion client for the named provider. The
// openai provider also covers any OpenAI-compatible local endpoint.
func NewClient(provider string, cfg *Config, logger *zap.Logger) (CompletionClient, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAIClient(cfg, logger)
	case ProviderAnthropic:
		return NewAnthropicClient(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown completion provider %q", provider)
	}
}
