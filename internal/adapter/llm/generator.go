package llm

import (
	"fmt"

	"medmcq/internal/config"
	"medmcq/internal/domain"
)

// NewGenerator builds the gateway selected by cfg.Provider.
func NewGenerator(cfg config.LLMConfig) (domain.Generator, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIGenerator(cfg)
	case config.ProviderOpenAISDK:
		return NewOpenAISDKGenerator(cfg)
	case config.ProviderOllama:
		return NewOllamaGenerator(cfg)
	case config.ProviderMock:
		return NewMockGenerator(cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
