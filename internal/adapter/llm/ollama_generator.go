package llm

import (
	"context"
	"errors"
	"fmt"

	"medmcq/internal/config"
	"medmcq/internal/domain"
	"medmcq/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// OllamaGenerator runs the prompt against a local Ollama server via langchaingo.
// Reasoning models wrap their trace in <think> tags, which is copied out as the reasoning.
type OllamaGenerator struct {
	llm llms.Model
	cfg config.LLMConfig
}

func NewOllamaGenerator(cfg config.LLMConfig) (*OllamaGenerator, error) {
	if cfg.OllamaServerURL == "" {
		return nil, errors.New("ollama server URL cannot be empty")
	}
	if cfg.Model == "" {
		return nil, errors.New("ollama model name cannot be empty")
	}

	client, err := ollama.New(
		ollama.WithModel(cfg.Model),
		ollama.WithServerURL(cfg.OllamaServerURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo Ollama LLM client: %w", err)
	}
	return newOllamaGenerator(client, cfg), nil
}

func newOllamaGenerator(model llms.Model, cfg config.LLMConfig) *OllamaGenerator {
	return &OllamaGenerator{llm: model, cfg: cfg}
}

func (g *OllamaGenerator) Model() string { return g.cfg.Model }

func (g *OllamaGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	l := logger.Get()

	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	var opts []llms.CallOption
	if g.cfg.Temperature > 0 {
		opts = append(opts, llms.WithTemperature(g.cfg.Temperature))
	}

	raw, err := llms.GenerateFromSinglePrompt(ctx, g.llm, domain.BuildPrompt(req.Topic, req.ReferenceText), opts...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("LLM request timed out", zap.Error(err))
			return nil, domain.NewLLMServiceError(fmt.Errorf("LLM request timed out: %w", err))
		}
		l.Error("Failed to get response from LLM", zap.Error(err))
		return nil, domain.NewLLMServiceError(fmt.Errorf("LLM call failed: %w", err))
	}

	_, reasoning := domain.SplitReasoning(raw)
	if reasoning != "" {
		l.Debug("LLM response carries a <think> block", zap.Int("reasoning_len", len(reasoning)))
	}
	return &domain.GenerationResult{RawText: raw, Model: g.cfg.Model, Reasoning: reasoning}, nil
}

var _ domain.Generator = (*OllamaGenerator)(nil)
