package llm

import (
	"context"
	"errors"
	"fmt"

	"medmcq/internal/config"
	"medmcq/internal/domain"
	"medmcq/internal/logger"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIGenerator calls the chat completions endpoint through go-openai.
type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
	cfg         config.LLMConfig
}

func NewOpenAIGenerator(cfg config.LLMConfig) (*OpenAIGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai API key cannot be empty")
	}
	if cfg.Model == "" {
		return nil, errors.New("openai model name cannot be empty")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAIGenerator{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		cfg:         cfg,
	}, nil
}

func (g *OpenAIGenerator) Model() string { return g.model }

func (g *OpenAIGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	l := logger.Get()

	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: domain.BuildPrompt(req.Topic, req.ReferenceText)},
		},
		Temperature:     g.temperature,
		ReasoningEffort: string(req.ReasoningEffort),
	})
	if err != nil {
		l.Error("OpenAI chat completion failed", zap.Error(err), zap.String("model", g.model))
		return nil, domain.NewLLMServiceError(fmt.Errorf("openai chat completion: %w", err))
	}
	if len(resp.Choices) == 0 {
		return nil, domain.NewLLMServiceError(errors.New("openai: empty choices"))
	}

	msg := resp.Choices[0].Message
	_, reasoning := domain.SplitReasoning(msg.Content)
	if msg.ReasoningContent != "" {
		reasoning = msg.ReasoningContent
	}

	model := resp.Model
	if model == "" {
		model = g.model
	}

	l.Debug("OpenAI completion received",
		zap.String("model", model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens))

	return &domain.GenerationResult{RawText: msg.Content, Model: model, Reasoning: reasoning}, nil
}

var _ domain.Generator = (*OpenAIGenerator)(nil)
