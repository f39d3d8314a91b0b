package llm

import (
	"context"
	"errors"
	"fmt"

	"medmcq/internal/config"
	"medmcq/internal/domain"
	"medmcq/internal/logger"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"go.uber.org/zap"
)

// OpenAISDKGenerator calls chat completions through the official openai-go SDK.
type OpenAISDKGenerator struct {
	client openai.Client
	cfg    config.LLMConfig
}

func NewOpenAISDKGenerator(cfg config.LLMConfig) (*OpenAISDKGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing; provide llm.api_key")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey), option.WithMaxRetries(1)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &OpenAISDKGenerator{client: openai.NewClient(opts...), cfg: cfg}, nil
}

func (g *OpenAISDKGenerator) Model() string { return g.cfg.Model }

func (g *OpenAISDKGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(domain.BuildPrompt(req.Topic, req.ReferenceText)),
		},
	}
	if req.ReasoningEffort != "" {
		params.ReasoningEffort = shared.ReasoningEffort(req.ReasoningEffort)
	}
	if g.cfg.Temperature > 0 {
		params.Temperature = openai.Float(g.cfg.Temperature)
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		logger.Get().Error("openai-go chat completion failed", zap.Error(err), zap.String("model", g.cfg.Model))
		return nil, domain.NewLLMServiceError(fmt.Errorf("openai-go chat completion: %w", err))
	}
	if len(resp.Choices) == 0 {
		return nil, domain.NewLLMServiceError(errors.New("openai: empty choices"))
	}

	content := resp.Choices[0].Message.Content
	_, reasoning := domain.SplitReasoning(content)
	model := resp.Model
	if model == "" {
		model = g.cfg.Model
	}
	return &domain.GenerationResult{RawText: content, Model: model, Reasoning: reasoning}, nil
}

var _ domain.Generator = (*OpenAISDKGenerator)(nil)
