package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"medmcq/internal/domain"
	"medmcq/internal/logger"
	"medmcq/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// GenerationService turns a topic into a stored draft.
type GenerationService interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.Draft, TokenEstimate, error)
	Estimate(topic, referenceText string) TokenEstimate
	// Parse returns a PARSE_FAILED domain error when the text is not a complete question.
	Parse(text string) (*domain.ParsedContent, error)
	GetDraft(ctx context.Context, id string) (*domain.Draft, error)
}

type generationServiceImpl struct {
	generator domain.Generator
	estimator *TokenEstimator
	drafts    DraftStore
	sfGroup   singleflight.Group
}

// NewGenerationService creates a new instance of generationServiceImpl.
func NewGenerationService(generator domain.Generator, estimator *TokenEstimator, drafts DraftStore) GenerationService {
	return &generationServiceImpl{
		generator: generator,
		estimator: estimator,
		drafts:    drafts,
	}
}

func generationKey(req domain.GenerationRequest) string {
	h := sha256.New()
	for _, part := range []string{req.Topic, req.ReferenceText, string(req.ReasoningEffort)} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (s *generationServiceImpl) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.Draft, TokenEstimate, error) {
	l := logger.Get()

	if strings.TrimSpace(req.Topic) == "" {
		return nil, TokenEstimate{}, domain.NewInvalidInputError("topic is required")
	}
	effort, ok := domain.ParseReasoningEffort(string(req.ReasoningEffort))
	if !ok {
		return nil, TokenEstimate{}, domain.ValidationErrors{domain.NewInvalidFormatError("reasoning_effort", req.ReasoningEffort)}
	}
	req.ReasoningEffort = effort

	estimate := s.Estimate(req.Topic, req.ReferenceText)
	if estimate.OverBudget {
		l.Warn("Prompt exceeds token budget, generating anyway",
			zap.Int("tokens", estimate.Tokens),
			zap.Int("limit", estimate.Limit))
	}

	// Identical requests in flight share one completion and one draft. The shared
	// call runs on a detached context bounded by the gateway timeout, so one caller
	// leaving does not fail the others.
	flight := s.sfGroup.DoChan(generationKey(req), func() (interface{}, error) {
		return s.generate(context.WithoutCancel(ctx), req)
	})
	select {
	case <-ctx.Done():
		return nil, estimate, ctx.Err()
	case res := <-flight:
		if res.Err != nil {
			return nil, estimate, res.Err
		}
		if res.Shared {
			l.Debug("Generation result shared between identical requests", zap.String("topic", req.Topic))
		}
		return res.Val.(*domain.Draft), estimate, nil
	}
}

func (s *generationServiceImpl) generate(ctx context.Context, req domain.GenerationRequest) (*domain.Draft, error) {
	l := logger.Get()
	start := time.Now()

	result, err := s.generator.Generate(ctx, req)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, domain.NewLLMServiceError(err)
	}

	draft := &domain.Draft{
		ID:              util.NewULID(),
		Topic:           req.Topic,
		ReferenceText:   req.ReferenceText,
		RawText:         result.RawText,
		Content:         domain.ParseContent(result.RawText),
		Model:           result.Model,
		Reasoning:       result.Reasoning,
		ReasoningEffort: req.ReasoningEffort,
		CreatedAt:       time.Now(),
	}
	if draft.Model == "" {
		draft.Model = s.generator.Model()
	}

	if draft.Content == nil {
		l.Warn("Generated text could not be parsed into a question",
			zap.String("draftID", draft.ID),
			zap.String("model", draft.Model),
			zap.Int("raw_len", len(draft.RawText)))
	}

	// A draft that cannot be cached is still returned; it can be saved from its raw text.
	if err := s.drafts.Put(ctx, draft); err != nil {
		l.Error("Failed to store draft", zap.String("draftID", draft.ID), zap.Error(err))
	}

	l.Info("Question generated",
		zap.String("draftID", draft.ID),
		zap.String("model", draft.Model),
		zap.Bool("parsed", draft.Content != nil),
		zap.Duration("elapsed", time.Since(start)))
	return draft, nil
}

func (s *generationServiceImpl) Estimate(topic, referenceText string) TokenEstimate {
	return s.estimator.Estimate(topic, referenceText)
}

func (s *generationServiceImpl) Parse(text string) (*domain.ParsedContent, error) {
	parsed := domain.ParseContent(text)
	if parsed == nil {
		return nil, domain.NewParseFailedError()
	}
	return parsed, nil
}

func (s *generationServiceImpl) GetDraft(ctx context.Context, id string) (*domain.Draft, error) {
	return s.drafts.Get(ctx, id)
}
