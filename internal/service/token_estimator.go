package service

import "medmcq/internal/domain"

// TokenEstimate is the advisory size of a generation prompt. Remaining may be
// negative; nothing is rejected on account of it.
type TokenEstimate struct {
	Model      string
	Tokens     int
	Limit      int
	Remaining  int
	OverBudget bool
}

// TokenEstimator counts the exact prompt the gateway would send.
type TokenEstimator struct {
	counter domain.TokenCounter
	model   string
	limit   int
}

// NewTokenEstimator creates an estimator for model. A maxInputTokens of zero
// uses the model's context size as the limit.
func NewTokenEstimator(counter domain.TokenCounter, model string, maxInputTokens int) *TokenEstimator {
	limit := maxInputTokens
	if limit <= 0 {
		limit = counter.ContextSize(model)
	}
	return &TokenEstimator{counter: counter, model: model, limit: limit}
}

func (e *TokenEstimator) Limit() int { return e.limit }

// Estimate is pure given a deterministic counter.
func (e *TokenEstimator) Estimate(topic, referenceText string) TokenEstimate {
	tokens := e.counter.CountTokens(e.model, domain.PromptFor(topic)+domain.ReferenceBlock(referenceText))
	remaining := e.limit - tokens
	return TokenEstimate{
		Model:      e.model,
		Tokens:     tokens,
		Limit:      e.limit,
		Remaining:  remaining,
		OverBudget: remaining < 0,
	}
}
