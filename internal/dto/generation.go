package dto

import (
	"time"

	"medmcq/internal/domain"
)

// EstimateRequest represents the request body for a token estimate.
// @Description Request body for estimating prompt tokens
type EstimateRequest struct {
	Topic         string `json:"topic"`
	ReferenceText string `json:"reference_text"`
}

// TokenEstimateResponse is the advisory prompt size for the generation model.
// Remaining is negative when the prompt is over budget.
type TokenEstimateResponse struct {
	Model      string `json:"model"`
	Tokens     int    `json:"tokens"`
	Limit      int    `json:"limit"`
	Remaining  int    `json:"remaining"`
	OverBudget bool   `json:"over_budget"`
}

// GenerateRequest represents the request body for generating a question.
// @Description Request body for generating a question draft
type GenerateRequest struct {
	Topic           string `json:"topic"`
	ReferenceText   string `json:"reference_text"`
	ReasoningEffort string `json:"reasoning_effort"`
}

// DraftResponse is a generated question waiting to be saved. Content is null
// when the completion could not be parsed.
type DraftResponse struct {
	ID              string                 `json:"id"`
	Topic           string                 `json:"topic"`
	RawText         string                 `json:"raw_text"`
	Content         *domain.ParsedContent  `json:"content"`
	Model           string                 `json:"model"`
	Reasoning       string                 `json:"reasoning,omitempty"`
	ReasoningEffort string                 `json:"reasoning_effort"`
	CreatedAt       time.Time              `json:"created_at"`
	Estimate        *TokenEstimateResponse `json:"estimate,omitempty"`
}

// ParseRequest represents the request body for a parse preview.
type ParseRequest struct {
	Text string `json:"text"`
}

// ToDraftResponse converts a domain draft.
func ToDraftResponse(d *domain.Draft) *DraftResponse {
	if d == nil {
		return nil
	}
	return &DraftResponse{
		ID:              d.ID,
		Topic:           d.Topic,
		RawText:         d.RawText,
		Content:         d.Content,
		Model:           d.Model,
		Reasoning:       d.Reasoning,
		ReasoningEffort: string(d.ReasoningEffort),
		CreatedAt:       d.CreatedAt,
	}
}
