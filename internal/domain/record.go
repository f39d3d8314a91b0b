package domain

import (
	"strings"
	"time"
)

// ReasoningEffort is the hint forwarded to the generation model.
type ReasoningEffort string

const (
	EffortLow    ReasoningEffort = "low"
	EffortMedium ReasoningEffort = "medium"
	EffortHigh   ReasoningEffort = "high"

	DefaultEffort = EffortMedium
)

// ParseReasoningEffort accepts low/medium/high in any case. An empty string
// yields the default.
func ParseReasoningEffort(s string) (ReasoningEffort, bool) {
	switch ReasoningEffort(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultEffort, true
	case EffortLow:
		return EffortLow, true
	case EffortMedium:
		return EffortMedium, true
	case EffortHigh:
		return EffortHigh, true
	}
	return "", false
}

const (
	MinRating = 0
	MaxRating = 5
)

// Record is a saved question together with the text it was derived from.
type Record struct {
	ID              string
	Name            string
	Topic           string
	RawText         string
	Content         ParsedContent
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Rating          int
	Model           string
	Reasoning       string
	ReasoningEffort ReasoningEffort
}

// NewRecord creates a record with the default rating and effort.
func NewRecord(name, topic, rawText string, content ParsedContent, model string) *Record {
	now := time.Now()
	if strings.TrimSpace(name) == "" {
		name = topic
	}
	return &Record{
		Name:            name,
		Topic:           topic,
		RawText:         rawText,
		Content:         content,
		CreatedAt:       now,
		UpdatedAt:       now,
		Rating:          MinRating,
		Model:           model,
		ReasoningEffort: DefaultEffort,
	}
}

// Validate checks the record invariants before it is persisted.
func (r *Record) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return NewInvalidInputError("topic is required")
	}
	if missing := r.Content.MissingFields(); len(missing) > 0 {
		return NewInvalidContentError(missing)
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		return ValidationErrors{NewOutOfRangeError("rating", r.Rating, MinRating, MaxRating)}
	}
	if _, ok := ParseReasoningEffort(string(r.ReasoningEffort)); !ok {
		return ValidationErrors{NewInvalidFormatError("reasoning_effort", r.ReasoningEffort)}
	}
	return nil
}

// RecordFilter narrows a record listing.
type RecordFilter struct {
	Topic     string
	MinRating int
	IDs       []string
}

// Draft is a generation result waiting to be saved. Content is nil when the
// completion could not be parsed.
type Draft struct {
	ID              string          `json:"id"`
	Topic           string          `json:"topic"`
	ReferenceText   string          `json:"reference_text,omitempty"`
	RawText         string          `json:"raw_text"`
	Content         *ParsedContent  `json:"content"`
	Model           string          `json:"model"`
	Reasoning       string          `json:"reasoning,omitempty"`
	ReasoningEffort ReasoningEffort `json:"reasoning_effort"`
	CreatedAt       time.Time       `json:"created_at"`
}

// GenerationRequest is what the gateway needs to produce a question.
type GenerationRequest struct {
	Topic           string
	ReferenceText   string
	ReasoningEffort ReasoningEffort
}

// GenerationResult is the verbatim completion from the gateway.
type GenerationResult struct {
	RawText   string
	Model     string
	Reasoning string
}
