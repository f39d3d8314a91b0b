package dto

import (
	"time"

	"medmcq/internal/domain"
)

// ContentOverrideRequest replaces individual parsed fields. Omitted fields
// keep the parsed value; options are keyed by letter.
type ContentOverrideRequest struct {
	ClinicalScenario *string           `json:"clinical_scenario,omitempty"`
	Question         *string           `json:"question,omitempty"`
	Options          map[string]string `json:"options,omitempty"`
	CorrectAnswer    *string           `json:"correct_answer,omitempty"`
	Explanation      *string           `json:"explanation,omitempty"`
}

// ToDomain converts the request into a domain override. Nil stays nil.
func (r *ContentOverrideRequest) ToDomain() *domain.ContentOverride {
	if r == nil {
		return nil
	}
	return &domain.ContentOverride{
		ClinicalScenario: r.ClinicalScenario,
		Question:         r.Question,
		Options:          r.Options,
		CorrectAnswer:    r.CorrectAnswer,
		Explanation:      r.Explanation,
	}
}

// SaveRecordRequest represents the request body for saving a record. Either
// DraftID or RawText must be given.
// @Description Request body for saving a generated question
type SaveRecordRequest struct {
	DraftID         string                  `json:"draft_id,omitempty"`
	Name            string                  `json:"name,omitempty"`
	Topic           string                  `json:"topic,omitempty"`
	RawText         string                  `json:"raw_text,omitempty"`
	Model           string                  `json:"model,omitempty"`
	Reasoning       string                  `json:"reasoning,omitempty"`
	ReasoningEffort string                  `json:"reasoning_effort,omitempty"`
	Content         *ContentOverrideRequest `json:"content,omitempty"`
}

// UpdateRecordRequest represents the request body for editing and resaving a
// record. Only present fields change.
// @Description Request body for editing a saved question
type UpdateRecordRequest struct {
	Name            *string                 `json:"name,omitempty"`
	Topic           *string                 `json:"topic,omitempty"`
	RawText         *string                 `json:"raw_text,omitempty"`
	ReasoningEffort *string                 `json:"reasoning_effort,omitempty"`
	Content         *ContentOverrideRequest `json:"content,omitempty"`
}

// RateRecordRequest represents the request body for rating a record.
type RateRecordRequest struct {
	Rating *int `json:"rating"`
}

// RecordListQuery holds the list filters taken from the query string.
type RecordListQuery struct {
	Topic     string `query:"topic"`
	MinRating int    `query:"min_rating"`
}

// RecordResponse represents a saved record in API responses.
type RecordResponse struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Topic           string               `json:"topic"`
	RawText         string               `json:"raw_text"`
	Content         domain.ParsedContent `json:"content"`
	Rating          int                  `json:"rating"`
	Model           string               `json:"model"`
	Reasoning       string               `json:"reasoning,omitempty"`
	ReasoningEffort string               `json:"reasoning_effort"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// RecordListResponse wraps a record listing.
type RecordListResponse struct {
	Records []*RecordResponse `json:"records"`
	Total   int               `json:"total"`
}

// ToRecordResponse converts a domain record.
func ToRecordResponse(r *domain.Record) *RecordResponse {
	if r == nil {
		return nil
	}
	return &RecordResponse{
		ID:              r.ID,
		Name:            r.Name,
		Topic:           r.Topic,
		RawText:         r.RawText,
		Content:         r.Content,
		Rating:          r.Rating,
		Model:           r.Model,
		Reasoning:       r.Reasoning,
		ReasoningEffort: string(r.ReasoningEffort),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ToRecordListResponse converts a slice of domain records.
func ToRecordListResponse(records []*domain.Record) *RecordListResponse {
	out := make([]*RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, ToRecordResponse(r))
	}
	return &RecordListResponse{Records: out, Total: len(out)}
}
