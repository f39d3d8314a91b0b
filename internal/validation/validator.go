package validation

import (
	"strings"
	"unicode/utf8"

	"medmcq/internal/domain"
	"medmcq/internal/dto"
	"medmcq/internal/util"
)

const (
	MaxTopicLength         = 500
	MaxNameLength          = 500
	MaxReferenceTextLength = 200000
	MaxRawTextLength       = 200000
	MaxExportIDs           = 500
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRecordID validates a record id path parameter
func (v *Validator) ValidateRecordID(id string) domain.ValidationErrors {
	return validateID("id", id)
}

// ValidateEstimateRequest validates the estimate request
func (v *Validator) ValidateEstimateRequest(req *dto.EstimateRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	errors = append(errors, validateTopic("topic", req.Topic, true)...)
	errors = append(errors, validateLength("reference_text", req.ReferenceText, MaxReferenceTextLength)...)
	return errors
}

// ValidateGenerateRequest validates the generate request
func (v *Validator) ValidateGenerateRequest(req *dto.GenerateRequest) domain.ValidationErrors {
	errors := v.ValidateEstimateRequest(&dto.EstimateRequest{Topic: req.Topic, ReferenceText: req.ReferenceText})
	errors = append(errors, validateEffort(req.ReasoningEffort)...)
	return errors
}

// ValidateParseRequest validates the parse preview request
func (v *Validator) ValidateParseRequest(req *dto.ParseRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(req.Text) == "" {
		errors = append(errors, domain.NewMissingFieldError("text"))
	}
	return append(errors, validateLength("text", req.Text, MaxRawTextLength)...)
}

// ValidateSaveRecordRequest validates the save request
func (v *Validator) ValidateSaveRecordRequest(req *dto.SaveRecordRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.DraftID != "" {
		errors = append(errors, validateID("draft_id", req.DraftID)...)
		errors = append(errors, validateTopic("topic", req.Topic, false)...)
	} else {
		if strings.TrimSpace(req.RawText) == "" {
			errors = append(errors, domain.NewMissingFieldError("raw_text"))
		}
		errors = append(errors, validateTopic("topic", req.Topic, true)...)
	}

	errors = append(errors, validateLength("raw_text", req.RawText, MaxRawTextLength)...)
	errors = append(errors, validateLength("name", req.Name, MaxNameLength)...)
	errors = append(errors, validateEffort(req.ReasoningEffort)...)
	return errors
}

// ValidateUpdateRecordRequest validates the edit-resave request
func (v *Validator) ValidateUpdateRecordRequest(req *dto.UpdateRecordRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.Topic != nil {
		errors = append(errors, validateTopic("topic", *req.Topic, true)...)
	}
	if req.Name != nil {
		errors = append(errors, validateLength("name", *req.Name, MaxNameLength)...)
	}
	if req.RawText != nil {
		errors = append(errors, validateLength("raw_text", *req.RawText, MaxRawTextLength)...)
	}
	if req.ReasoningEffort != nil {
		errors = append(errors, validateEffort(*req.ReasoningEffort)...)
	}
	return errors
}

// ValidateRating validates the rating request
func (v *Validator) ValidateRating(req *dto.RateRecordRequest) domain.ValidationErrors {
	if req.Rating == nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("rating")}
	}
	if *req.Rating < domain.MinRating || *req.Rating > domain.MaxRating {
		return domain.ValidationErrors{domain.NewOutOfRangeError("rating", *req.Rating, domain.MinRating, domain.MaxRating)}
	}
	return nil
}

// ParseIDList splits a comma separated id list. Blank entries are skipped.
func (v *Validator) ParseIDList(raw string) ([]string, domain.ValidationErrors) {
	var (
		ids    []string
		errors domain.ValidationErrors
	)
	for _, part := range strings.Split(raw, ",") {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		if !util.IsULID(id) {
			errors = append(errors, domain.NewInvalidFormatError("ids", id))
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) > MaxExportIDs {
		errors = append(errors, domain.NewOutOfRangeError("ids", len(ids), 1, MaxExportIDs))
	}
	return ids, errors
}

// Helper functions for validation

func validateID(field, id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if !util.IsULID(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, id)}
	}
	return nil
}

func validateTopic(field, topic string, required bool) domain.ValidationErrors {
	if strings.TrimSpace(topic) == "" {
		if required {
			return domain.ValidationErrors{domain.NewMissingFieldError(field)}
		}
		return nil
	}
	return validateLength(field, topic, MaxTopicLength)
}

// validateLength counts characters, not bytes.
func validateLength(field, s string, max int) domain.ValidationErrors {
	if n := utf8.RuneCountInString(s); n > max {
		return domain.ValidationErrors{domain.NewOutOfRangeError(field, n, 0, max)}
	}
	return nil
}

func validateEffort(s string) domain.ValidationErrors {
	if _, ok := domain.ParseReasoningEffort(s); !ok {
		return domain.ValidationErrors{domain.NewInvalidFormatError("reasoning_effort", s)}
	}
	return nil
}
