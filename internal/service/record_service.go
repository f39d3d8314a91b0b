package service

import (
	"context"
	"strings"

	"medmcq/internal/domain"
	"medmcq/internal/dto"
	"medmcq/internal/logger"
	"medmcq/internal/util"

	"go.uber.org/zap"
)

// RecordService manages saved questions.
type RecordService interface {
	Save(ctx context.Context, req *dto.SaveRecordRequest) (*domain.Record, error)
	Get(ctx context.Context, id string) (*domain.Record, error)
	List(ctx context.Context, filter domain.RecordFilter) ([]*domain.Record, error)
	Update(ctx context.Context, id string, req *dto.UpdateRecordRequest) (*domain.Record, error)
	Rate(ctx context.Context, id string, rating int) (*domain.Record, error)
	Delete(ctx context.Context, id string) error
}

type recordServiceImpl struct {
	repo   domain.RecordRepository
	drafts DraftStore
}

// NewRecordService creates a new instance of recordServiceImpl.
func NewRecordService(repo domain.RecordRepository, drafts DraftStore) RecordService {
	return &recordServiceImpl{repo: repo, drafts: drafts}
}

// deriveContent parses raw text and writes the overrides on top. Text that does
// not parse yields empty fields, which the overrides may still fill in.
func deriveContent(rawText string, override *domain.ContentOverride) domain.ParsedContent {
	var base domain.ParsedContent
	if parsed := domain.ParseContent(rawText); parsed != nil {
		base = *parsed
	}
	return override.Apply(base)
}

func parseEffort(s string) (domain.ReasoningEffort, error) {
	effort, ok := domain.ParseReasoningEffort(s)
	if !ok {
		return "", domain.ValidationErrors{domain.NewInvalidFormatError("reasoning_effort", s)}
	}
	return effort, nil
}

func (s *recordServiceImpl) Save(ctx context.Context, req *dto.SaveRecordRequest) (*domain.Record, error) {
	l := logger.Get()

	topic, rawText, model, reasoning := req.Topic, req.RawText, req.Model, req.Reasoning
	effortText := req.ReasoningEffort

	if req.DraftID != "" {
		draft, err := s.drafts.Get(ctx, req.DraftID)
		if err != nil {
			return nil, err
		}
		rawText, model, reasoning = draft.RawText, draft.Model, draft.Reasoning
		if strings.TrimSpace(topic) == "" {
			topic = draft.Topic
		}
		if effortText == "" {
			effortText = string(draft.ReasoningEffort)
		}
	} else if strings.TrimSpace(rawText) == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("raw_text")}
	}

	effort, err := parseEffort(effortText)
	if err != nil {
		return nil, err
	}

	record := domain.NewRecord(req.Name, topic, rawText, deriveContent(rawText, req.Content.ToDomain()), model)
	record.ID = util.NewULID()
	record.Reasoning = reasoning
	record.ReasoningEffort = effort

	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, record); err != nil {
		l.Error("Failed to save record", zap.Error(err), zap.String("topic", record.Topic))
		return nil, domain.NewInternalError("failed to save record", err)
	}

	if req.DraftID != "" {
		if err := s.drafts.Delete(ctx, req.DraftID); err != nil {
			l.Warn("Failed to delete saved draft", zap.String("draftID", req.DraftID), zap.Error(err))
		}
	}

	l.Info("Record saved", zap.String("recordID", record.ID), zap.String("topic", record.Topic))
	return record, nil
}

func (s *recordServiceImpl) Get(ctx context.Context, id string) (*domain.Record, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to load record", err)
	}
	if record == nil {
		return nil, domain.NewRecordNotFoundError(id)
	}
	return record, nil
}

func (s *recordServiceImpl) List(ctx context.Context, filter domain.RecordFilter) ([]*domain.Record, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, domain.NewInternalError("failed to list records", err)
	}
	return records, nil
}

// Update edits and resaves a record. New raw text replaces the parsed content
// before the overrides apply; the result must still be a complete question.
func (s *recordServiceImpl) Update(ctx context.Context, id string, req *dto.UpdateRecordRequest) (*domain.Record, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RawText != nil {
		record.RawText = *req.RawText
		record.Content = deriveContent(record.RawText, req.Content.ToDomain())
	} else {
		record.Content = req.Content.ToDomain().Apply(record.Content)
	}
	if req.Name != nil {
		record.Name = *req.Name
	}
	if req.Topic != nil {
		record.Topic = *req.Topic
	}
	if req.ReasoningEffort != nil {
		if record.ReasoningEffort, err = parseEffort(*req.ReasoningEffort); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(record.Name) == "" {
		record.Name = record.Topic
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	ok, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, domain.NewInternalError("failed to update record", err)
	}
	if !ok {
		return nil, domain.NewRecordNotFoundError(id)
	}

	logger.Get().Info("Record updated", zap.String("recordID", id))
	return record, nil
}

func (s *recordServiceImpl) Rate(ctx context.Context, id string, rating int) (*domain.Record, error) {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return nil, domain.ValidationErrors{domain.NewOutOfRangeError("rating", rating, domain.MinRating, domain.MaxRating)}
	}

	ok, err := s.repo.UpdateRating(ctx, id, rating)
	if err != nil {
		return nil, domain.NewInternalError("failed to rate record", err)
	}
	if !ok {
		return nil, domain.NewRecordNotFoundError(id)
	}
	return s.Get(ctx, id)
}

func (s *recordServiceImpl) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.NewInternalError("failed to delete record", err)
	}
	if !ok {
		return domain.NewRecordNotFoundError(id)
	}
	logger.Get().Info("Record deleted", zap.String("recordID", id))
	return nil
}
