package service

import (
	"bytes"
	"context"

	"medmcq/internal/domain"
	"medmcq/internal/export"
	"medmcq/internal/logger"
	"medmcq/internal/render"

	"go.uber.org/zap"
)

// ExportService renders saved records for download or preview.
type ExportService interface {
	Excel(ctx context.Context, ids []string) ([]byte, error)
	PDF(ctx context.Context, ids []string, practice bool) ([]byte, error)
	PreviewHTML(ctx context.Context, id string) (string, error)
}

type exportServiceImpl struct {
	repo domain.RecordRepository
}

// NewExportService creates a new instance of exportServiceImpl.
func NewExportService(repo domain.RecordRepository) ExportService {
	return &exportServiceImpl{repo: repo}
}

// load returns every record when ids is empty. Otherwise records come back in
// the order requested; unknown ids are skipped, but at least one must exist.
func (s *exportServiceImpl) load(ctx context.Context, ids []string) ([]*domain.Record, error) {
	records, err := s.repo.List(ctx, domain.RecordFilter{IDs: ids})
	if err != nil {
		return nil, domain.NewInternalError("failed to load records for export", err)
	}
	if len(ids) == 0 {
		return records, nil
	}
	if len(records) == 0 {
		return nil, domain.NewRecordNotFoundError(ids[0])
	}

	byID := make(map[string]*domain.Record, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}
	ordered := make([]*domain.Record, 0, len(records))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			ordered = append(ordered, r)
			delete(byID, id)
		}
	}
	if len(ordered) < len(ids) {
		logger.Get().Warn("Some requested records were not found for export",
			zap.Int("requested", len(ids)),
			zap.Int("found", len(ordered)))
	}
	return ordered, nil
}

func (s *exportServiceImpl) Excel(ctx context.Context, ids []string) ([]byte, error) {
	records, err := s.load(ctx, ids)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := export.WriteExcel(&buf, records); err != nil {
		return nil, domain.NewInternalError("failed to build excel export", err)
	}
	return buf.Bytes(), nil
}

func (s *exportServiceImpl) PDF(ctx context.Context, ids []string, practice bool) ([]byte, error) {
	records, err := s.load(ctx, ids)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := export.WritePDF(&buf, records, export.PDFOptions{Practice: practice}); err != nil {
		return nil, domain.NewInternalError("failed to build pdf export", err)
	}
	return buf.Bytes(), nil
}

func (s *exportServiceImpl) PreviewHTML(ctx context.Context, id string) (string, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", domain.NewInternalError("failed to load record", err)
	}
	if record == nil {
		return "", domain.NewRecordNotFoundError(id)
	}
	html, err := render.RecordHTML(record)
	if err != nil {
		return "", domain.NewInternalError("failed to render preview", err)
	}
	return html, nil
}
