package handler_test

import (
	"context"
	"errors"
	"time"

	"medmcq/internal/domain"
	"medmcq/internal/dto"
	"medmcq/internal/handler"
	"medmcq/internal/middleware"
	"medmcq/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// --- Manual Mocks ---

type MockAuthService struct {
	LoginFunc         func(password string) (string, time.Time, error)
	ValidateTokenFunc func(tokenString string) (*dto.SessionClaims, error)
}

func (m *MockAuthService) Login(password string) (string, time.Time, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(password)
	}
	panic("MockAuthService.LoginFunc not implemented")
}

func (m *MockAuthService) ValidateToken(tokenString string) (*dto.SessionClaims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(tokenString)
	}
	if tokenString == testToken {
		return &dto.SessionClaims{RegisteredClaims: jwt.RegisteredClaims{ID: "session"}}, nil
	}
	return nil, errors.New("invalid token")
}

func (m *MockAuthService) SessionTTL() time.Duration { return time.Hour }

type MockGenerationService struct {
	GenerateFunc func(ctx context.Context, req domain.GenerationRequest) (*domain.Draft, service.TokenEstimate, error)
	EstimateFunc func(topic, referenceText string) service.TokenEstimate
	ParseFunc    func(text string) (*domain.ParsedContent, error)
	GetDraftFunc func(ctx context.Context, id string) (*domain.Draft, error)
}

func (m *MockGenerationService) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.Draft, service.TokenEstimate, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	panic("MockGenerationService.GenerateFunc not implemented")
}

func (m *MockGenerationService) Estimate(topic, referenceText string) service.TokenEstimate {
	if m.EstimateFunc != nil {
		return m.EstimateFunc(topic, referenceText)
	}
	panic("MockGenerationService.EstimateFunc not implemented")
}

func (m *MockGenerationService) Parse(text string) (*domain.ParsedContent, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(text)
	}
	panic("MockGenerationService.ParseFunc not implemented")
}

func (m *MockGenerationService) GetDraft(ctx context.Context, id string) (*domain.Draft, error) {
	if m.GetDraftFunc != nil {
		return m.GetDraftFunc(ctx, id)
	}
	panic("MockGenerationService.GetDraftFunc not implemented")
}

type MockRecordService struct {
	SaveFunc   func(ctx context.Context, req *dto.SaveRecordRequest) (*domain.Record, error)
	GetFunc    func(ctx context.Context, id string) (*domain.Record, error)
	ListFunc   func(ctx context.Context, filter domain.RecordFilter) ([]*domain.Record, error)
	UpdateFunc func(ctx context.Context, id string, req *dto.UpdateRecordRequest) (*domain.Record, error)
	RateFunc   func(ctx context.Context, id string, rating int) (*domain.Record, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *MockRecordService) Save(ctx context.Context, req *dto.SaveRecordRequest) (*domain.Record, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, req)
	}
	panic("MockRecordService.SaveFunc not implemented")
}

func (m *MockRecordService) Get(ctx context.Context, id string) (*domain.Record, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	panic("MockRecordService.GetFunc not implemented")
}

func (m *MockRecordService) List(ctx context.Context, filter domain.RecordFilter) ([]*domain.Record, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	panic("MockRecordService.ListFunc not implemented")
}

func (m *MockRecordService) Update(ctx context.Context, id string, req *dto.UpdateRecordRequest) (*domain.Record, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	panic("MockRecordService.UpdateFunc not implemented")
}

func (m *MockRecordService) Rate(ctx context.Context, id string, rating int) (*domain.Record, error) {
	if m.RateFunc != nil {
		return m.RateFunc(ctx, id, rating)
	}
	panic("MockRecordService.RateFunc not implemented")
}

func (m *MockRecordService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	panic("MockRecordService.DeleteFunc not implemented")
}

type MockExportService struct {
	ExcelFunc       func(ctx context.Context, ids []string) ([]byte, error)
	PDFFunc         func(ctx context.Context, ids []string, practice bool) ([]byte, error)
	PreviewHTMLFunc func(ctx context.Context, id string) (string, error)
}

func (m *MockExportService) Excel(ctx context.Context, ids []string) ([]byte, error) {
	if m.ExcelFunc != nil {
		return m.ExcelFunc(ctx, ids)
	}
	panic("MockExportService.ExcelFunc not implemented")
}

func (m *MockExportService) PDF(ctx context.Context, ids []string, practice bool) ([]byte, error) {
	if m.PDFFunc != nil {
		return m.PDFFunc(ctx, ids, practice)
	}
	panic("MockExportService.PDFFunc not implemented")
}

func (m *MockExportService) PreviewHTML(ctx context.Context, id string) (string, error) {
	if m.PreviewHTMLFunc != nil {
		return m.PreviewHTMLFunc(ctx, id)
	}
	panic("MockExportService.PreviewHTMLFunc not implemented")
}

// MockRepository only answers health pings.
type MockRepository struct {
	domain.RecordRepository
	PingErr error
}

func (m *MockRepository) Ping(ctx context.Context) error { return m.PingErr }

// MockCache only answers health pings.
type MockCache struct {
	domain.Cache
	PingErr error
}

func (m *MockCache) Ping(ctx context.Context) error { return m.PingErr }

// --- Test app ---

const (
	testToken  = "valid-session"
	testCookie = "medmcq_session"
)

type testDeps struct {
	auth       *MockAuthService
	generation *MockGenerationService
	records    *MockRecordService
	exports    *MockExportService
	db         *MockRepository
	cache      *MockCache
}

func newTestDeps() *testDeps {
	return &testDeps{
		auth:       &MockAuthService{},
		generation: &MockGenerationService{},
		records:    &MockRecordService{},
		exports:    &MockExportService{},
		db:         &MockRepository{},
		cache:      &MockCache{},
	}
}

func (d *testDeps) app() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.RegisterRoutes(app.Group("/api"), handler.Handlers{
		Auth:       handler.NewAuthHandler(d.auth, testCookie),
		Health:     handler.NewHealthHandler(d.db, d.cache),
		Generation: handler.NewGenerationHandler(d.generation),
		Record:     handler.NewRecordHandler(d.records, d.exports),
		Export:     handler.NewExportHandler(d.exports),
	}, middleware.Protected(d.auth, testCookie))
	return app
}
