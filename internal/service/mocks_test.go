package service

import (
	"context"
	"strings"
	"time"

	"medmcq/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockRecordRepository ---
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) Create(ctx context.Context, record *domain.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) GetByID(ctx context.Context, id string) (*domain.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Record), args.Error(1)
}

func (m *MockRecordRepository) List(ctx context.Context, filter domain.RecordFilter) ([]*domain.Record, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Record), args.Error(1)
}

func (m *MockRecordRepository) Update(ctx context.Context, record *domain.Record) (bool, error) {
	args := m.Called(ctx, record)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecordRepository) UpdateRating(ctx context.Context, id string, rating int) (bool, error) {
	args := m.Called(ctx, id, rating)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecordRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecordRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockGenerator ---
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GenerationResult), args.Error(1)
}

func (m *MockGenerator) Model() string {
	args := m.Called()
	return args.String(0)
}

// --- MockDraftStore ---
type MockDraftStore struct {
	mock.Mock
}

func (m *MockDraftStore) Put(ctx context.Context, draft *domain.Draft) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}

func (m *MockDraftStore) Get(ctx context.Context, id string) (*domain.Draft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Draft), args.Error(1)
}

func (m *MockDraftStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// wordCounter counts whitespace separated words, one token each.
type wordCounter struct {
	contextSize int
}

func (c wordCounter) CountTokens(_ string, text string) int {
	return len(strings.Fields(text))
}

func (c wordCounter) ContextSize(string) int {
	return c.contextSize
}

const chestPainText = `CLINICAL SCENARIO:
A 54-year-old man presents with crushing chest pain.

QUESTION:
What is the most appropriate next step?

OPTIONS:
A) ECG
B) Chest X-ray
C) Troponin

CORRECT ANSWER:
A

EXPLANATION:
An ECG is the first test.`
