package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"medmcq/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDraftStore_PutGet(t *testing.T) {
	ctx := context.Background()
	mc := new(MockCache)
	store := NewDraftStore(mc, time.Hour)

	draft := &domain.Draft{
		ID:              "01J0000000000000000000DRFT",
		Topic:           "chest pain",
		RawText:         chestPainText,
		Content:         domain.ParseContent(chestPainText),
		Model:           "o4-mini",
		ReasoningEffort: domain.EffortHigh,
		CreatedAt:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	key := "medmcq:generation:draft:" + draft.ID
	payload, err := json.Marshal(draft)
	require.NoError(t, err)

	mc.On("Set", ctx, key, string(payload), time.Hour).Return(nil)
	mc.On("Get", ctx, key).Return(string(payload), nil)

	require.NoError(t, store.Put(ctx, draft))
	got, err := store.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft, got)
	mc.AssertExpectations(t)
}

func TestDraftStore_PutFailure(t *testing.T) {
	ctx := context.Background()
	mc := new(MockCache)
	mc.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("OOM"))

	err := NewDraftStore(mc, time.Hour).Put(ctx, &domain.Draft{ID: "x"})
	assert.ErrorContains(t, err, "failed to store draft")
}

func TestDraftStore_DefaultTTL(t *testing.T) {
	s := NewDraftStore(new(MockCache), 0).(*cacheDraftStore)
	assert.Equal(t, DefaultDraftTTL, s.ttl)
}

func TestDraftStore_GetMiss(t *testing.T) {
	ctx := context.Background()
	mc := new(MockCache)
	mc.On("Get", ctx, "medmcq:generation:draft:gone").Return("", domain.ErrCacheMiss)

	_, err := NewDraftStore(mc, time.Hour).Get(ctx, "gone")
	var derr *domain.DomainError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, domain.CodeDraftNotFound, derr.Code)
}

func TestDraftStore_GetCacheFailure(t *testing.T) {
	ctx := context.Background()
	mc := new(MockCache)
	mc.On("Get", ctx, "medmcq:generation:draft:x").Return("", errors.New("connection reset"))

	_, err := NewDraftStore(mc, time.Hour).Get(ctx, "x")
	var derr *domain.DomainError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, domain.CodeInternal, derr.Code)
}

func TestDraftStore_CorruptEntryIsDiscarded(t *testing.T) {
	ctx := context.Background()
	mc := new(MockCache)
	key := "medmcq:generation:draft:bad"
	mc.On("Get", ctx, key).Return("{not json", nil)
	mc.On("Delete", ctx, key).Return(nil)

	_, err := NewDraftStore(mc, time.Hour).Get(ctx, "bad")
	var derr *domain.DomainError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, domain.CodeDraftNotFound, derr.Code)
	mc.AssertExpectations(t)
}

func TestDraftStore_UnparsedDraftKeepsNullContent(t *testing.T) {
	b, err := json.Marshal(&domain.Draft{ID: "x", RawText: "garbage"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"content":null`)
}
