package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medmcq/internal/cache"
	"medmcq/internal/domain"
	"medmcq/internal/logger"

	"go.uber.org/zap"
)

// DefaultDraftTTL applies when no draft TTL is configured.
const DefaultDraftTTL = 24 * time.Hour

// DraftStore keeps generation results between generate and save.
type DraftStore interface {
	Put(ctx context.Context, draft *domain.Draft) error
	// Get returns a DRAFT_NOT_FOUND domain error when the draft expired or never existed.
	Get(ctx context.Context, id string) (*domain.Draft, error)
	Delete(ctx context.Context, id string) error
}

type cacheDraftStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewDraftStore creates a DraftStore on top of the cache port.
func NewDraftStore(c domain.Cache, ttl time.Duration) DraftStore {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	return &cacheDraftStore{cache: c, ttl: ttl}
}

func (s *cacheDraftStore) Put(ctx context.Context, draft *domain.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := s.cache.Set(ctx, cache.DraftKey(draft.ID), string(data), s.ttl); err != nil {
		return fmt.Errorf("failed to store draft: %w", err)
	}
	return nil
}

func (s *cacheDraftStore) Get(ctx context.Context, id string) (*domain.Draft, error) {
	data, err := s.cache.Get(ctx, cache.DraftKey(id))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewDraftNotFoundError(id)
		}
		return nil, domain.NewInternalError("failed to load draft", err)
	}

	var draft domain.Draft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		logger.Get().Error("Corrupt draft in cache, discarding", zap.String("draftID", id), zap.Error(err))
		_ = s.cache.Delete(ctx, cache.DraftKey(id))
		return nil, domain.NewDraftNotFoundError(id)
	}
	return &draft, nil
}

func (s *cacheDraftStore) Delete(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, cache.DraftKey(id))
}
