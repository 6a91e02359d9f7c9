package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/remindhq/reminderd/internal/domain"
	"github.com/remindhq/reminderd/internal/store"
)

// StatusStore wraps the shared client for the append-only status check
// collection.
type StatusStore struct {
	client *redis.Client
}

// NewStatusStore creates a new status check store
func NewStatusStore(client *redis.Client) *StatusStore {
	return &StatusStore{
		client: client,
	}
}

// Save stores a status check document.
func (s *StatusStore) Save(ctx context.Context, sc *domain.StatusCheck) error {
	data, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("failed to marshal status check: %w", err)
	}

	key := StatusCheckKey(sc.ID)

	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: save status check %s: %s", store.ErrWriteFailed, sc.ID, err)
	}

	if err := s.client.SAdd(ctx, KeyAllStatusChecks, sc.ID).Err(); err != nil {
		return fmt.Errorf("%w: index status check %s: %s", store.ErrWriteFailed, sc.ID, err)
	}

	return nil
}

// All retrieves up to store.MaxListResults status checks, unordered.
func (s *StatusStore) All(ctx context.Context) ([]*domain.StatusCheck, error) {
	ids, err := s.client.SMembers(ctx, KeyAllStatusChecks).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list status check IDs: %w", err)
	}

	if len(ids) > store.MaxListResults {
		ids = ids[:store.MaxListResults]
	}

	checks := make([]*domain.StatusCheck, 0, len(ids))
	for _, id := range ids {
		sc, err := s.get(ctx, id)
		if err != nil {
			continue
		}
		checks = append(checks, sc)
	}

	return checks, nil
}

func (s *StatusStore) get(ctx context.Context, id string) (*domain.StatusCheck, error) {
	data, err := s.client.Get(ctx, StatusCheckKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: status check %s", store.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get status check %s: %w", id, err)
	}

	var sc domain.StatusCheck
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal status check %s: %w", id, err)
	}

	return &sc, nil
}
