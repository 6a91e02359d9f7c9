package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/remindhq/reminderd/internal/domain"
	"github.com/remindhq/reminderd/internal/store"
)

// Store handles Redis operations for reminder and status check documents.
// Each document is stored as a JSON blob under its own key, with a set of
// all IDs per collection for listing.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Save stores a reminder document. No TTL: documents live until deleted.
func (s *Store) Save(ctx context.Context, r *domain.Reminder) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder: %w", err)
	}

	key := ReminderKey(r.ID)

	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: save reminder %s: %s", store.ErrWriteFailed, r.ID, err)
	}

	if err := s.client.SAdd(ctx, KeyAllReminders, r.ID).Err(); err != nil {
		return fmt.Errorf("%w: index reminder %s: %s", store.ErrWriteFailed, r.ID, err)
	}

	return nil
}

// Get retrieves a reminder by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Reminder, error) {
	data, err := s.client.Get(ctx, ReminderKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: reminder %s", store.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get reminder %s: %w", id, err)
	}

	var r domain.Reminder
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reminder %s: %w", id, err)
	}

	return &r, nil
}

// All retrieves up to store.MaxListResults reminders.
// Order follows the ID set, which Redis does not keep stable.
func (s *Store) All(ctx context.Context) ([]*domain.Reminder, error) {
	ids, err := s.client.SMembers(ctx, KeyAllReminders).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list reminder IDs: %w", err)
	}

	if len(ids) > store.MaxListResults {
		ids = ids[:store.MaxListResults]
	}

	reminders := make([]*domain.Reminder, 0, len(ids))
	for _, id := range ids {
		r, err := s.Get(ctx, id)
		if err != nil {
			// Skip documents that couldn't be retrieved
			continue
		}
		reminders = append(reminders, r)
	}

	return reminders, nil
}

// Update merges the non-nil fields of u into the stored reminder,
// refreshes updated_at and writes the document back. Read-merge-write:
// concurrent updates to the same ID are last-write-wins.
func (s *Store) Update(ctx context.Context, id string, u *domain.ReminderUpdate, now time.Time) (*domain.Reminder, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	u.Apply(r, now)

	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reminder %s: %w", id, err)
	}

	if err := s.client.Set(ctx, ReminderKey(id), data, 0).Err(); err != nil {
		return nil, fmt.Errorf("%w: update reminder %s: %s", store.ErrWriteFailed, id, err)
	}

	return r, nil
}

// Delete removes a reminder. Hard delete, no tombstoning.
func (s *Store) Delete(ctx context.Context, id string) error {
	deleted, err := s.client.Del(ctx, ReminderKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete reminder %s: %w", id, err)
	}
	if deleted == 0 {
		return fmt.Errorf("%w: reminder %s", store.ErrNotFound, id)
	}

	if err := s.client.SRem(ctx, KeyAllReminders, id).Err(); err != nil {
		return fmt.Errorf("failed to remove reminder %s from index: %w", id, err)
	}

	return nil
}
