// Package store defines the persistence gateway contract shared by the
// Redis-backed implementation and the in-memory one used in tests.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/remindhq/reminderd/internal/domain"
)

// MaxListResults caps how many documents a list operation returns.
const MaxListResults = 1000

var (
	// ErrNotFound signals that no document matches the given id.
	ErrNotFound = errors.New("document not found")

	// ErrWriteFailed signals that the underlying store rejected a write.
	ErrWriteFailed = errors.New("storage write failed")
)

// ReminderStore is the persistence gateway for reminder documents.
type ReminderStore interface {
	Save(ctx context.Context, r *domain.Reminder) error
	Get(ctx context.Context, id string) (*domain.Reminder, error)
	// All returns up to MaxListResults reminders in storage-native order.
	// Callers must not assume a stable order.
	All(ctx context.Context) ([]*domain.Reminder, error)
	// Update merges the non-nil fields of u into the stored document and
	// refreshes its updated_at. Returns the post-update document.
	Update(ctx context.Context, id string, u *domain.ReminderUpdate, now time.Time) (*domain.Reminder, error)
	Delete(ctx context.Context, id string) error
}

// StatusStore is the persistence gateway for status check documents.
// The collection is append-only: no update, no delete.
type StatusStore interface {
	Save(ctx context.Context, s *domain.StatusCheck) error
	All(ctx context.Context) ([]*domain.StatusCheck, error)
}
