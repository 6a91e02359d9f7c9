// Package memory provides an in-memory implementation of the persistence
// gateway with the same semantics as the Redis store. Handler and seed
// tests run against it instead of a live Redis.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/remindhq/reminderd/internal/domain"
	"github.com/remindhq/reminderd/internal/store"
)

// ReminderStore is an RWMutex-guarded map of reminder documents.
type ReminderStore struct {
	mu        sync.RWMutex
	reminders map[string]*domain.Reminder
}

// NewReminderStore creates an empty in-memory reminder store
func NewReminderStore() *ReminderStore {
	return &ReminderStore{
		reminders: make(map[string]*domain.Reminder),
	}
}

func (m *ReminderStore) Save(_ context.Context, r *domain.Reminder) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *r
	m.reminders[r.ID] = &cp
	return nil
}

func (m *ReminderStore) Get(_ context.Context, id string) (*domain.Reminder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.reminders[id]
	if !ok {
		return nil, fmt.Errorf("%w: reminder %s", store.ErrNotFound, id)
	}
	cp := *r
	return &cp, nil
}

func (m *ReminderStore) All(_ context.Context) ([]*domain.Reminder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	reminders := make([]*domain.Reminder, 0, len(m.reminders))
	for _, r := range m.reminders {
		if len(reminders) == store.MaxListResults {
			break
		}
		cp := *r
		reminders = append(reminders, &cp)
	}
	return reminders, nil
}

func (m *ReminderStore) Update(_ context.Context, id string, u *domain.ReminderUpdate, now time.Time) (*domain.Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.reminders[id]
	if !ok {
		return nil, fmt.Errorf("%w: reminder %s", store.ErrNotFound, id)
	}

	u.Apply(r, now)
	cp := *r
	return &cp, nil
}

func (m *ReminderStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.reminders[id]; !ok {
		return fmt.Errorf("%w: reminder %s", store.ErrNotFound, id)
	}
	delete(m.reminders, id)
	return nil
}

// StatusStore is an RWMutex-guarded slice of status check documents.
type StatusStore struct {
	mu     sync.RWMutex
	checks []*domain.StatusCheck
}

// NewStatusStore creates an empty in-memory status check store
func NewStatusStore() *StatusStore {
	return &StatusStore{}
}

func (m *StatusStore) Save(_ context.Context, sc *domain.StatusCheck) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *sc
	m.checks = append(m.checks, &cp)
	return nil
}

func (m *StatusStore) All(_ context.Context) ([]*domain.StatusCheck, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.checks)
	if n > store.MaxListResults {
		n = store.MaxListResults
	}
	checks := make([]*domain.StatusCheck, 0, n)
	for _, sc := range m.checks[:n] {
		cp := *sc
		checks = append(checks, &cp)
	}
	return checks, nil
}
