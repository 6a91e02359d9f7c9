package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Reminder represents a reminder configuration owned by the user.
type Reminder struct {
	// ID is the canonical unique identifier, generated at creation.
	// Application-level (UUIDv4), independent of storage keys, so documents
	// can be moved between stores without renumbering.
	ID string `json:"id"`

	// Text is the user-supplied reminder content.
	Text string `json:"text"`

	// IntervalMinutes is how often the reminder should fire.
	IntervalMinutes int `json:"interval_minutes"`

	// IsActive reports whether the reminder is currently enabled.
	// Defaults to false at creation.
	IsActive bool `json:"is_active"`

	// CreatedAt is set once at creation and never changes.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every successful update.
	UpdatedAt time.Time `json:"updated_at"`
}

// ReminderCreate is the payload for creating a reminder.
// Pointer fields distinguish absent from zero-valued input.
type ReminderCreate struct {
	Text            *string `json:"text"`
	IntervalMinutes *int    `json:"interval_minutes"`
}

// Validate checks that required fields are present.
// Validation is structural only: presence and JSON type, nothing semantic.
func (c *ReminderCreate) Validate() error {
	if c.Text == nil {
		return errors.New("field text is required")
	}
	if c.IntervalMinutes == nil {
		return errors.New("field interval_minutes is required")
	}
	return nil
}

// NewReminder builds a full Reminder from a validated create payload.
// The caller supplies the clock so tests can pin timestamps.
func NewReminder(c *ReminderCreate, now time.Time) *Reminder {
	return &Reminder{
		ID:              uuid.NewString(),
		Text:            *c.Text,
		IntervalMinutes: *c.IntervalMinutes,
		IsActive:        false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ReminderUpdate is a partial update: nil fields are left untouched.
type ReminderUpdate struct {
	Text            *string `json:"text"`
	IntervalMinutes *int    `json:"interval_minutes"`
	IsActive        *bool   `json:"is_active"`
}

// Apply merges the supplied fields into r and refreshes UpdatedAt.
// UpdatedAt moves even when no field is supplied, matching the
// always-refresh contract of the update endpoint.
func (u *ReminderUpdate) Apply(r *Reminder, now time.Time) {
	if u.Text != nil {
		r.Text = *u.Text
	}
	if u.IntervalMinutes != nil {
		r.IntervalMinutes = *u.IntervalMinutes
	}
	if u.IsActive != nil {
		r.IsActive = *u.IsActive
	}
	r.UpdatedAt = now
}
