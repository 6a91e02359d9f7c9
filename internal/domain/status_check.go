package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// StatusCheck is a legacy client check-in record, kept for compatibility.
// Append-only: there is no update or delete operation for it.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// StatusCheckCreate is the payload for recording a status check.
type StatusCheckCreate struct {
	ClientName *string `json:"client_name"`
}

// Validate checks that required fields are present.
func (c *StatusCheckCreate) Validate() error {
	if c.ClientName == nil {
		return errors.New("field client_name is required")
	}
	return nil
}

// NewStatusCheck builds a StatusCheck from a validated create payload.
func NewStatusCheck(c *StatusCheckCreate, now time.Time) *StatusCheck {
	return &StatusCheck{
		ID:         uuid.NewString(),
		ClientName: *c.ClientName,
		Timestamp:  now,
	}
}
