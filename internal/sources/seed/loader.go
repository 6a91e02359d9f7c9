// Package seed imports an optional YAML file of predefined reminders at
// startup, so a fresh deployment can ship with a working set.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/remindhq/reminderd/internal/domain"
	"github.com/remindhq/reminderd/internal/logger"
	"github.com/remindhq/reminderd/internal/store"
)

// Loader handles loading and importing the seed file.
type Loader struct {
	filePath string
	store    store.ReminderStore
	logger   logger.Logger
}

// NewLoader creates a new seed loader
func NewLoader(filePath string, st store.ReminderStore, log logger.Logger) *Loader {
	return &Loader{
		filePath: filePath,
		store:    st,
		logger:   log,
	}
}

// Load reads and parses the seed file.
func (l *Loader) Load() (*File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	return &f, nil
}

// Import stores the seed reminders, skipping entries without text or a
// positive interval and ids that already exist. Returns how many were
// imported.
func (l *Loader) Import(ctx context.Context, now time.Time) (int, error) {
	f, err := l.Load()
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, entry := range f.Reminders {
		if entry.Text == "" || entry.IntervalMinutes <= 0 {
			l.logger.Warn("skipping invalid seed entry",
				logger.String("text", entry.Text),
				logger.Int("interval_minutes", entry.IntervalMinutes))
			continue
		}

		reminder := mapEntry(entry, now)

		// A seed id already present in the store belongs to a previous run;
		// never overwrite live data with seed data.
		if _, err := l.store.Get(ctx, reminder.ID); err == nil {
			l.logger.Debug("seed entry already present, skipping",
				logger.String("id", reminder.ID))
			continue
		} else if !errors.Is(err, store.ErrNotFound) {
			return imported, fmt.Errorf("failed to check seed entry %s: %w", reminder.ID, err)
		}

		if err := l.store.Save(ctx, reminder); err != nil {
			return imported, fmt.Errorf("failed to import seed entry %s: %w", reminder.ID, err)
		}
		imported++
	}

	return imported, nil
}

// mapEntry converts a seed entry to a full domain.Reminder.
func mapEntry(e Entry, now time.Time) *domain.Reminder {
	id := e.ID
	if id == "" {
		id = uuid.NewString()
	}
	return &domain.Reminder{
		ID:              id,
		Text:            e.Text,
		IntervalMinutes: e.IntervalMinutes,
		IsActive:        e.IsActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
