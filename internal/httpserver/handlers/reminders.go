package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/remindhq/reminderd/internal/domain"
	"github.com/remindhq/reminderd/internal/httpserver/deps"
	"github.com/remindhq/reminderd/internal/httpserver/httperr"
	"github.com/remindhq/reminderd/internal/logger"
	"github.com/remindhq/reminderd/internal/store"
)

// CreateReminder validates the payload, builds a full Reminder with a
// generated id, default is_active=false and equal timestamps, and persists it.
func CreateReminder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload domain.ReminderCreate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			httperr.ValidationError(w, "invalid request body")
			return
		}
		if err := payload.Validate(); err != nil {
			httperr.ValidationError(w, err.Error())
			return
		}

		reminder := domain.NewReminder(&payload, d.Now())

		if err := d.Reminders.Save(r.Context(), reminder); err != nil {
			d.Logger.Error("failed to create reminder",
				logger.String("id", reminder.ID),
				logger.Error(err))
			httperr.InternalError(w)
			return
		}

		d.Logger.Info("reminder created",
			logger.String("id", reminder.ID),
			logger.Int("interval_minutes", reminder.IntervalMinutes))
		writeJSON(w, http.StatusOK, reminder)
	}
}

// ListReminders returns up to 1000 reminders, unsorted. Always an array,
// [] when the collection is empty.
func ListReminders(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reminders, err := d.Reminders.All(r.Context())
		if err != nil {
			d.Logger.Error("failed to list reminders", logger.Error(err))
			httperr.InternalError(w)
			return
		}
		if reminders == nil {
			reminders = []*domain.Reminder{}
		}
		writeJSON(w, http.StatusOK, reminders)
	}
}

// GetReminder returns a single reminder by id.
func GetReminder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		reminder, err := d.Reminders.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httperr.NotFound(w, "Reminder not found")
				return
			}
			d.Logger.Error("failed to get reminder",
				logger.String("id", id),
				logger.Error(err))
			httperr.InternalError(w)
			return
		}
		writeJSON(w, http.StatusOK, reminder)
	}
}

// UpdateReminder applies a partial update: absent fields keep their values,
// updated_at is always refreshed. Returns the post-update record.
func UpdateReminder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var payload domain.ReminderUpdate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			httperr.ValidationError(w, "invalid request body")
			return
		}

		reminder, err := d.Reminders.Update(r.Context(), id, &payload, d.Now())
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httperr.NotFound(w, "Reminder not found")
				return
			}
			d.Logger.Error("failed to update reminder",
				logger.String("id", id),
				logger.Error(err))
			httperr.InternalError(w)
			return
		}

		d.Logger.Info("reminder updated", logger.String("id", id))
		writeJSON(w, http.StatusOK, reminder)
	}
}

// DeleteReminder removes a reminder. Hard delete, no recovery.
func DeleteReminder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := d.Reminders.Delete(r.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httperr.NotFound(w, "Reminder not found")
				return
			}
			d.Logger.Error("failed to delete reminder",
				logger.String("id", id),
				logger.Error(err))
			httperr.InternalError(w)
			return
		}

		d.Logger.Info("reminder deleted", logger.String("id", id))
		writeJSON(w, http.StatusOK, messageResponse{Message: "Reminder deleted successfully"})
	}
}
