package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/remindhq/reminderd/internal/httpserver/deps"
	"github.com/remindhq/reminderd/internal/httpserver/handlers"
)

func init() { Register(registerReminders) }

func registerReminders(r chi.Router, d deps.Deps) {
	r.Route("/api/reminders", func(r chi.Router) {
		r.Post("/", handlers.CreateReminder(d))
		r.Get("/", handlers.ListReminders(d))
		r.Get("/{id}", handlers.GetReminder(d))
		r.Put("/{id}", handlers.UpdateReminder(d))
		r.Delete("/{id}", handlers.DeleteReminder(d))
	})
}
