package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/remindhq/reminderd/internal/httpserver/deps"
	"github.com/remindhq/reminderd/internal/httpserver/handlers"
)

func init() { Register(registerStatus) }

func registerStatus(r chi.Router, d deps.Deps) {
	r.Post("/api/status", handlers.CreateStatusCheck(d))
	r.Get("/api/status", handlers.ListStatusChecks(d))
}
