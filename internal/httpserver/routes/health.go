package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/remindhq/reminderd/internal/httpserver/deps"
	"github.com/remindhq/reminderd/internal/httpserver/handlers"
)

func init() { Register(registerHealth) }

func registerHealth(r chi.Router, d deps.Deps) {
	r.Get("/api/", handlers.Root(d))
	r.Get("/api/health", handlers.Health(d))
}
