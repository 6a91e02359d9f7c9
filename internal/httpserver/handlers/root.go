package handlers

import (
	"net/http"

	"github.com/remindhq/reminderd/internal/httpserver/deps"
)

type messageResponse struct {
	Message string `json:"message"`
}

// Root is the API banner route.
func Root(_ deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, messageResponse{Message: "Smart Reminders API is running!"})
	}
}
