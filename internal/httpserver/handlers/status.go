package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/remindhq/reminderd/internal/domain"
	"github.com/remindhq/reminderd/internal/httpserver/deps"
	"github.com/remindhq/reminderd/internal/httpserver/httperr"
	"github.com/remindhq/reminderd/internal/logger"
)

// CreateStatusCheck records a client check-in. Legacy route, append-only.
func CreateStatusCheck(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload domain.StatusCheckCreate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			httperr.ValidationError(w, "invalid request body")
			return
		}
		if err := payload.Validate(); err != nil {
			httperr.ValidationError(w, err.Error())
			return
		}

		check := domain.NewStatusCheck(&payload, d.Now())

		if err := d.StatusChecks.Save(r.Context(), check); err != nil {
			d.Logger.Error("failed to create status check",
				logger.String("id", check.ID),
				logger.Error(err))
			httperr.InternalError(w)
			return
		}

		writeJSON(w, http.StatusOK, check)
	}
}

// ListStatusChecks returns up to 1000 status checks, unsorted.
func ListStatusChecks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks, err := d.StatusChecks.All(r.Context())
		if err != nil {
			d.Logger.Error("failed to list status checks", logger.Error(err))
			httperr.InternalError(w)
			return
		}
		if checks == nil {
			checks = []*domain.StatusCheck{}
		}
		writeJSON(w, http.StatusOK, checks)
	}
}
