package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/remindhq/reminderd/internal/httpserver/deps"
	"github.com/remindhq/reminderd/internal/logger"
)

// ServiceName is echoed in the health payload.
const ServiceName = "Smart Reminders API"

const storePingTimeout = 2 * time.Second

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
}

// Health reports liveness. The wire shape always answers 200, but the
// status degrades when the store does not answer a short PING, so a
// disappearing Redis shows up here instead of only on the CRUD routes.
func Health(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "healthy"
		if err := pingStore(r.Context(), d); err != nil {
			d.Logger.Warn("health probe: store unreachable", logger.Error(err))
			status = "degraded"
		}

		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, http.StatusOK, healthResponse{
			Status:    status,
			Timestamp: d.Now(),
			Service:   ServiceName,
		})
	}
}

func pingStore(ctx context.Context, d deps.Deps) error {
	if d.RedisClient == nil {
		return errors.New("redis client not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, storePingTimeout)
	defer cancel()

	return d.RedisClient.Ping(pingCtx).Err()
}
