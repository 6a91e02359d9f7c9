package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/remindhq/reminderd/internal/logger"
	"github.com/remindhq/reminderd/internal/store"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time    // for testing, defaults to time.Now
	RedisClient  *redis.Client       // Redis client connection, pinged by the health endpoint
	Reminders    store.ReminderStore // Persistence gateway for reminders
	StatusChecks store.StatusStore   // Persistence gateway for status checks
}

// Now returns the injected clock, falling back to time.Now in UTC.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now().UTC()
}
