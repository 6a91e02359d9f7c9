package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/remindhq/reminderd/internal/config"
	"github.com/remindhq/reminderd/internal/httpserver"
	"github.com/remindhq/reminderd/internal/httpserver/deps"
	"github.com/remindhq/reminderd/internal/logger"
	"github.com/remindhq/reminderd/internal/redis"
	"github.com/remindhq/reminderd/internal/sources/seed"
	redisstore "github.com/remindhq/reminderd/internal/store/redis"
	"github.com/remindhq/reminderd/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	seedLoader  *seed.Loader
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Connect to Redis early - fail fast if unavailable
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}

	reminderStore := redisstore.NewStore(redisClient)
	statusStore := redisstore.NewStatusStore(redisClient)

	var seedLoader *seed.Loader
	if cfg.SeedFile != "" {
		loggerClient.Info("seed file configured",
			logger.String("file", cfg.SeedFile))
		seedLoader = seed.NewLoader(cfg.SeedFile, reminderStore, loggerClient)
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      func() time.Time { return time.Now().UTC() },
		RedisClient:  redisClient,
		Reminders:    reminderStore,
		StatusChecks: statusStore,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		seedLoader:  seedLoader,
	}
}

func (a *App) Run() error {
	a.logger.Infof("Starting reminderd %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Import seed reminders before serving traffic
	if a.seedLoader != nil {
		imported, err := a.seedLoader.Import(ctx, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to import seed reminders: %w", err)
		}
		a.logger.Info("seed reminders imported", logger.Int("count", imported))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("Redis closed cleanly")
		}
	}

	a.logger.Info("reminderd stopped cleanly")
	return nil
}
