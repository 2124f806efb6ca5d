package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	goredis "github.com/redis/go-redis/v9"
	"github.com/tablewars/pongbot/internal/config"
	"github.com/tablewars/pongbot/internal/database"
	server "github.com/tablewars/pongbot/internal/http"
	"github.com/tablewars/pongbot/internal/metrics"
	"github.com/tablewars/pongbot/internal/pingpong"
	"github.com/tablewars/pongbot/internal/pubsub"
	"github.com/tablewars/pongbot/internal/slackbot"
	"github.com/tablewars/pongbot/internal/store/memory"
	redisstore "github.com/tablewars/pongbot/internal/store/redis"
	"github.com/tablewars/pongbot/internal/store/sqlite"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	var backend pingpong.Backend
	switch cfg.Backend {
	case config.BackendMemory:
		backend = memory.New()
	case config.BackendRedis:
		backend = redisstore.New(goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		}))
	case config.BackendSQLite:
		db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
		if err != nil {
			log.Fatalf("Failed to initialize database: %s", err)
		}
		defer func() {
			log.Info("Closing database connection")
			dbTeardown()
		}()
		backend = sqlite.New(db)
	default:
		log.Fatalf("Unknown backend: %s", cfg.Backend)
	}

	service := pingpong.NewService(backend)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	var publisher pubsub.Publisher
	if cfg.ProjectID != "" {
		publisher = pubsub.New(cfg.ProjectID)
	}

	bot := slackbot.New(cfg.Slack.BotToken, cfg.Slack.AppToken, cfg.Slack.AnswerChannels, service, metricsSvc, publisher)

	s := server.NewServer(
		service,
		backend,
		metricsSvc,
		metricsHandler,
		cfg,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	botCtx, botCancel := context.WithCancel(context.Background())
	defer botCancel()

	// Channel to listen for errors coming from the server or the bot
	serverErrors := make(chan error, 2)

	go func() {
		log.Info("Slack bot started")
		serverErrors <- bot.Run(botCtx)
	}()

	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed && err != context.Canceled {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		botCancel()

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
