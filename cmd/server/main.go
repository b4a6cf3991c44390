package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/openpitch/league/internal/outbox"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found, relying on environment variables")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := loadConfig(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	sqlDB, err := setupDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer sqlDB.Close()
	log.Info().Msg("connected to database")

	svc := setupServices(sqlDB, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	natsCfg := outbox.DefaultNATSConfig()
	natsCfg.URL = cfg.NATS.URL
	natsCfg.SubjectPrefix = cfg.NATS.SubjectPrefix
	publisher, err := outbox.NewNATSPublisher(natsCfg)
	if err != nil {
		log.Warn().Err(err).Msg("NATS unavailable, outbox events will stay queued")
	} else {
		defer publisher.Close()

		workerCfg := outbox.DefaultConfig()
		workerCfg.PollInterval = cfg.outboxPollInterval()
		workerCfg.BatchSize = cfg.Outbox.BatchSize
		worker := outbox.NewWorker(sqlDB, publisher, workerCfg, clockwork.NewRealClock())
		if err := worker.Start(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to start outbox worker")
		}
		defer worker.Stop()
	}

	go svc.chatHub.Start(ctx)

	router := setupServer(cfg, svc)
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
