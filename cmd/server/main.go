package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/config"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/infra"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/router"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/store"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/worker"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Redis serves the alert job queue and, optionally, the snapshot backend.
	// Everything degrades gracefully without it except the redis backend itself.
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = infra.NewRedis(cfg.RedisURL)
		if err != nil {
			if cfg.SnapshotBackend == "redis" {
				log.Fatal().Err(err).Msg("failed to connect to redis")
			}
			log.Warn().Err(err).Msg("redis unavailable, low-stock alerts disabled")
			rdb = nil
		}
	}

	snap, err := newSnapshotStore(cfg, rdb)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open snapshot backend")
	}

	st := store.New(snap)
	if err := st.Load(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to load state")
	}

	// Worker pool draining the low-stock alert queue into SMTP.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if rdb != nil {
		mailer := infra.NewMailer(cfg)
		worker.StartPool(ctx, rdb, mailer, cfg.AlertEmail, cfg.WorkerPoolSize)
	}

	r := router.New(cfg, st, snap, rdb)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Evolution Beauty Center backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	// One synchronous save so in-flight async persistence cannot be lost.
	if err := st.Persist(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("final snapshot save failed")
	}
	log.Info().Msg("server exited")
}

func newSnapshotStore(cfg *config.Config, rdb *redis.Client) (infra.SnapshotStore, error) {
	switch cfg.SnapshotBackend {
	case "redis":
		return infra.NewRedisSnapshotStore(rdb), nil
	case "sqlite":
		return infra.NewSQLiteSnapshotStore(cfg.SQLitePath)
	case "file":
		return infra.NewFileSnapshotStore(cfg.DataPath), nil
	default:
		return nil, fmt.Errorf("backend de snapshot desconocido: %q", cfg.SnapshotBackend)
	}
}
