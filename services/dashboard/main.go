package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/config"
	httpserver "github.com/02loveslollipop/divvy-dashboard/services/dashboard/http"
	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/logging"
	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/metrics"
	"github.com/02loveslollipop/divvy-dashboard/services/dashboard/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	collector := metrics.NewCollector()
	sessions := store.New(cfg.SessionTTL, collector)

	srv, err := httpserver.New(cfg, sessions, collector, logger)
	if err != nil {
		logger.Fatalf("server setup error: %v", err)
	}
	logger.Infow("dashboard listening",
		"addr", cfg.ListenAddr(),
		"max_upload_mb", cfg.MaxUploadMB,
		"session_ttl", cfg.SessionTTL,
		"metrics", cfg.MetricsEnabled,
	)

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf("server error: %v", err)
	}
}
