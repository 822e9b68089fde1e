package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"flakytodo/internal/api"
	"flakytodo/internal/config"
	"flakytodo/internal/store"
	"flakytodo/internal/unreliable"
)

func main() {
	// Environment supplies defaults; flags override.
	cfg := config.Load()
	flag.StringVar(&cfg.Port, "port", cfg.Port, "port to accept connections on")
	flag.Float64Var(&cfg.FailureRate, "failure-rate", cfg.FailureRate,
		fmt.Sprintf("fraction of time an API call should fail (default %v)", config.DefaultFailureRate))
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	s := store.New()

	faults, err := unreliable.New(cfg.FailureRate)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	srv := api.New(s, faults)
	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Handler(),
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		slog.Info("shutting down...")
		httpServer.Shutdown(context.Background())
	}()

	slog.Info("flakytodo server listening",
		"addr", "http://localhost:"+cfg.Port,
		"failure_rate", cfg.FailureRate,
	)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
