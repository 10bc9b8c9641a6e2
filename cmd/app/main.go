// PackSim serves the collectible pack-opening API.
//
// @title PackSim API
// @version 1.0
// @description Open creature packs, manage the resulting collection and track the coin economy.
// @BasePath /api/v1
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/PackSim_Go/docs"
	"github.com/osse101/PackSim_Go/internal/bootstrap"
	"github.com/osse101/PackSim_Go/internal/config"
	"github.com/osse101/PackSim_Go/internal/server"
	"github.com/osse101/PackSim_Go/internal/sse"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logger", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		if !cfg.IsDevelopment() {
			slog.Error("Environment validation failed", "error", err)
			os.Exit(1)
		}
		slog.Warn("Environment validation failed, continuing with defaults", "error", err)
	}
	for _, w := range warnings {
		slog.Warn(bootstrap.LogMsgEnvWarning, "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	events, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	hub := sse.NewHub()
	hub.Start()
	bootstrap.RegisterEventHandlers(ctx, bootstrap.EventHandlerDependencies{
		EventBus: events.Bus,
		Hub:      hub,
	})

	store, codec, err := bootstrap.SetupStore(ctx, cfg)
	if err != nil {
		return err
	}

	svc, err := bootstrap.SetupCollection(ctx, cfg, store, codec, events.Publisher)
	if err != nil {
		_ = store.Close()
		return err
	}

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		Variant:        cfg.Variant,
		TrustedProxies: cfg.TrustedProxies,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}, svc, store, hub)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Hub:    hub,
		Events: events,
		Store:  store,
	})
	return err
}
