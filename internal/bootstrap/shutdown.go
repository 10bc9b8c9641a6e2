package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/PackSim_Go/internal/server"
	"github.com/osse101/PackSim_Go/internal/sse"
	"github.com/osse101/PackSim_Go/internal/storage"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Hub    *sse.Hub
	Events *EventSystem
	Store  storage.Store
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. SSE hub (release streaming clients)
// 3. Event publisher (flush or dead-letter pending events)
// 4. Store (after the last write)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.Events != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.Events.Publisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
		if components.Events.DeadLetter != nil {
			if err := components.Events.DeadLetter.Close(); err != nil {
				slog.Error(LogMsgDeadLetterCloseFailed, "error", err)
			}
		}
	}

	if components.Store != nil {
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
