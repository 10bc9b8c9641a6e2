package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/PackSim_Go/internal/event"
	"github.com/osse101/PackSim_Go/internal/metrics"
	"github.com/osse101/PackSim_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Hub      *sse.Hub
}

// RegisterEventHandlers attaches the metrics collector and, when a hub is
// given, the SSE forwarder to the bus.
func RegisterEventHandlers(ctx context.Context, deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe(ctx)
		slog.Info(LogMsgSSESubscriberRegistered)
	}
}
