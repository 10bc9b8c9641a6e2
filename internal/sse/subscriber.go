package sse

import (
	"context"

	"github.com/osse101/PackSim_Go/internal/event"
	"github.com/osse101/PackSim_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe forwards every collection event type to the hub
func (s *Subscriber) Subscribe(ctx context.Context) {
	event.SubscribeAll(s.bus, s.forward)

	types := make([]string, 0, len(event.AllTypes))
	for _, t := range event.AllTypes {
		types = append(types, string(t))
	}
	logger.FromContext(ctx).Info(LogMsgSubscriberReady, "types", types)
}

// forward relays the typed payload unchanged; clients already receive the
// same JSON shape the API uses.
func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
