package metrics

import (
	"context"

	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/internal/event"
	"github.com/osse101/PackSim_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all collection events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	event.SubscribeAll(bus, e.HandleEvent)
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.PackOpened:
		var p domain.PackOpenedPayload
		if p, err = event.DecodePayload[domain.PackOpenedPayload](evt.Payload); err == nil {
			PacksOpened.Inc()
			CoinsSpent.Add(float64(p.CoinsSpent))
			PackSize.Observe(float64(p.Revealed))
		}

	case event.ItemRevealed, event.ItemDuplicated:
		var p domain.ItemRevealedPayload
		if p, err = event.DecodePayload[domain.ItemRevealedPayload](evt.Payload); err == nil {
			ItemsRevealed.WithLabelValues(rarityLabel(p.Item)).Inc()
			if p.Duplicated {
				ItemsDuplicated.Inc()
			}
		}

	case event.ItemSold:
		var p domain.ItemSoldPayload
		if p, err = event.DecodePayload[domain.ItemSoldPayload](evt.Payload); err == nil {
			ItemsSold.Add(float64(p.Quantity))
			CoinsEarned.Add(float64(p.TotalValue))
		}

	case event.RevealFailed:
		RevealFailures.Inc()
	}

	if err != nil {
		// Metrics never fail the publisher.
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func rarityLabel(it domain.Item) string {
	switch {
	case it.Rarity != "":
		return string(it.Rarity)
	case it.Shiny:
		return RarityShiny
	default:
		return RarityUnrated
	}
}
