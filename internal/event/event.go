package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/PackSim_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Collection event types
const (
	PackOpened     Type = domain.EventTypePackOpened
	ItemRevealed   Type = domain.EventTypeItemRevealed
	ItemDuplicated Type = domain.EventTypeItemDuplicated
	ItemSold       Type = domain.EventTypeItemSold
	RevealFailed   Type = domain.EventTypeRevealFailed
)

// AllTypes lists every event type the collection publishes.
var AllTypes = []Type{PackOpened, ItemRevealed, ItemDuplicated, ItemSold, RevealFailed}

// Type-safe event constructors

// NewPackOpenedEvent creates a pack opened event
func NewPackOpenedEvent(requested, revealed, rareCount, coinsSpent, coinsLeft int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PackOpened,
		Payload: domain.PackOpenedPayload{
			Requested:  requested,
			Revealed:   revealed,
			RareCount:  rareCount,
			CoinsSpent: coinsSpent,
			CoinsLeft:  coinsLeft,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewItemRevealedEvent creates an item.revealed event, or item.duplicated when
// the reveal merged into an existing entry.
func NewItemRevealedEvent(item domain.Item, duplicated bool) Event {
	t := ItemRevealed
	if duplicated {
		t = ItemDuplicated
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: domain.ItemRevealedPayload{
			Item:       item,
			Duplicated: duplicated,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewItemSoldEvent creates an item sold event
func NewItemSoldEvent(item domain.Item, quantity, totalValue int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemSold,
		Payload: domain.ItemSoldPayload{
			ItemID:     item.ID,
			ItemName:   item.Name,
			Quantity:   quantity,
			TotalValue: totalValue,
			WasRare:    item.IsRare(),
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewRevealFailedEvent creates a reveal failed event
func NewRevealFailedEvent(creatureID int, reason error) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RevealFailed,
		Payload: domain.RevealFailedPayload{
			CreatureID: creatureID,
			Reason:     reason.Error(),
			Timestamp:  time.Now().Unix(),
		},
	}
}

// Handler reacts to one event. A returned error is reported to the publisher
// but does not stop later handlers.
type Handler func(ctx context.Context, event Event) error

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus delivers published events to the handlers subscribed to their type.
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus runs handlers synchronously on the publishing goroutine, in
// subscription order.
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[Type][]Handler)}
}

func (b *MemoryBus) Publish(ctx context.Context, evt Event) error {
	b.mu.RLock()
	handlers := b.handlers[evt.Type]
	b.mu.RUnlock()

	var errs []error
	for i, h := range handlers {
		if err := h(ctx, evt); err != nil {
			errs = append(errs, fmt.Errorf("handler %d: %w", i, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%s %s: %w", ErrMsgHandlersFailed, evt.Type, errors.Join(errs...))
}

func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll registers handler for every type in AllTypes.
func SubscribeAll(bus Bus, handler Handler) {
	for _, t := range AllTypes {
		bus.Subscribe(t, handler)
	}
}
