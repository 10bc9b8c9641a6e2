package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PackSim_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got Event

	bus.Subscribe(PackOpened, func(_ context.Context, e Event) error {
		got = e
		return nil
	})

	evt := NewPackOpenedEvent(5, 4, 1, 100, 900)
	require.NoError(t, bus.Publish(context.Background(), evt))

	assert.Equal(t, PackOpened, got.Type)
	assert.Equal(t, EventSchemaVersion, got.Version)
	payload, ok := got.Payload.(domain.PackOpenedPayload)
	require.True(t, ok)
	assert.Equal(t, 4, payload.Revealed)
	assert.Equal(t, 900, payload.CoinsLeft)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: ItemSold}))
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0
	handler := func(context.Context, Event) error {
		count++
		return nil
	}

	bus.Subscribe(ItemSold, handler)
	bus.Subscribe(ItemSold, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Type: ItemSold}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishErrorRunsRemainingHandlers(t *testing.T) {
	bus := NewMemoryBus()
	ran := false

	handlerErr := errors.New("handler error")
	bus.Subscribe(ItemSold, func(context.Context, Event) error { return handlerErr })
	bus.Subscribe(ItemSold, func(context.Context, Event) error {
		ran = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Type: ItemSold})
	require.Error(t, err)
	assert.ErrorIs(t, err, handlerErr)
	assert.Contains(t, err.Error(), "handler 0")
	assert.True(t, ran)
}

func TestSubscribeAll(t *testing.T) {
	bus := NewMemoryBus()
	seen := map[Type]int{}
	SubscribeAll(bus, func(_ context.Context, e Event) error {
		seen[e.Type]++
		return nil
	})

	for _, typ := range AllTypes {
		require.NoError(t, bus.Publish(context.Background(), Event{Type: typ}))
	}
	assert.Len(t, seen, len(AllTypes))
}

func TestNewItemRevealedEvent(t *testing.T) {
	item := domain.Item{ID: "1", Name: "Flameling", Quantity: 2}

	assert.Equal(t, ItemRevealed, NewItemRevealedEvent(item, false).Type)

	dup := NewItemRevealedEvent(item, true)
	assert.Equal(t, ItemDuplicated, dup.Type)
	payload := dup.Payload.(domain.ItemRevealedPayload)
	assert.True(t, payload.Duplicated)
	assert.Equal(t, 2, payload.Item.Quantity)
}

func TestNewItemSoldEvent(t *testing.T) {
	item := domain.Item{ID: "abc", Name: "Pikachu", Shiny: true, CombatPower: 500}
	evt := NewItemSoldEvent(item, 1, 100)

	payload := evt.Payload.(domain.ItemSoldPayload)
	assert.Equal(t, "abc", payload.ItemID)
	assert.Equal(t, 100, payload.TotalValue)
	assert.True(t, payload.WasRare)
}

func TestNewRevealFailedEvent(t *testing.T) {
	evt := NewRevealFailedEvent(42, domain.ErrSourceUnavailable)
	payload := evt.Payload.(domain.RevealFailedPayload)
	assert.Equal(t, 42, payload.CreatureID)
	assert.Equal(t, domain.ErrMsgSourceUnavailable, payload.Reason)
}

func TestDecodePayload(t *testing.T) {
	direct, err := DecodePayload[domain.ItemSoldPayload](domain.ItemSoldPayload{ItemName: "X"})
	require.NoError(t, err)
	assert.Equal(t, "X", direct.ItemName)

	fromMap, err := DecodePayload[domain.ItemSoldPayload](map[string]interface{}{"item_name": "Y", "total_value": 7})
	require.NoError(t, err)
	assert.Equal(t, "Y", fromMap.ItemName)
	assert.Equal(t, 7, fromMap.TotalValue)
}

func TestGetMetadataValue(t *testing.T) {
	e := Event{Metadata: map[string]interface{}{"request_id": "r1"}}
	assert.Equal(t, "r1", e.GetMetadataValue("request_id"))
	assert.Nil(t, Event{}.GetMetadataValue("request_id"))
}
