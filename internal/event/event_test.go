package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(ItemDrawn, func(ctx context.Context, event Event) error {
		assert.Equal(t, ItemDrawn, event.Type)
		payload, ok := event.Payload.(ItemDrawnPayloadV1)
		require.True(t, ok)
		assert.Equal(t, int64(9), payload.ItemID)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), New(ItemDrawn, ItemDrawnPayloadV1{ItemID: 9}))
	require.NoError(t, err)
	assert.True(t, handled, "Handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(ItemSold, handler)
	bus.Subscribe(ItemSold, handler)

	require.NoError(t, bus.Publish(context.Background(), New(ItemSold, nil)))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), New(ItemsSoldAll, nil)))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()

	bus.Subscribe(ItemSold, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), New(ItemSold, nil))
	assert.Error(t, err)
}

func TestPublishBestEffort(t *testing.T) {
	t.Run("nil publisher is a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() {
			PublishBestEffort(context.Background(), nil, New(ItemSold, nil))
		})
	})

	t.Run("handler error is swallowed", func(t *testing.T) {
		bus := NewMemoryBus()
		called := false
		bus.Subscribe(ItemSold, func(ctx context.Context, event Event) error {
			called = true
			return errors.New("boom")
		})
		PublishBestEffort(context.Background(), bus, New(ItemSold, nil))
		assert.True(t, called)
	})
}

func TestDecodePayload(t *testing.T) {
	t.Run("typed payload", func(t *testing.T) {
		p, err := DecodePayload[ItemSoldPayloadV1](ItemSoldPayloadV1{Price: 50})
		require.NoError(t, err)
		assert.Equal(t, 50, p.Price)
	})

	t.Run("map payload", func(t *testing.T) {
		p, err := DecodePayload[ItemSoldPayloadV1](map[string]interface{}{"price": 70, "rarity": "rare"})
		require.NoError(t, err)
		assert.Equal(t, 70, p.Price)
		assert.Equal(t, "rare", p.Rarity)
	})

	t.Run("pointer payload", func(t *testing.T) {
		p, err := DecodePayload[ItemsSoldAllPayloadV1](&ItemsSoldAllPayloadV1{ItemsSold: 3, SoldAmount: 120})
		require.NoError(t, err)
		assert.Equal(t, 3, p.ItemsSold)
		assert.Equal(t, 120, p.SoldAmount)
	})

	t.Run("mismatched payload", func(t *testing.T) {
		_, err := DecodePayload[ItemSoldPayloadV1](map[string]interface{}{"price": "fifty"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode payload")
	})
}
