package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/ItemDrop_Go/internal/event"
)

func TestInitializeEventSystem_HandlersAcceptEvents(t *testing.T) {
	bus := InitializeEventSystem()

	err := bus.Publish(context.Background(), event.New(event.TemplateDeleted, event.TemplatePayloadV1{
		TemplateID:       4,
		Name:             "Rusty Dagger",
		InstancesRemoved: 2,
		Timestamp:        1700000000,
	}))
	assert.NoError(t, err)

	err = bus.Publish(context.Background(), event.New(event.AccountCreated, event.AccountCreatedPayloadV1{
		AccountID: 1,
		UserID:    "alice",
		Timestamp: 1700000000,
	}))
	assert.NoError(t, err)
}
