package bootstrap

import (
	"log/slog"

	"github.com/osse101/ItemDrop_Go/internal/event"
)

// InitializeEventSystem creates the in-process event bus and registers its subscribers.
func InitializeEventSystem() event.Bus {
	eventBus := event.NewMemoryBus()
	RegisterEventHandlers(eventBus)

	slog.Info(LogMsgEventSystemInitialized)
	return eventBus
}
