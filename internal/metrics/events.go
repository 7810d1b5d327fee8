package metrics

import (
	"context"

	"github.com/osse101/ItemDrop_Go/internal/event"
	"github.com/osse101/ItemDrop_Go/internal/logger"
)

// Sell actions used as the ItemsSold label
const (
	SellActionSingle = "single"
	SellActionAll    = "all"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.AccountCreated,
		event.CharacterCreated,
		event.ItemDrawn,
		event.ItemSold,
		event.ItemsSoldAll,
		event.TemplateCreated,
		event.TemplateDeleted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.AccountCreated:
		AccountsCreated.Inc()

	case event.CharacterCreated:
		CharactersCreated.Inc()

	case event.ItemDrawn:
		var p event.ItemDrawnPayloadV1
		if p, err = event.DecodePayload[event.ItemDrawnPayloadV1](evt.Payload); err == nil {
			ItemsDrawn.WithLabelValues(p.Rarity).Inc()
			GoldSpent.Add(float64(p.Cost))
		}

	case event.ItemSold:
		var p event.ItemSoldPayloadV1
		if p, err = event.DecodePayload[event.ItemSoldPayloadV1](evt.Payload); err == nil {
			ItemsSold.WithLabelValues(SellActionSingle).Inc()
			GoldEarned.Add(float64(p.Price))
		}

	case event.ItemsSoldAll:
		var p event.ItemsSoldAllPayloadV1
		if p, err = event.DecodePayload[event.ItemsSoldAllPayloadV1](evt.Payload); err == nil {
			ItemsSold.WithLabelValues(SellActionAll).Add(float64(p.ItemsSold))
			GoldEarned.Add(float64(p.SoldAmount))
		}

	case event.TemplateCreated:
		CatalogChanges.WithLabelValues(ActionCreated).Inc()

	case event.TemplateDeleted:
		CatalogChanges.WithLabelValues(ActionDeleted).Inc()
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
