package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/ItemDrop_Go/internal/event"
	"github.com/osse101/ItemDrop_Go/internal/logger"
	"github.com/osse101/ItemDrop_Go/internal/metrics"
)

// auditedEvents are written to the log at info level
var auditedEvents = []event.Type{
	event.AccountCreated,
	event.TemplateCreated,
	event.TemplateDeleted,
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (for event-based metrics)
// - Audit logger (account and catalog changes)
func RegisterEventHandlers(bus event.Bus) {
	metricsCollector := metrics.NewEventMetricsCollector()
	metricsCollector.Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	for _, t := range auditedEvents {
		bus.Subscribe(t, auditEvent)
	}
}

func auditEvent(ctx context.Context, evt event.Event) error {
	logger.FromContext(ctx).Info(LogMsgEventAudit,
		"event_type", evt.Type,
		"version", evt.Version,
		"payload", evt.Payload)
	return nil
}
