package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/ItemDrop_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Event types
const (
	AccountCreated   Type = "account.created"
	CharacterCreated Type = "character.created"
	ItemDrawn        Type = "item.drawn"
	ItemSold         Type = "item.sold"
	ItemsSoldAll     Type = "items.sold_all"
	TemplateCreated  Type = "template.created"
	TemplateDeleted  Type = "template.deleted"
)

// Typed event payloads for type safety

// AccountCreatedPayloadV1 is published after a successful signup
type AccountCreatedPayloadV1 struct {
	AccountID int64  `json:"account_id"`
	UserID    string `json:"user_id"`
	Timestamp int64  `json:"timestamp"`
}

// CharacterCreatedPayloadV1 is published after a character is created
type CharacterCreatedPayloadV1 struct {
	AccountID   int64  `json:"account_id"`
	CharacterID int64  `json:"character_id"`
	Nickname    string `json:"nickname"`
	Timestamp   int64  `json:"timestamp"`
}

// ItemDrawnPayloadV1 is published after a random item draw commits
type ItemDrawnPayloadV1 struct {
	CharacterID   int64  `json:"character_id"`
	ItemID        int64  `json:"item_id"`
	TemplateID    int64  `json:"template_id"`
	Rarity        string `json:"rarity"`
	Cost          int    `json:"cost"`
	RemainingGold int    `json:"remaining_gold"`
	Timestamp     int64  `json:"timestamp"`
}

// ItemSoldPayloadV1 is published after a single item sale commits
type ItemSoldPayloadV1 struct {
	CharacterID int64  `json:"character_id"`
	ItemID      int64  `json:"item_id"`
	Rarity      string `json:"rarity"`
	Price       int    `json:"price"`
	Gold        int    `json:"gold"`
	Timestamp   int64  `json:"timestamp"`
}

// ItemsSoldAllPayloadV1 is published after a sell-all commits
type ItemsSoldAllPayloadV1 struct {
	CharacterID int64 `json:"character_id"`
	ItemsSold   int   `json:"items_sold"`
	SoldAmount  int   `json:"sold_amount"`
	Gold        int   `json:"gold"`
	Timestamp   int64 `json:"timestamp"`
}

// TemplatePayloadV1 is published when the catalog changes
type TemplatePayloadV1 struct {
	TemplateID       int64  `json:"template_id"`
	Name             string `json:"name"`
	InstancesRemoved int    `json:"instances_removed,omitempty"`
	Timestamp        int64  `json:"timestamp"`
}

// New wraps payload in an Event of the current schema version
func New(t Type, payload interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
	}
}

// Now is the clock used for payload timestamps
var Now = func() int64 { return time.Now().Unix() }

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus is a Publisher that handlers can subscribe to
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// PublishBestEffort publishes evt on p and logs any failure.
// Events are only published after a commit, so a failure here never undoes the write.
func PublishBestEffort(ctx context.Context, p Publisher, evt Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
