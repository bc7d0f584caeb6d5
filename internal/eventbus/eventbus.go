package eventbus

import (
	"log"
	"sync"

	"assetpick/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventAssetSelected      = domain.EventAssetSelected
	EventAssetDeselected    = domain.EventAssetDeselected
	EventSelectionChanged   = domain.EventSelectionChanged
	EventAssetHighlighted   = domain.EventAssetHighlighted
	EventAssetUnhighlighted = domain.EventAssetUnhighlighted
	EventPickingFinished    = domain.EventPickingFinished
	EventPickingCancelled   = domain.EventPickingCancelled
	EventAlbumDiscovered    = domain.EventAlbumDiscovered
	EventScanStarted        = domain.EventScanStarted
	EventScanCompleted      = domain.EventScanCompleted
	EventScanRequested      = domain.EventScanRequested
	EventError              = domain.EventError
	EventConfigLoaded       = domain.EventConfigLoaded
	EventConfigSaved        = domain.EventConfigSaved
)

// Re-export domain event types
type AssetSelectedEvent = domain.AssetSelectedEvent
type AssetDeselectedEvent = domain.AssetDeselectedEvent
type SelectionChangedEvent = domain.SelectionChangedEvent
type AssetHighlightedEvent = domain.AssetHighlightedEvent
type AssetUnhighlightedEvent = domain.AssetUnhighlightedEvent
type PickingFinishedEvent = domain.PickingFinishedEvent
type PickingCancelledEvent = domain.PickingCancelledEvent
type AlbumDiscoveredEvent = domain.AlbumDiscoveredEvent
type ScanStartedEvent = domain.ScanStartedEvent
type ScanCompletedEvent = domain.ScanCompletedEvent
type ScanRequestedEvent = domain.ScanRequestedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus.
//
// Delivery is synchronous and in subscription order: Publish returns only
// after every handler for the event has run on the publishing goroutine. The
// picker engine relies on this so that observers always see selection events
// in the order the mutations happened.
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[EventType][]subscription
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish delivers an event to all subscribers before returning
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case EventSelectionChanged, EventAssetHighlighted, EventAssetUnhighlighted:
		// Too frequent to log
	default:
		log.Printf("EventBus: publishing event %s", event.Type())
	}

	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, sub := range subs {
		sub.handler(event)
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, sub := range subs {
			if sub.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (n *NullBus) Publish(event DomainEvent) {}
func (n *NullBus) Subscribe(eventType EventType, handler EventHandler) func() {
	return func() {}
}
