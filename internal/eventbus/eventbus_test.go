package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"assetpick/internal/domain"
)

func TestBusDeliversSynchronouslyInOrder(t *testing.T) {
	bus := New()

	var order []string
	bus.Subscribe(domain.EventScanStarted, func(e DomainEvent) {
		order = append(order, "first")
	})
	bus.Subscribe(domain.EventScanStarted, func(e DomainEvent) {
		order = append(order, "second")
	})

	bus.Publish(domain.ScanStartedEvent{Roots: []string{"/photos"}})

	// Publish returned, so both handlers already ran, in subscription order
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestBusRoutesByEventType(t *testing.T) {
	bus := New()

	started := 0
	completed := 0
	bus.Subscribe(domain.EventScanStarted, func(DomainEvent) { started++ })
	bus.Subscribe(domain.EventScanCompleted, func(DomainEvent) { completed++ })

	bus.Publish(domain.ScanStartedEvent{})
	bus.Publish(domain.ScanStartedEvent{})
	bus.Publish(domain.ScanCompletedEvent{})

	assert.Equal(t, 2, started)
	assert.Equal(t, 1, completed)
}

func TestBusUnsubscribe(t *testing.T) {
	bus := New()

	calls := 0
	unsubscribe := bus.Subscribe(domain.EventError, func(DomainEvent) { calls++ })

	bus.Publish(domain.ErrorEvent{Message: "one"})
	unsubscribe()
	bus.Publish(domain.ErrorEvent{Message: "two"})

	assert.Equal(t, 1, calls)
}

func TestBusUnsubscribeRemovesOnlyItsHandler(t *testing.T) {
	bus := New()

	var calls []string
	first := bus.Subscribe(domain.EventError, func(DomainEvent) { calls = append(calls, "a") })
	bus.Subscribe(domain.EventError, func(DomainEvent) { calls = append(calls, "b") })

	first()
	bus.Publish(domain.ErrorEvent{})

	assert.Equal(t, []string{"b"}, calls)
}

func TestNullBus(t *testing.T) {
	bus := &NullBus{}
	unsubscribe := bus.Subscribe(domain.EventError, func(DomainEvent) {
		t.Fatal("NullBus must not deliver")
	})
	bus.Publish(domain.ErrorEvent{})
	unsubscribe()
}
