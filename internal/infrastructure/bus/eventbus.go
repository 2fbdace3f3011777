package bus

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"fieldtrack/internal/domain/event"
)

// EventBus defines the contract for event publishing/subscribing
type EventBus interface {
	Publish(ctx context.Context, event event.DomainEvent) error
	PublishBatch(ctx context.Context, events []event.DomainEvent) error
	Subscribe(eventType string, handler EventHandler) error
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles domain events
type EventHandler interface {
	Handle(ctx context.Context, event event.DomainEvent) error
}

// EventHandlerFunc allows functions to implement EventHandler
type EventHandlerFunc func(ctx context.Context, event event.DomainEvent) error

func (f EventHandlerFunc) Handle(ctx context.Context, event event.DomainEvent) error {
	return f(ctx, event)
}

// InMemoryEventBus delivers events synchronously, in subscription order,
// on the publishing goroutine. Every handler runs even if an earlier one
// fails; the failures are joined into the returned error.
type InMemoryEventBus struct {
	handlers map[string][]EventHandler
	mutex    sync.RWMutex
	running  bool
}

func NewInMemoryEventBus() *InMemoryEventBus {
	return &InMemoryEventBus{
		handlers: make(map[string][]EventHandler),
		running:  true,
	}
}

func (b *InMemoryEventBus) Publish(ctx context.Context, event event.DomainEvent) error {
	b.mutex.RLock()
	handlers := b.handlers[event.EventType()]
	running := b.running
	b.mutex.RUnlock()

	if !running {
		return fmt.Errorf("event bus stopped, dropping %s", event.EventType())
	}

	var errs []error

	for _, handler := range handlers {
		if err := handler.Handle(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("handler error for %s: %w", event.EventType(), err))
		}
	}

	return errors.Join(errs...)
}

// PublishBatch publishes events in order and keeps going past failures
func (b *InMemoryEventBus) PublishBatch(ctx context.Context, events []event.DomainEvent) error {
	var errs []error
	for _, evt := range events {
		if err := b.Publish(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (b *InMemoryEventBus) Subscribe(eventType string, handler EventHandler) error {
	if handler == nil {
		return fmt.Errorf("nil handler for %s", eventType)
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	return nil
}

func (b *InMemoryEventBus) Start(ctx context.Context) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.running = true
	return nil
}

func (b *InMemoryEventBus) Stop() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.running = false
	return nil
}
