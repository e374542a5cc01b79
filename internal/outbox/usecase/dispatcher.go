package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/allisson/signup/internal/outbox/domain"
)

// Dispatcher routes events to the handler registered for their type.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]EventHandler
	logger   *slog.Logger
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string]EventHandler),
		logger:   logger,
	}
}

// Register binds a handler to an event type, replacing any previous one.
func (d *Dispatcher) Register(eventType string, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = handler
}

// Process implements EventProcessor.
func (d *Dispatcher) Process(ctx context.Context, event *domain.OutboxEvent) error {
	d.mu.RLock()
	handler, ok := d.handlers[event.EventType]
	d.mu.RUnlock()

	if !ok {
		if d.logger != nil {
			d.logger.Warn("no handler for event type", slog.String("event_type", event.EventType))
		}
		return fmt.Errorf("%w: %s", domain.ErrUnknownEventType, event.EventType)
	}

	return handler.Handle(ctx, event)
}
