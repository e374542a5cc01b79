// Package usecase delivers outbox events and keeps the outbox table trimmed.
package usecase

import (
	"context"
	"time"

	"github.com/allisson/signup/internal/outbox/domain"
)

// OutboxEventRepository defines outbox event repository operations.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *domain.OutboxEvent) error
	GetPendingEvents(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	Update(ctx context.Context, event *domain.OutboxEvent) error
	CountProcessedBefore(ctx context.Context, before time.Time) (int64, error)
	DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error)
}

// EventProcessor delivers a single event. A returned error counts as a failed attempt.
type EventProcessor interface {
	Process(ctx context.Context, event *domain.OutboxEvent) error
}

// EventHandler handles the events of one type.
type EventHandler interface {
	Handle(ctx context.Context, event *domain.OutboxEvent) error
}

// EventHandlerFunc adapts a function to EventHandler.
type EventHandlerFunc func(ctx context.Context, event *domain.OutboxEvent) error

// Handle calls f.
func (f EventHandlerFunc) Handle(ctx context.Context, event *domain.OutboxEvent) error {
	return f(ctx, event)
}

// OutboxUseCase defines the outbox worker operations.
type OutboxUseCase interface {
	// Start polls for pending events every interval until ctx is cancelled.
	Start(ctx context.Context) error

	// ProcessEvents delivers one batch of pending events inside a transaction.
	ProcessEvents(ctx context.Context) error

	// DeleteProcessedOlderThan removes processed events older than days.
	// With dryRun it only counts them.
	DeleteProcessedOlderThan(ctx context.Context, days int, dryRun bool) (int64, error)
}
