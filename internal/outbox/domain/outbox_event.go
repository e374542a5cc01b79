// Package domain defines the transactional outbox event.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/signup/internal/errors"
)

// OutboxEventStatus represents the delivery state of an outbox event.
type OutboxEventStatus string

const (
	OutboxEventStatusPending   OutboxEventStatus = "pending"
	OutboxEventStatusProcessed OutboxEventStatus = "processed"
	OutboxEventStatusFailed    OutboxEventStatus = "failed"
)

// OutboxEvent is a side effect recorded in the same transaction as the change that caused it
// and delivered later by the outbox worker.
type OutboxEvent struct {
	ID          uuid.UUID
	EventType   string
	Payload     string
	Status      OutboxEventStatus
	Retries     int
	LastError   *string
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MarkProcessed flags the event as delivered at the given instant.
func (e *OutboxEvent) MarkProcessed(at time.Time) {
	e.Status = OutboxEventStatusProcessed
	e.ProcessedAt = &at
	e.LastError = nil
}

// MarkAttemptFailed records a failed delivery. The event becomes failed once
// its retries reach maxRetries and otherwise stays pending.
func (e *OutboxEvent) MarkAttemptFailed(err error, maxRetries int) {
	e.Retries++
	msg := err.Error()
	e.LastError = &msg
	if e.Retries >= maxRetries {
		e.Status = OutboxEventStatusFailed
	}
}

var (
	// ErrUnknownEventType indicates no handler is registered for an event type.
	ErrUnknownEventType = errors.New("unknown event type")

	// ErrInvalidPayload indicates an event payload could not be decoded.
	ErrInvalidPayload = errors.New("invalid event payload")
)
