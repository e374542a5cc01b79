package usecase

import (
	"context"
	"time"

	"github.com/allisson/signup/internal/metrics"
	"github.com/allisson/signup/internal/outbox/domain"
)

// eventProcessorWithMetrics records one operation per delivered event.
type eventProcessorWithMetrics struct {
	next    EventProcessor
	metrics metrics.BusinessMetrics
}

// NewEventProcessorWithMetrics wraps an EventProcessor with metrics recording.
// The operation name is the event type.
func NewEventProcessorWithMetrics(processor EventProcessor, m metrics.BusinessMetrics) EventProcessor {
	return &eventProcessorWithMetrics{
		next:    processor,
		metrics: m,
	}
}

// Process records metrics for a single delivery attempt.
func (p *eventProcessorWithMetrics) Process(ctx context.Context, event *domain.OutboxEvent) error {
	start := time.Now()
	err := p.next.Process(ctx, event)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "outbox", event.EventType, status)
	p.metrics.RecordDuration(ctx, "outbox", event.EventType, time.Since(start), status)
	return err
}
