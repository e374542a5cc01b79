package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/signup/internal/metrics"
	"github.com/allisson/signup/internal/participant/domain"
)

// participantUseCaseWithMetrics decorates ParticipantUseCase with metrics instrumentation.
type participantUseCaseWithMetrics struct {
	next    ParticipantUseCase
	metrics metrics.BusinessMetrics
}

// NewParticipantUseCaseWithMetrics wraps a ParticipantUseCase with metrics recording.
func NewParticipantUseCaseWithMetrics(useCase ParticipantUseCase, m metrics.BusinessMetrics) ParticipantUseCase {
	return &participantUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *participantUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	metrics.Observe(ctx, p.metrics, "participant", operation, start, err)
}

// Register records metrics for registrations.
func (p *participantUseCaseWithMetrics) Register(
	ctx context.Context,
	input *domain.RegisterInput,
) (*domain.Participant, error) {
	start := time.Now()
	participant, err := p.next.Register(ctx, input)
	p.record(ctx, "participant_register", start, err)
	return participant, err
}

// Get records metrics for participant lookups.
func (p *participantUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	start := time.Now()
	participant, err := p.next.Get(ctx, id)
	p.record(ctx, "participant_get", start, err)
	return participant, err
}

// List records metrics for participant listings.
func (p *participantUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Participant, int, error) {
	start := time.Now()
	participants, total, err := p.next.List(ctx, offset, limit)
	p.record(ctx, "participant_list", start, err)
	return participants, total, err
}
