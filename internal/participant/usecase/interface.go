// Package usecase implements participant registration.
package usecase

import (
	"context"

	"github.com/google/uuid"

	outboxDomain "github.com/allisson/signup/internal/outbox/domain"
	"github.com/allisson/signup/internal/participant/domain"
)

// ParticipantRepository defines participant persistence operations.
// Implementations join the caller's transaction through the context.
type ParticipantRepository interface {
	Create(ctx context.Context, participant *domain.Participant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Participant, error)
	Count(ctx context.Context) (int, error)
}

// OutboxEventRepository is the subset of the outbox repository used to enqueue events.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *outboxDomain.OutboxEvent) error
}

// ParticipantUseCase defines participant business operations.
type ParticipantUseCase interface {
	// Register validates the input, rejects a known email with ErrAlreadyRegistered,
	// and stores the participant together with a participant.registered outbox event.
	Register(ctx context.Context, input *domain.RegisterInput) (*domain.Participant, error)

	// Get returns a participant by ID.
	Get(ctx context.Context, id uuid.UUID) (*domain.Participant, error)

	// List returns a page of participants and the total count.
	List(ctx context.Context, offset, limit int) ([]*domain.Participant, int, error)
}
