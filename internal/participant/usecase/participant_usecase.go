package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/allisson/signup/internal/database"
	apperrors "github.com/allisson/signup/internal/errors"
	outboxDomain "github.com/allisson/signup/internal/outbox/domain"
	"github.com/allisson/signup/internal/participant/domain"
	appValidation "github.com/allisson/signup/internal/validation"
)

type participantUseCase struct {
	txManager       database.TxManager
	participantRepo ParticipantRepository
	outboxRepo      OutboxEventRepository
	now             func() time.Time
}

// NewParticipantUseCase creates a new ParticipantUseCase.
func NewParticipantUseCase(
	txManager database.TxManager,
	participantRepo ParticipantRepository,
	outboxRepo OutboxEventRepository,
) ParticipantUseCase {
	return &participantUseCase{
		txManager:       txManager,
		participantRepo: participantRepo,
		outboxRepo:      outboxRepo,
		now:             time.Now,
	}
}

func normalizeRegisterInput(input *domain.RegisterInput) domain.RegisterInput {
	return domain.RegisterInput{
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		TelegramHandle: strings.TrimSpace(input.TelegramHandle),
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		PhoneNumber:    strings.TrimSpace(input.PhoneNumber),
	}
}

func validateRegisterInput(input *domain.RegisterInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.FirstName, validation.Required, appValidation.NotBlank),
		validation.Field(&input.LastName, validation.Required, appValidation.NotBlank),
		validation.Field(&input.TelegramHandle, validation.Required, appValidation.NotBlank),
		validation.Field(&input.Email, validation.Required, appValidation.NotBlank),
	)
	if err != nil {
		return domain.ErrFieldsRequired
	}

	err = validation.ValidateStruct(input,
		validation.Field(&input.FirstName, validation.Length(1, 100)),
		validation.Field(&input.LastName, validation.Length(1, 100)),
		validation.Field(&input.TelegramHandle, validation.Length(1, 100)),
		validation.Field(&input.Email, appValidation.Email, validation.Length(5, 255)),
		validation.Field(&input.PhoneNumber, appValidation.Phone),
	)
	return appValidation.WrapValidationError(err)
}

// Register stores a new participant and enqueues its confirmation email.
func (uc *participantUseCase) Register(
	ctx context.Context,
	input *domain.RegisterInput,
) (*domain.Participant, error) {
	normalized := normalizeRegisterInput(input)
	if err := validateRegisterInput(&normalized); err != nil {
		return nil, err
	}

	participant := &domain.Participant{
		ID:             uuid.Must(uuid.NewV7()),
		FirstName:      normalized.FirstName,
		LastName:       normalized.LastName,
		TelegramHandle: normalized.TelegramHandle,
		Email:          normalized.Email,
		RegisteredAt:   uc.now().UTC(),
	}
	if normalized.PhoneNumber != "" {
		participant.PhoneNumber = &normalized.PhoneNumber
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		exists, err := uc.participantRepo.ExistsByEmail(ctx, participant.Email)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrAlreadyRegistered
		}

		// Concurrent duplicates are still caught by the unique index.
		if err := uc.participantRepo.Create(ctx, participant); err != nil {
			return err
		}

		payload, err := json.Marshal(domain.RegisteredEvent{
			ParticipantID:  participant.ID,
			FirstName:      participant.FirstName,
			LastName:       participant.LastName,
			TelegramHandle: participant.TelegramHandle,
			Email:          participant.Email,
		})
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal event payload")
		}

		event := &outboxDomain.OutboxEvent{
			ID:        uuid.Must(uuid.NewV7()),
			EventType: domain.EventTypeRegistered,
			Payload:   string(payload),
			Status:    outboxDomain.OutboxEventStatusPending,
		}
		if err := uc.outboxRepo.Create(ctx, event); err != nil {
			return apperrors.Wrap(err, "failed to create outbox event")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return participant, nil
}

// Get returns a participant by ID.
func (uc *participantUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	return uc.participantRepo.GetByID(ctx, id)
}

// List returns a page of participants and the total count.
func (uc *participantUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Participant, int, error) {
	participants, err := uc.participantRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.participantRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return participants, total, nil
}
