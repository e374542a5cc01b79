package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/allisson/signup/internal/database"
	"github.com/allisson/signup/internal/outbox/domain"
)

// Config holds outbox worker configuration.
type Config struct {
	Interval   time.Duration
	BatchSize  int
	MaxRetries int
}

type outboxUseCase struct {
	config         Config
	txManager      database.TxManager
	outboxRepo     OutboxEventRepository
	eventProcessor EventProcessor
	logger         *slog.Logger
	now            func() time.Time
}

// NewOutboxUseCase creates a new OutboxUseCase.
func NewOutboxUseCase(
	config Config,
	txManager database.TxManager,
	outboxRepo OutboxEventRepository,
	eventProcessor EventProcessor,
	logger *slog.Logger,
) OutboxUseCase {
	return &outboxUseCase{
		config:         config,
		txManager:      txManager,
		outboxRepo:     outboxRepo,
		eventProcessor: eventProcessor,
		logger:         logger,
		now:            time.Now,
	}
}

// Start runs ProcessEvents on every tick until ctx is cancelled.
func (uc *outboxUseCase) Start(ctx context.Context) error {
	uc.logger.Info("starting outbox worker",
		slog.Duration("interval", uc.config.Interval),
		slog.Int("batch_size", uc.config.BatchSize),
		slog.Int("max_retries", uc.config.MaxRetries),
	)

	ticker := time.NewTicker(uc.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			uc.logger.Info("stopping outbox worker")
			return ctx.Err()
		case <-ticker.C:
			if err := uc.ProcessEvents(ctx); err != nil {
				uc.logger.Error("failed to process outbox events", slog.Any("error", err))
			}
		}
	}
}

// ProcessEvents delivers one batch. A failed delivery is recorded on the event and
// does not abort the batch; only repository errors roll the transaction back.
func (uc *outboxUseCase) ProcessEvents(ctx context.Context) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		events, err := uc.outboxRepo.GetPendingEvents(ctx, uc.config.BatchSize)
		if err != nil {
			return err
		}

		if len(events) == 0 {
			return nil
		}

		uc.logger.Debug("processing outbox events", slog.Int("count", len(events)))

		for _, event := range events {
			if err := uc.eventProcessor.Process(ctx, event); err != nil {
				event.MarkAttemptFailed(err, uc.config.MaxRetries)
				uc.logger.Error("failed to deliver outbox event",
					slog.String("event_id", event.ID.String()),
					slog.String("event_type", event.EventType),
					slog.Int("retries", event.Retries),
					slog.String("status", string(event.Status)),
					slog.Any("error", err),
				)
			} else {
				event.MarkProcessed(uc.now().UTC())
			}

			if err := uc.outboxRepo.Update(ctx, event); err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteProcessedOlderThan removes processed events delivered more than days ago.
func (uc *outboxUseCase) DeleteProcessedOlderThan(ctx context.Context, days int, dryRun bool) (int64, error) {
	if days < 0 {
		return 0, fmt.Errorf("days must be a positive number, got: %d", days)
	}

	before := uc.now().UTC().AddDate(0, 0, -days)

	if dryRun {
		return uc.outboxRepo.CountProcessedBefore(ctx, before)
	}
	return uc.outboxRepo.DeleteProcessedBefore(ctx, before)
}
