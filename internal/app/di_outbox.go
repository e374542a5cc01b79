package app

import (
	"fmt"
	"log/slog"

	"github.com/allisson/signup/internal/notification"
	outboxUsecase "github.com/allisson/signup/internal/outbox/usecase"
	participantDomain "github.com/allisson/signup/internal/participant/domain"
	paymentDomain "github.com/allisson/signup/internal/payment/domain"
)

// Sender returns the SMTP sender when EMAIL_HOST is set and the log sender otherwise.
func (c *Container) Sender() notification.Sender {
	c.senderInit.Do(func() {
		if !c.config.EmailEnabled() {
			c.Logger().Warn("EMAIL_HOST is not set, confirmation emails are logged instead of sent")
			c.sender = notification.NewLogSender(c.Logger())
			return
		}

		from := c.config.EmailFrom
		if from == "" {
			from = c.config.EmailUser
		}
		c.sender = notification.NewSMTPSender(notification.SMTPConfig{
			Host:          c.config.EmailHost,
			Port:          c.config.EmailPort,
			Username:      c.config.EmailUser,
			Password:      c.config.EmailPass,
			From:          from,
			TLSSkipVerify: c.config.EmailTLSSkipVerify,
		})
		c.Logger().Info("smtp sender configured",
			slog.String("host", c.config.EmailHost),
			slog.Int("port", c.config.EmailPort))
	})
	return c.sender
}

// EventProcessor returns the dispatcher routing outbox events to their handlers.
func (c *Container) EventProcessor() (outboxUsecase.EventProcessor, error) {
	c.eventProcessorInit.Do(func() {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.storeInitError("eventProcessor", err)
			return
		}

		payment := &paymentDomain.QRPayload{
			Details:   c.PaymentDetails(),
			Reference: c.config.PaymentReference,
		}

		dispatcher := outboxUsecase.NewDispatcher(c.Logger())
		dispatcher.Register(
			participantDomain.EventTypeRegistered,
			notification.NewRegisteredHandler(c.Sender(), payment),
		)
		c.eventProcessor = outboxUsecase.NewEventProcessorWithMetrics(dispatcher, businessMetrics)
	})
	if err := c.initError("eventProcessor"); err != nil {
		return nil, err
	}
	return c.eventProcessor, nil
}

// OutboxUseCase returns the outbox worker delivering queued events.
func (c *Container) OutboxUseCase() (outboxUsecase.OutboxUseCase, error) {
	c.outboxUseCaseInit.Do(func() {
		var err error
		c.outboxUseCase, err = c.initOutboxUseCase()
		c.storeInitError("outboxUseCase", err)
	})
	if err := c.initError("outboxUseCase"); err != nil {
		return nil, err
	}
	return c.outboxUseCase, nil
}

func (c *Container) initOutboxUseCase() (outboxUsecase.OutboxUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for outbox use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for outbox use case: %w", err)
	}

	processor, err := c.EventProcessor()
	if err != nil {
		return nil, fmt.Errorf("failed to get event processor for outbox use case: %w", err)
	}

	return outboxUsecase.NewOutboxUseCase(outboxUsecase.Config{
		Interval:   c.config.WorkerInterval,
		BatchSize:  c.config.WorkerBatchSize,
		MaxRetries: c.config.WorkerMaxRetries,
	}, txManager, outboxRepo, processor, c.Logger()), nil
}
