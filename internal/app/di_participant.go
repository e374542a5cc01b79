package app

import (
	"fmt"

	"github.com/allisson/signup/internal/database"
	outboxRepository "github.com/allisson/signup/internal/outbox/repository"
	outboxUsecase "github.com/allisson/signup/internal/outbox/usecase"
	participantRepository "github.com/allisson/signup/internal/participant/repository"
	participantUsecase "github.com/allisson/signup/internal/participant/usecase"
)

// ParticipantRepository returns the participant repository for the configured driver.
func (c *Container) ParticipantRepository() (participantUsecase.ParticipantRepository, error) {
	c.participantRepoInit.Do(func() {
		var err error
		c.participantRepo, err = c.initParticipantRepository()
		c.storeInitError("participantRepo", err)
	})
	if err := c.initError("participantRepo"); err != nil {
		return nil, err
	}
	return c.participantRepo, nil
}

// OutboxRepository returns the outbox event repository for the configured driver.
func (c *Container) OutboxRepository() (outboxUsecase.OutboxEventRepository, error) {
	c.outboxRepoInit.Do(func() {
		var err error
		c.outboxRepo, err = c.initOutboxRepository()
		c.storeInitError("outboxRepo", err)
	})
	if err := c.initError("outboxRepo"); err != nil {
		return nil, err
	}
	return c.outboxRepo, nil
}

// ParticipantUseCase returns the registration use case, instrumented with business metrics.
func (c *Container) ParticipantUseCase() (participantUsecase.ParticipantUseCase, error) {
	c.participantUseCaseInit.Do(func() {
		var err error
		c.participantUseCase, err = c.initParticipantUseCase()
		c.storeInitError("participantUseCase", err)
	})
	if err := c.initError("participantUseCase"); err != nil {
		return nil, err
	}
	return c.participantUseCase, nil
}

func (c *Container) initParticipantRepository() (participantUsecase.ParticipantRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for participant repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverMySQL:
		return participantRepository.NewMySQLParticipantRepository(db), nil
	case database.DriverPostgres:
		return participantRepository.NewPostgreSQLParticipantRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initOutboxRepository() (outboxUsecase.OutboxEventRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for outbox repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverMySQL:
		return outboxRepository.NewMySQLOutboxEventRepository(db), nil
	case database.DriverPostgres:
		return outboxRepository.NewPostgreSQLOutboxEventRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initParticipantUseCase() (participantUsecase.ParticipantUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for participant use case: %w", err)
	}

	participantRepo, err := c.ParticipantRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get participant repository for participant use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for participant use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}

	useCase := participantUsecase.NewParticipantUseCase(txManager, participantRepo, outboxRepo)
	return participantUsecase.NewParticipantUseCaseWithMetrics(useCase, businessMetrics), nil
}
