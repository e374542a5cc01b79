// Package mocks provides mock implementations for participant tests.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	outboxDomain "github.com/allisson/signup/internal/outbox/domain"
	"github.com/allisson/signup/internal/participant/domain"
)

// MockParticipantRepository is a mock implementation of ParticipantRepository.
type MockParticipantRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockParticipantRepository) Create(ctx context.Context, participant *domain.Participant) error {
	args := m.Called(ctx, participant)
	return args.Error(0)
}

// GetByID mocks the GetByID method.
func (m *MockParticipantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}

// ExistsByEmail mocks the ExistsByEmail method.
func (m *MockParticipantRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// List mocks the List method.
func (m *MockParticipantRepository) List(ctx context.Context, offset, limit int) ([]*domain.Participant, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Participant), args.Error(1)
}

// Count mocks the Count method.
func (m *MockParticipantRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockOutboxEventRepository is a mock implementation of OutboxEventRepository.
type MockOutboxEventRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockOutboxEventRepository) Create(ctx context.Context, event *outboxDomain.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockTxManager runs the function inline without a database.
type MockTxManager struct {
	mock.Mock
}

// WithTx mocks the WithTx method and invokes fn when no error is configured.
func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

// MockParticipantUseCase is a mock implementation of ParticipantUseCase.
type MockParticipantUseCase struct {
	mock.Mock
}

// Register mocks the Register method.
func (m *MockParticipantUseCase) Register(
	ctx context.Context,
	input *domain.RegisterInput,
) (*domain.Participant, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}

// Get mocks the Get method.
func (m *MockParticipantUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}

// List mocks the List method.
func (m *MockParticipantUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Participant, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Participant), args.Int(1), args.Error(2)
}
