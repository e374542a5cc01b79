// Package mocks provides mock implementations for outbox tests.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/signup/internal/outbox/domain"
)

// MockOutboxEventRepository is a mock implementation of OutboxEventRepository.
type MockOutboxEventRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockOutboxEventRepository) Create(ctx context.Context, event *domain.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// GetPendingEvents mocks the GetPendingEvents method.
func (m *MockOutboxEventRepository) GetPendingEvents(
	ctx context.Context,
	limit int,
) ([]*domain.OutboxEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OutboxEvent), args.Error(1)
}

// Update mocks the Update method.
func (m *MockOutboxEventRepository) Update(ctx context.Context, event *domain.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// CountProcessedBefore mocks the CountProcessedBefore method.
func (m *MockOutboxEventRepository) CountProcessedBefore(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// DeleteProcessedBefore mocks the DeleteProcessedBefore method.
func (m *MockOutboxEventRepository) DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventProcessor is a mock implementation of EventProcessor.
type MockEventProcessor struct {
	mock.Mock
}

// Process mocks the Process method.
func (m *MockEventProcessor) Process(ctx context.Context, event *domain.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockOutboxUseCase is a mock implementation of OutboxUseCase.
type MockOutboxUseCase struct {
	mock.Mock
}

// Start mocks the Start method.
func (m *MockOutboxUseCase) Start(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// ProcessEvents mocks the ProcessEvents method.
func (m *MockOutboxUseCase) ProcessEvents(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// DeleteProcessedOlderThan mocks the DeleteProcessedOlderThan method.
func (m *MockOutboxUseCase) DeleteProcessedOlderThan(ctx context.Context, days int, dryRun bool) (int64, error) {
	args := m.Called(ctx, days, dryRun)
	return args.Get(0).(int64), args.Error(1)
}
