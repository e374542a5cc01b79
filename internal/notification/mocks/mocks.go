// Package mocks provides mock implementations for notification tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/signup/internal/notification"
)

// MockSender is a mock implementation of notification.Sender.
type MockSender struct {
	mock.Mock
}

// SendConfirmation mocks the SendConfirmation method.
func (m *MockSender) SendConfirmation(ctx context.Context, confirmation notification.Confirmation) error {
	args := m.Called(ctx, confirmation)
	return args.Error(0)
}
