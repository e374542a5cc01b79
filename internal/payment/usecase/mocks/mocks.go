// Package mocks provides mock implementations for payment tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/signup/internal/payment/domain"
)

// MockRenderer is a mock implementation of service.Renderer.
type MockRenderer struct {
	mock.Mock
}

// PNG mocks the PNG method.
func (m *MockRenderer) PNG(data string, size int) ([]byte, error) {
	args := m.Called(data, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// SVG mocks the SVG method.
func (m *MockRenderer) SVG(data string, size int) ([]byte, error) {
	args := m.Called(data, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockPaymentUseCase is a mock implementation of PaymentUseCase.
type MockPaymentUseCase struct {
	mock.Mock
}

// Details mocks the Details method.
func (m *MockPaymentUseCase) Details(ctx context.Context) domain.Details {
	args := m.Called(ctx)
	return args.Get(0).(domain.Details)
}

// QRData mocks the QRData method.
func (m *MockPaymentUseCase) QRData(ctx context.Context) (*domain.QRPayload, string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.QRPayload), args.String(1), args.Error(2)
}

// PaymentQR mocks the PaymentQR method.
func (m *MockPaymentUseCase) PaymentQR(ctx context.Context) (*domain.Image, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Image), args.Error(1)
}

// CustomQR mocks the CustomQR method.
func (m *MockPaymentUseCase) CustomQR(ctx context.Context, input *domain.CustomQRInput) (*domain.Image, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Image), args.Error(1)
}
