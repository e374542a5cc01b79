// Package mocks provides mock implementations of the token use case for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	tokenDomain "github.com/allisson/signup/internal/token/domain"
)

// MockTokenUseCase is a mock implementation of TokenUseCase for testing.
type MockTokenUseCase struct {
	mock.Mock
}

// Generate mocks the Generate method of TokenUseCase.
func (m *MockTokenUseCase) Generate(
	ctx context.Context,
	input *tokenDomain.GenerateInput,
) (*tokenDomain.GenerateOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.GenerateOutput), args.Error(1)
}

// Validate mocks the Validate method of TokenUseCase.
func (m *MockTokenUseCase) Validate(ctx context.Context, token string) (*tokenDomain.ValidateOutput, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.ValidateOutput), args.Error(1)
}

// MockGenerator is a mock implementation of service.Generator for testing.
type MockGenerator struct {
	mock.Mock
}

// Generate mocks the Generate method of Generator.
func (m *MockGenerator) Generate(byteLength int, encoding tokenDomain.Encoding) (string, error) {
	args := m.Called(byteLength, encoding)
	return args.String(0), args.Error(1)
}

// GenerateWithExpiry mocks the GenerateWithExpiry method of Generator.
func (m *MockGenerator) GenerateWithExpiry(byteLength int) (*tokenDomain.TokenWithTimestamp, error) {
	args := m.Called(byteLength)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenDomain.TokenWithTimestamp), args.Error(1)
}
