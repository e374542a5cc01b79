package usecase

import (
	"context"

	tokenDomain "github.com/allisson/signup/internal/token/domain"
	tokenService "github.com/allisson/signup/internal/token/service"
)

type tokenUseCase struct {
	generator tokenService.Generator
	validator tokenService.Validator
}

// NewTokenUseCase creates a TokenUseCase backed by the given generator and validator.
func NewTokenUseCase(generator tokenService.Generator, validator tokenService.Validator) TokenUseCase {
	return &tokenUseCase{
		generator: generator,
		validator: validator,
	}
}

// Generate validates the request and produces a token.
func (t *tokenUseCase) Generate(
	ctx context.Context,
	input *tokenDomain.GenerateInput,
) (*tokenDomain.GenerateOutput, error) {
	length := tokenDomain.DefaultByteLength
	if input.Length != nil {
		length = *input.Length
	}
	if length < tokenDomain.MinRequestLength || length > tokenDomain.MaxRequestLength {
		return nil, tokenDomain.ErrLengthOutOfRange
	}

	encoding := tokenDomain.EncodingHex
	if input.Type != nil {
		var err error
		if encoding, err = tokenDomain.ParseEncoding(*input.Type); err != nil {
			return nil, err
		}
	}

	if input.IncludeTimestamp {
		token, err := t.generator.GenerateWithExpiry(length)
		if err != nil {
			return nil, err
		}
		return &tokenDomain.GenerateOutput{
			Token:     token.Value,
			Encoding:  token.Encoding,
			IssuedAt:  &token.IssuedAt,
			ExpiresAt: &token.ExpiresAt,
		}, nil
	}

	value, err := t.generator.Generate(length, encoding)
	if err != nil {
		return nil, err
	}

	return &tokenDomain.GenerateOutput{
		Token:    value,
		Encoding: encoding,
	}, nil
}

// Validate reports whether the token is well formed.
func (t *tokenUseCase) Validate(ctx context.Context, token string) (*tokenDomain.ValidateOutput, error) {
	if token == "" {
		return nil, tokenDomain.ErrTokenRequired
	}

	return &tokenDomain.ValidateOutput{
		IsValid:     t.validator.IsWellFormed(token),
		TokenLength: len(token),
	}, nil
}
