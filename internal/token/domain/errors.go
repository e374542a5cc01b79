package domain

import (
	"github.com/allisson/signup/internal/errors"
)

var (
	// ErrInvalidEncoding indicates an unrecognized encoding name.
	ErrInvalidEncoding = errors.Wrap(errors.ErrInvalidInput, "Token type must be 'hex', 'base64url', or 'alphanumeric'")

	// ErrInvalidLength indicates a negative byte length was passed to the generator.
	ErrInvalidLength = errors.Wrap(errors.ErrInvalidInput, "token length must be positive")

	// ErrLengthOutOfRange indicates a requested length outside 16..128.
	ErrLengthOutOfRange = errors.Wrap(errors.ErrInvalidInput, "Token length must be between 16 and 128 characters")

	// ErrTokenRequired indicates a validation request without a token.
	ErrTokenRequired = errors.Wrap(errors.ErrInvalidInput, "Token is required")
)
