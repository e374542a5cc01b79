// Package service provides the token generator and the token format validator.
package service

import (
	tokenDomain "github.com/allisson/signup/internal/token/domain"
)

// Generator produces random tokens from a cryptographically secure source.
type Generator interface {
	// Generate draws byteLength random bytes and renders them in the given encoding.
	// A zero byteLength means the default of 32.
	Generate(byteLength int, encoding tokenDomain.Encoding) (string, error)

	// GenerateWithExpiry returns a hex token stamped with issuance and expiry instants.
	GenerateWithExpiry(byteLength int) (*tokenDomain.TokenWithTimestamp, error)
}

// Validator checks whether a string plausibly is a generated token.
type Validator interface {
	// IsWellFormed reports whether candidate is alphanumeric and at least 16 characters long.
	// It is a format check only and never an authorization decision.
	IsWellFormed(candidate string) bool
}
