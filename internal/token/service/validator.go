package service

import (
	"regexp"

	tokenDomain "github.com/allisson/signup/internal/token/domain"
)

var wellFormedRegex = regexp.MustCompile(`^[A-Za-z0-9]+$`)

type validator struct{}

// NewValidator creates a format-only token Validator.
func NewValidator() Validator {
	return &validator{}
}

// IsWellFormed reports whether candidate matches ^[A-Za-z0-9]+$ with at least 16 characters.
func (v *validator) IsWellFormed(candidate string) bool {
	if len(candidate) < tokenDomain.MinWellFormedLength {
		return false
	}
	return wellFormedRegex.MatchString(candidate)
}
