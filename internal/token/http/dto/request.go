// Package dto provides data transfer objects for the token endpoints.
package dto

import (
	tokenDomain "github.com/allisson/signup/internal/token/domain"
)

// GenerateTokenRequest is the body of POST /api/v1/generate-token.
// Omitted fields fall back to length 32, type hex and no timestamp; an explicit
// zero length or empty type is rejected like any other invalid value.
type GenerateTokenRequest struct {
	Length           *int    `json:"length,omitempty"`
	Type             *string `json:"type,omitempty"`
	IncludeTimestamp bool    `json:"includeTimestamp"`
}

// ToDomain maps the request to the use case input.
func (r *GenerateTokenRequest) ToDomain() *tokenDomain.GenerateInput {
	return &tokenDomain.GenerateInput{
		Length:           r.Length,
		Type:             r.Type,
		IncludeTimestamp: r.IncludeTimestamp,
	}
}

// ValidateTokenRequest is the body of POST /api/v1/validate-token.
type ValidateTokenRequest struct {
	Token string `json:"token"`
}
