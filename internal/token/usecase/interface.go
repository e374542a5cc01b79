// Package usecase implements the administrative token operations.
package usecase

import (
	"context"

	tokenDomain "github.com/allisson/signup/internal/token/domain"
)

// TokenUseCase defines the administrative token generation and validation operations.
type TokenUseCase interface {
	// Generate checks the request contract (length 16..128, supported type) before
	// drawing any randomness. A zero length means 32 and an empty type means hex.
	// When IncludeTimestamp is set the token is always hex and carries issuance and expiry.
	Generate(ctx context.Context, input *tokenDomain.GenerateInput) (*tokenDomain.GenerateOutput, error)

	// Validate runs the format check on a candidate token. An empty token is ErrTokenRequired.
	Validate(ctx context.Context, token string) (*tokenDomain.ValidateOutput, error)
}
