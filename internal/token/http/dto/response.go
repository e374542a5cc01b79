package dto

import (
	"fmt"
	"time"

	tokenDomain "github.com/allisson/signup/internal/token/domain"
)

// TokenData carries a generated token and, when requested, its timestamps.
type TokenData struct {
	Token     string     `json:"token"`
	IssuedAt  *time.Time `json:"issuedAt,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// TokenInstructions tells the operator how to install the token.
type TokenInstructions struct {
	Usage   string `json:"usage"`
	Example string `json:"example"`
	Header  string `json:"header"`
}

// GenerateTokenResponse is the body returned by POST /api/v1/generate-token.
type GenerateTokenResponse struct {
	Success      bool              `json:"success"`
	Message      string            `json:"message"`
	Data         TokenData         `json:"data"`
	Instructions TokenInstructions `json:"instructions"`
}

// MapGenerateOutputToResponse builds the response for a generated token.
func MapGenerateOutputToResponse(output *tokenDomain.GenerateOutput) GenerateTokenResponse {
	return GenerateTokenResponse{
		Success: true,
		Message: "Token generated successfully",
		Data: TokenData{
			Token:     output.Token,
			IssuedAt:  output.IssuedAt,
			ExpiresAt: output.ExpiresAt,
		},
		Instructions: TokenInstructions{
			Usage:   "Add this token to your .env file as SIMPLE_ACCESS_TOKEN",
			Example: fmt.Sprintf("SIMPLE_ACCESS_TOKEN=%s", output.Token),
			Header:  "Include in requests: Authorization: Bearer your-token",
		},
	}
}

// ValidateTokenResponse is the body returned by POST /api/v1/validate-token.
type ValidateTokenResponse struct {
	Success     bool   `json:"success"`
	IsValid     bool   `json:"isValid"`
	TokenLength int    `json:"tokenLength"`
	Message     string `json:"message"`
}

// MapValidateOutputToResponse builds the response for a format check.
func MapValidateOutputToResponse(output *tokenDomain.ValidateOutput) ValidateTokenResponse {
	message := "Token format is invalid"
	if output.IsValid {
		message = "Token format is valid"
	}
	return ValidateTokenResponse{
		Success:     true,
		IsValid:     output.IsValid,
		TokenLength: output.TokenLength,
		Message:     message,
	}
}
