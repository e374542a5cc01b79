package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	tokenDomain "github.com/allisson/signup/internal/token/domain"
	tokenUsecase "github.com/allisson/signup/internal/token/usecase"
)

// accessTokenKey is the environment variable holding the shared bearer secret.
const accessTokenKey = "SIMPLE_ACCESS_TOKEN"

type generateTokenResult struct {
	Token     string     `json:"token"`
	Type      string     `json:"type"`
	Length    int        `json:"length"`
	IssuedAt  *time.Time `json:"issuedAt,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// RunGenerateToken generates a token and prints it. envLine prints only the
// SIMPLE_ACCESS_TOKEN=<token> line, ready to paste into a .env file.
func RunGenerateToken(
	ctx context.Context,
	tokenUseCase tokenUsecase.TokenUseCase,
	writer io.Writer,
	input *tokenDomain.GenerateInput,
	envLine bool,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	output, err := tokenUseCase.Generate(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	if envLine {
		_, err := fmt.Fprintf(writer, "%s=%s\n", accessTokenKey, output.Token)
		return err
	}

	if format == FormatJSON {
		return writeJSON(writer, generateTokenResult{
			Token:     output.Token,
			Type:      string(output.Encoding),
			Length:    len(output.Token),
			IssuedAt:  output.IssuedAt,
			ExpiresAt: output.ExpiresAt,
		})
	}

	_, _ = fmt.Fprintf(writer, "Token: %s\n", output.Token)
	_, _ = fmt.Fprintf(writer, "Length: %d characters\n", len(output.Token))
	_, _ = fmt.Fprintf(writer, "Type: %s\n", output.Encoding)
	if output.IssuedAt != nil && output.ExpiresAt != nil {
		_, _ = fmt.Fprintf(writer, "Generated: %s\n", output.IssuedAt.Format(time.RFC3339))
		_, _ = fmt.Fprintf(writer, "Expires: %s\n", output.ExpiresAt.Format(time.RFC3339))
	}
	_, _ = fmt.Fprintf(writer, "\nAdd to your .env file: %s=%s\n", accessTokenKey, output.Token)
	_, _ = fmt.Fprintf(writer, "Include in requests: Authorization: Bearer %s\n", output.Token)

	return nil
}
