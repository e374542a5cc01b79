package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/allisson/signup/internal/config"
	tokenDomain "github.com/allisson/signup/internal/token/domain"
	tokenUsecase "github.com/allisson/signup/internal/token/usecase"
)

// accessTokenLine matches an existing SIMPLE_ACCESS_TOKEN assignment, with or without export.
var accessTokenLine = regexp.MustCompile(`(?m)^[ \t]*(?:export[ \t]+)?SIMPLE_ACCESS_TOKEN[ \t]*=.*$`)

// ResolveEnvFile returns path when set, else the nearest .env walking up from
// the working directory, else .env in the working directory.
func ResolveEnvFile(path string) string {
	if path != "" {
		return path
	}
	if found := config.FindDotEnv(); found != "" {
		return found
	}
	return ".env"
}

// RunInitToken adds a freshly generated SIMPLE_ACCESS_TOKEN to the env file,
// creating the file when it does not exist. An existing token is left untouched.
func RunInitToken(
	ctx context.Context,
	tokenUseCase tokenUsecase.TokenUseCase,
	writer io.Writer,
	envFile string,
	now func() time.Time,
) error {
	values, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read %s: %w", envFile, err)
	}
	if _, ok := values[accessTokenKey]; ok {
		return fmt.Errorf("%s already set in %s, use rotate-token to replace it", accessTokenKey, envFile)
	}

	token, err := generateAccessToken(ctx, tokenUseCase)
	if err != nil {
		return err
	}

	content, err := readFileIfExists(envFile)
	if err != nil {
		return err
	}
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += fmt.Sprintf("# Security token (generated: %s)\n%s=%s\n",
		now().UTC().Format(time.RFC3339), accessTokenKey, token)

	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", envFile, err)
	}

	_, _ = fmt.Fprintf(writer, "%s added to %s\n", accessTokenKey, envFile)
	printNextSteps(writer, token)
	return nil
}

// RunRotateToken replaces the SIMPLE_ACCESS_TOKEN of an existing env file,
// keeping every other line as is.
func RunRotateToken(
	ctx context.Context,
	tokenUseCase tokenUsecase.TokenUseCase,
	writer io.Writer,
	envFile string,
) error {
	values, err := godotenv.Read(envFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s not found, run init-token first", envFile)
		}
		return fmt.Errorf("failed to read %s: %w", envFile, err)
	}
	if _, ok := values[accessTokenKey]; !ok {
		return fmt.Errorf("%s not found in %s, run init-token first", accessTokenKey, envFile)
	}

	token, err := generateAccessToken(ctx, tokenUseCase)
	if err != nil {
		return err
	}

	content, err := readFileIfExists(envFile)
	if err != nil {
		return err
	}
	replacement := accessTokenKey + "=" + token
	updated := accessTokenLine.ReplaceAllLiteralString(content, replacement)

	info, err := os.Stat(envFile)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", envFile, err)
	}
	if err := os.WriteFile(envFile, []byte(updated), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", envFile, err)
	}

	_, _ = fmt.Fprintf(writer, "%s rotated in %s, the old token is no longer valid once the server restarts\n",
		accessTokenKey, envFile)
	printNextSteps(writer, token)
	return nil
}

// generateAccessToken draws a default token: 32 random bytes, hex encoded.
func generateAccessToken(ctx context.Context, tokenUseCase tokenUsecase.TokenUseCase) (string, error) {
	output, err := tokenUseCase.Generate(ctx, &tokenDomain.GenerateInput{})
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return output.Token, nil
}

func readFileIfExists(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(content), nil
}

func printNextSteps(writer io.Writer, token string) {
	_, _ = fmt.Fprintln(writer, "Next steps:")
	_, _ = fmt.Fprintln(writer, "1. Restart the server to load the new token")
	_, _ = fmt.Fprintf(writer, "2. Send it on guarded routes: Authorization: Bearer %s\n", token)
}
