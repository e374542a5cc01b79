package usecase

import (
	"context"
	"time"

	"github.com/allisson/signup/internal/metrics"
	tokenDomain "github.com/allisson/signup/internal/token/domain"
)

const metricsDomain = "token"

type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase so every call is counted and timed.
// A validation that answers isValid=false still counts as a success.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{next: useCase, metrics: m}
}

func (t *tokenUseCaseWithMetrics) Generate(
	ctx context.Context,
	input *tokenDomain.GenerateInput,
) (output *tokenDomain.GenerateOutput, err error) {
	defer func(start time.Time) {
		metrics.Observe(ctx, t.metrics, metricsDomain, "token_generate", start, err)
	}(time.Now())

	return t.next.Generate(ctx, input)
}

func (t *tokenUseCaseWithMetrics) Validate(
	ctx context.Context,
	token string,
) (output *tokenDomain.ValidateOutput, err error) {
	defer func(start time.Time) {
		metrics.Observe(ctx, t.metrics, metricsDomain, "token_validate", start, err)
	}(time.Now())

	return t.next.Validate(ctx, token)
}
