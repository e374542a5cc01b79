package usecase

import (
	"context"
	"time"

	"github.com/allisson/signup/internal/metrics"
	"github.com/allisson/signup/internal/payment/domain"
)

// paymentUseCaseWithMetrics records QR rendering metrics. Details lookups are not recorded.
type paymentUseCaseWithMetrics struct {
	next    PaymentUseCase
	metrics metrics.BusinessMetrics
}

// NewPaymentUseCaseWithMetrics wraps a PaymentUseCase with metrics recording.
func NewPaymentUseCaseWithMetrics(useCase PaymentUseCase, m metrics.BusinessMetrics) PaymentUseCase {
	return &paymentUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *paymentUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	metrics.Observe(ctx, p.metrics, "payment", operation, start, err)
}

func (p *paymentUseCaseWithMetrics) Details(ctx context.Context) domain.Details {
	return p.next.Details(ctx)
}

func (p *paymentUseCaseWithMetrics) QRData(ctx context.Context) (*domain.QRPayload, string, error) {
	return p.next.QRData(ctx)
}

func (p *paymentUseCaseWithMetrics) PaymentQR(ctx context.Context) (*domain.Image, error) {
	start := time.Now()
	image, err := p.next.PaymentQR(ctx)
	p.record(ctx, "payment_qr", start, err)
	return image, err
}

func (p *paymentUseCaseWithMetrics) CustomQR(
	ctx context.Context,
	input *domain.CustomQRInput,
) (*domain.Image, error) {
	start := time.Now()
	image, err := p.next.CustomQR(ctx, input)
	p.record(ctx, "payment_qr_custom", start, err)
	return image, err
}
