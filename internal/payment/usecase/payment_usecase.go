package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/allisson/signup/internal/payment/domain"
	"github.com/allisson/signup/internal/payment/service"
)

type paymentUseCase struct {
	details   domain.Details
	reference string
	renderer  service.Renderer
	now       func() time.Time
}

// NewPaymentUseCase creates a PaymentUseCase over fixed bank details.
func NewPaymentUseCase(details domain.Details, reference string, renderer service.Renderer) PaymentUseCase {
	return &paymentUseCase{
		details:   details,
		reference: reference,
		renderer:  renderer,
		now:       time.Now,
	}
}

func (uc *paymentUseCase) Details(_ context.Context) domain.Details {
	return uc.details
}

func (uc *paymentUseCase) QRData(_ context.Context) (*domain.QRPayload, string, error) {
	now := uc.now().UTC()
	payload := &domain.QRPayload{
		Details:   uc.details,
		Reference: uc.reference,
		Timestamp: &now,
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal qr payload: %w", err)
	}
	return payload, string(encoded), nil
}

func (uc *paymentUseCase) PaymentQR(_ context.Context) (*domain.Image, error) {
	encoded, err := json.Marshal(domain.QRPayload{Details: uc.details, Reference: uc.reference})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal qr payload: %w", err)
	}

	content, err := uc.renderer.PNG(string(encoded), domain.DefaultQRSize)
	if err != nil {
		return nil, err
	}
	return &domain.Image{Content: content, ContentType: domain.FormatPNG.ContentType()}, nil
}

func (uc *paymentUseCase) CustomQR(_ context.Context, input *domain.CustomQRInput) (*domain.Image, error) {
	if input.Data == "" {
		return nil, domain.ErrDataRequired
	}

	width := input.Width
	if width == 0 {
		width = domain.DefaultQRSize
	}
	if width < domain.MinQRSize || width > domain.MaxQRSize {
		return nil, domain.ErrInvalidWidth
	}

	format, err := domain.ParseFormat(input.Format)
	if err != nil {
		return nil, err
	}

	var content []byte
	switch format {
	case domain.FormatSVG:
		content, err = uc.renderer.SVG(input.Data, width)
	default:
		content, err = uc.renderer.PNG(input.Data, width)
	}
	if err != nil {
		return nil, err
	}
	return &domain.Image{Content: content, ContentType: format.ContentType()}, nil
}
