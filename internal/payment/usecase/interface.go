// Package usecase serves payment details and payment QR codes.
package usecase

import (
	"context"

	"github.com/allisson/signup/internal/payment/domain"
)

// PaymentUseCase defines payment operations.
type PaymentUseCase interface {
	// Details returns the configured bank details.
	Details(ctx context.Context) domain.Details

	// QRData returns the timestamped payment payload and its JSON encoding.
	QRData(ctx context.Context) (*domain.QRPayload, string, error)

	// PaymentQR renders the payment payload as a PNG of the default size.
	PaymentQR(ctx context.Context) (*domain.Image, error)

	// CustomQR renders caller-supplied data. Data is required, width defaults
	// to 300 and must be within 64..2048, format is png or svg.
	CustomQR(ctx context.Context, input *domain.CustomQRInput) (*domain.Image, error)
}
