// Package dto holds the request and response bodies of the payment endpoints.
package dto

import "github.com/allisson/signup/internal/payment/domain"

// CustomQRRequest is the body of POST /api/v1/payment-qr-custom.
type CustomQRRequest struct {
	Data   string `json:"data"`
	Width  int    `json:"width"`
	Format string `json:"format"`
}

// ToDomain converts the request into use case input.
func (r *CustomQRRequest) ToDomain() *domain.CustomQRInput {
	return &domain.CustomQRInput{
		Data:   r.Data,
		Width:  r.Width,
		Format: r.Format,
	}
}
