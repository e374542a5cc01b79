package dto

import (
	"time"

	"github.com/allisson/signup/internal/payment/domain"
)

// PaymentDetailsResponse is the body of GET /api/v1/payment-details.
type PaymentDetailsResponse struct {
	Success bool           `json:"success"`
	Data    domain.Details `json:"data"`
}

// QRDataResponse is the body of GET /api/v1/payment-qr-data.
type QRDataResponse struct {
	Success bool             `json:"success"`
	Data    domain.QRPayload `json:"data"`
	QRData  string           `json:"qrData"`
}

// SecurityFeatures reports which access checks are active.
type SecurityFeatures struct {
	TokenAuth   bool `json:"tokenAuth"`
	IPFiltering bool `json:"ipFiltering"`
}

// HealthFeatures lists the payment features.
type HealthFeatures struct {
	DynamicQR       bool             `json:"dynamicQR"`
	SecurityEnabled SecurityFeatures `json:"securityEnabled"`
}

// HealthResponse is the body of GET /api/v1/payment-health.
type HealthResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Features  HealthFeatures `json:"features"`
}
