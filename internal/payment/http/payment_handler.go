// Package http provides the HTTP handlers for payment details and QR codes.
package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/signup/internal/errors"
	"github.com/allisson/signup/internal/httputil"
	"github.com/allisson/signup/internal/payment/domain"
	"github.com/allisson/signup/internal/payment/http/dto"
	paymentUseCase "github.com/allisson/signup/internal/payment/usecase"
)

const cacheControl = "public, max-age=3600"

// SecurityStatus reports which access guard checks are active.
type SecurityStatus interface {
	TokenRequired() bool
	IPFilteringEnabled() bool
}

// PaymentHandler handles the payment endpoints.
type PaymentHandler struct {
	paymentUseCase paymentUseCase.PaymentUseCase
	security       SecurityStatus
	logger         *slog.Logger
	now            func() time.Time
}

// NewPaymentHandler creates a new payment handler with required dependencies.
func NewPaymentHandler(
	paymentUseCase paymentUseCase.PaymentUseCase,
	security SecurityStatus,
	logger *slog.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
		security:       security,
		logger:         logger,
		now:            time.Now,
	}
}

// DetailsHandler returns the bank details.
// GET /api/v1/payment-details - guarded.
func (h *PaymentHandler) DetailsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PaymentDetailsResponse{
		Success: true,
		Data:    h.paymentUseCase.Details(c.Request.Context()),
	})
}

// QRHandler returns the payment QR code as PNG.
// GET /api/v1/payment-qr
func (h *PaymentHandler) QRHandler(c *gin.Context) {
	image, err := h.paymentUseCase.PaymentQR(c.Request.Context())
	if err != nil {
		httputil.HandleInternalErrorGin(c, "Failed to generate QR code", err, h.logger)
		return
	}

	writeImage(c, image)
}

// QRDataHandler returns the payment payload and its JSON encoding.
// GET /api/v1/payment-qr-data
func (h *PaymentHandler) QRDataHandler(c *gin.Context) {
	payload, encoded, err := h.paymentUseCase.QRData(c.Request.Context())
	if err != nil {
		httputil.HandleInternalErrorGin(c, "Failed to get QR data", err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.QRDataResponse{
		Success: true,
		Data:    *payload,
		QRData:  encoded,
	})
}

// CustomQRHandler renders caller-supplied data.
// POST /api/v1/payment-qr-custom
func (h *PaymentHandler) CustomQRHandler(c *gin.Context) {
	var req dto.CustomQRRequest

	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httputil.HandleBadRequestGin(c, "Invalid request body", err, h.logger)
		return
	}

	image, err := h.paymentUseCase.CustomQR(c.Request.Context(), req.ToDomain())
	if err != nil {
		if apperrors.Is(err, apperrors.ErrInvalidInput) {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
		httputil.HandleInternalErrorGin(c, "Failed to generate custom QR code", err, h.logger)
		return
	}

	writeImage(c, image)
}

// HealthHandler reports the payment feature status.
// GET /api/v1/payment-health
func (h *PaymentHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Success:   true,
		Message:   "Payment routes are healthy",
		Timestamp: h.now().UTC(),
		Features: dto.HealthFeatures{
			DynamicQR: true,
			SecurityEnabled: dto.SecurityFeatures{
				TokenAuth:   h.security.TokenRequired(),
				IPFiltering: h.security.IPFilteringEnabled(),
			},
		},
	})
}

func writeImage(c *gin.Context, image *domain.Image) {
	c.Header("Cache-Control", cacheControl)
	c.Header("Content-Length", strconv.Itoa(len(image.Content)))
	c.Data(http.StatusOK, image.ContentType, image.Content)
}
