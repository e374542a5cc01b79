package notification

import (
	"context"
	"encoding/json"
	"fmt"

	outboxDomain "github.com/allisson/signup/internal/outbox/domain"
	participantDomain "github.com/allisson/signup/internal/participant/domain"
	paymentDomain "github.com/allisson/signup/internal/payment/domain"
)

// RegisteredHandler sends the confirmation email of a participant.registered event.
type RegisteredHandler struct {
	sender  Sender
	payment *paymentDomain.QRPayload
}

// NewRegisteredHandler creates a handler. A nil payment omits payment details from the email.
func NewRegisteredHandler(sender Sender, payment *paymentDomain.QRPayload) *RegisteredHandler {
	return &RegisteredHandler{
		sender:  sender,
		payment: payment,
	}
}

// Handle decodes the event payload and sends the confirmation.
func (h *RegisteredHandler) Handle(ctx context.Context, event *outboxDomain.OutboxEvent) error {
	var payload participantDomain.RegisteredEvent
	if err := json.Unmarshal([]byte(event.Payload), &payload); err != nil {
		return fmt.Errorf("%w: %v", outboxDomain.ErrInvalidPayload, err)
	}
	if payload.Email == "" {
		return fmt.Errorf("%w: missing email", outboxDomain.ErrInvalidPayload)
	}

	return h.sender.SendConfirmation(ctx, Confirmation{
		To:             payload.Email,
		FirstName:      payload.FirstName,
		TelegramHandle: payload.TelegramHandle,
		Payment:        h.payment,
	})
}
