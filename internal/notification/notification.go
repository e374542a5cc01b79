// Package notification sends participant confirmation emails.
package notification

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"

	paymentDomain "github.com/allisson/signup/internal/payment/domain"
)

// ConfirmationSubject is the subject line of confirmation emails.
const ConfirmationSubject = "You're Registered – Cooking Masterclass"

//go:embed templates/confirmation.html
var confirmationTemplateText string

var confirmationTemplate = template.Must(template.New("confirmation").Parse(confirmationTemplateText))

// Confirmation is the data of one confirmation email.
type Confirmation struct {
	To             string
	FirstName      string
	TelegramHandle string
	Payment        *paymentDomain.QRPayload
}

// Sender delivers confirmation emails.
type Sender interface {
	SendConfirmation(ctx context.Context, confirmation Confirmation) error
}

// RenderConfirmation renders the HTML body of a confirmation email.
func RenderConfirmation(confirmation Confirmation) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTemplate.Execute(&buf, confirmation); err != nil {
		return "", err
	}
	return buf.String(), nil
}
