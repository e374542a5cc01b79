package notification

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paymentDomain "github.com/allisson/signup/internal/payment/domain"
)

func TestRenderConfirmation(t *testing.T) {
	t.Run("without payment details", func(t *testing.T) {
		body, err := RenderConfirmation(Confirmation{
			To:             "ada@example.com",
			FirstName:      "Ada",
			TelegramHandle: "@ada_cooks",
		})
		require.NoError(t, err)
		assert.Contains(t, body, "Welcome to the Master Cooking Class, Ada!")
		assert.Contains(t, body, "<strong>@ada_cooks</strong>")
		assert.Contains(t, body, "The Cooking Masterclass Team")
		assert.NotContains(t, body, "Payment details")
	})

	t.Run("with payment details", func(t *testing.T) {
		body, err := RenderConfirmation(Confirmation{
			FirstName: "Ada",
			Payment: &paymentDomain.QRPayload{
				Details:   paymentDomain.Details{BankName: "NATWEST", SortCode: "52-21-18"},
				Reference: "Tasty Bowls Registration",
			},
		})
		require.NoError(t, err)
		assert.Contains(t, body, "Payment details")
		assert.Contains(t, body, "52-21-18")
		assert.Contains(t, body, "Tasty Bowls Registration")
	})

	t.Run("escapes html", func(t *testing.T) {
		body, err := RenderConfirmation(Confirmation{FirstName: "<script>alert(1)</script>"})
		require.NoError(t, err)
		assert.NotContains(t, body, "<script>")
		assert.Contains(t, body, "&lt;script&gt;")
	})
}

func TestSMTPSender_buildMessage(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		sender := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 587, From: "class@example.com"})

		msg, err := sender.buildMessage(Confirmation{To: "ada@example.com", FirstName: "Ada"})
		require.NoError(t, err)

		var buf bytes.Buffer
		_, err = msg.WriteTo(&buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "ada@example.com")
		assert.Contains(t, buf.String(), "text/html")
	})

	t.Run("invalid from", func(t *testing.T) {
		sender := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 587, From: "not an address"})

		_, err := sender.buildMessage(Confirmation{To: "ada@example.com"})
		assert.ErrorContains(t, err, "invalid from address")
	})

	t.Run("invalid recipient", func(t *testing.T) {
		sender := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 587, From: "class@example.com"})

		_, err := sender.buildMessage(Confirmation{To: "nobody"})
		assert.ErrorContains(t, err, "invalid recipient address")
	})
}

func TestSMTPSender_clientOptions(t *testing.T) {
	t.Run("starttls without auth", func(t *testing.T) {
		sender := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 587})
		assert.Len(t, sender.clientOptions(), 4)
	})

	t.Run("implicit tls with auth", func(t *testing.T) {
		sender := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 465, Username: "u", Password: "p"})
		assert.Len(t, sender.clientOptions(), 7)
	})
}

func TestSMTPSender_SendConfirmation_CancelledContext(t *testing.T) {
	sender := NewSMTPSender(SMTPConfig{Host: "127.0.0.1", Port: 1, From: "class@example.com"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sender.SendConfirmation(ctx, Confirmation{To: "ada@example.com", FirstName: "Ada"})
	assert.ErrorContains(t, err, "failed to send confirmation email")
}

func TestLogSender_SendConfirmation(t *testing.T) {
	var buf bytes.Buffer
	sender := NewLogSender(slog.New(slog.NewTextHandler(&buf, nil)))

	err := sender.SendConfirmation(context.Background(), Confirmation{To: "ada@example.com"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "ada@example.com")

	discard := NewLogSender(slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.NoError(t, discard.SendConfirmation(context.Background(), Confirmation{}))
}
