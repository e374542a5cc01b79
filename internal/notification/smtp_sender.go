package notification

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// implicitTLSPort is the SMTPS port; any other port uses opportunistic STARTTLS.
const implicitTLSPort = 465

// SMTPConfig configures SMTPSender.
type SMTPConfig struct {
	Host          string
	Port          int
	Username      string
	Password      string
	From          string
	TLSSkipVerify bool
	Timeout       time.Duration
}

// SMTPSender sends confirmation emails over SMTP.
type SMTPSender struct {
	config SMTPConfig
}

// NewSMTPSender creates a new SMTPSender.
func NewSMTPSender(config SMTPConfig) *SMTPSender {
	if config.Timeout == 0 {
		config.Timeout = 15 * time.Second
	}
	return &SMTPSender{config: config}
}

// clientOptions builds the go-mail client options for the configured server.
func (s *SMTPSender) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.config.Port),
		mail.WithTimeout(s.config.Timeout),
		mail.WithTLSConfig(&tls.Config{
			ServerName:         s.config.Host,
			InsecureSkipVerify: s.config.TLSSkipVerify, //nolint:gosec
			MinVersion:         tls.VersionTLS12,
		}),
	}

	if s.config.Port == implicitTLSPort {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	if s.config.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.config.Username),
			mail.WithPassword(s.config.Password),
		)
	}
	return opts
}

// buildMessage renders the confirmation into a mail message.
func (s *SMTPSender) buildMessage(confirmation Confirmation) (*mail.Msg, error) {
	body, err := RenderConfirmation(confirmation)
	if err != nil {
		return nil, fmt.Errorf("failed to render confirmation: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.From(s.config.From); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(confirmation.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(ConfirmationSubject)
	msg.SetBodyString(mail.TypeTextHTML, body)
	return msg, nil
}

// SendConfirmation sends one confirmation email.
func (s *SMTPSender) SendConfirmation(ctx context.Context, confirmation Confirmation) error {
	msg, err := s.buildMessage(confirmation)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.config.Host, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}
