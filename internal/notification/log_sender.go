package notification

import (
	"context"
	"log/slog"
)

// LogSender logs confirmations instead of sending them. It is used when no
// SMTP host is configured.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a new LogSender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// SendConfirmation logs the confirmation.
func (s *LogSender) SendConfirmation(ctx context.Context, confirmation Confirmation) error {
	s.logger.InfoContext(ctx, "confirmation email not sent, smtp disabled",
		slog.String("to", confirmation.To),
		slog.String("subject", ConfirmationSubject),
	)
	return nil
}
