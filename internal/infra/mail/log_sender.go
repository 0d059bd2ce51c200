package mail

import (
	"context"
	"log/slog"

	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/service"
	"lostfound/internal/errors"
)

// logSender stands in for the transport in environments without SMTP.
type logSender struct {
	logger *slog.Logger
}

func newLogSender(logger *slog.Logger) *logSender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, msg *service.MailMessage) error {
	if msg == nil || msg.To == "" {
		return errors.New("mail has no recipient")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Alert mail (not sent, SMTP disabled)",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)

	return nil
}
