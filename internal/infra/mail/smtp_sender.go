// Package mail implements service.MailSender on top of an SMTP server.
package mail

import (
	"context"
	"crypto/tls"
	"log/slog"
	"strings"

	"lostfound/config"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/service"
	"lostfound/internal/errors"

	"go.uber.org/fx"
	"gopkg.in/gomail.v2"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailSender returns the SMTP sender when smtp.host is set, otherwise a sender that only logs.
func NewMailSender(params Params) (service.MailSender, error) {
	if !params.Config.SMTP.Enabled() {
		params.Logger.Warn("SMTP is not configured; proximity alerts will only be logged")

		return newLogSender(params.Logger), nil
	}

	return newSMTPSender(params.Config.SMTP, params.Logger)
}

type smtpSender struct {
	from    string
	replyTo string
	logger  *slog.Logger
	send    func(m *gomail.Message) error
}

func newSMTPSender(cfg *config.SMTPConfig, logger *slog.Logger) (*smtpSender, error) {
	if cfg.Host == "" || cfg.Port == 0 || cfg.SenderEmail == "" {
		return nil, errors.New("smtp host, port and senderEmail must be configured")
	}

	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)

	switch strings.ToLower(cfg.Encryption) {
	case "ssl":
		dialer.SSL = true
		dialer.TLSConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}
	case "tls", "starttls":
		dialer.TLSConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}
	case "", "none":
	default:
		return nil, errors.Errorf("unknown smtp encryption %q", cfg.Encryption)
	}

	from := cfg.SenderEmail
	if cfg.SenderName != "" {
		from = gomail.NewMessage().FormatAddress(cfg.SenderEmail, cfg.SenderName)
	}

	return &smtpSender{
		from:    from,
		replyTo: cfg.ReplyTo,
		logger:  logger,
		send: func(m *gomail.Message) error {
			return dialer.DialAndSend(m)
		},
	}, nil
}

// Send builds a multipart message and dials the server. It returns early when ctx ends;
// the dial itself cannot be interrupted and finishes in the background.
func (s *smtpSender) Send(ctx context.Context, msg *service.MailMessage) error {
	m, err := s.buildMessage(msg)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- s.send(m)
	}()

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	select {
	case <-ctx.Done():
		logger.Warn("Alert mail cancelled", slog.String("to", msg.To), slog.Any("error", ctx.Err()))

		return errors.Wrap(ctx.Err(), "mail send cancelled")
	case err := <-done:
		if err != nil {
			return errors.Wrap(err, "failed to send mail")
		}
	}

	logger.Debug("Alert mail sent", slog.String("to", msg.To), slog.String("subject", msg.Subject))

	return nil
}

func (s *smtpSender) buildMessage(msg *service.MailMessage) (*gomail.Message, error) {
	if msg == nil || strings.TrimSpace(msg.To) == "" {
		return nil, errors.New("mail has no recipient")
	}
	if msg.Text == "" && msg.HTML == "" {
		return nil, errors.New("mail has no body")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)

	replyTo := msg.ReplyTo
	if replyTo == "" {
		replyTo = s.replyTo
	}
	if replyTo != "" {
		m.SetHeader("Reply-To", replyTo)
	}

	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	case msg.HTML != "":
		m.SetBody("text/html", msg.HTML)
	default:
		m.SetBody("text/plain", msg.Text)
	}

	return m, nil
}
