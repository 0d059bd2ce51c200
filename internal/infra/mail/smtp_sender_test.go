package mail

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"lostfound/config"
	"lostfound/internal/domain/service"
	"lostfound/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSMTPConfig() *config.SMTPConfig {
	return &config.SMTPConfig{
		Host:        "smtp.example.com",
		Port:        587,
		SenderEmail: "alerts@lostfound.example",
		SenderName:  "Lost and Found",
		ReplyTo:     "support@lostfound.example",
		Encryption:  "starttls",
	}
}

func TestNewSMTPSender_RequiresCoreSettings(t *testing.T) {
	_, err := newSMTPSender(&config.SMTPConfig{Host: "smtp.example.com"}, discardLogger())
	assert.ErrorContains(t, err, "must be configured")

	cfg := testSMTPConfig()
	cfg.Encryption = "rot13"
	_, err = newSMTPSender(cfg, discardLogger())
	assert.ErrorContains(t, err, "unknown smtp encryption")
}

func TestNewMailSender_FallsBackToLogging(t *testing.T) {
	sender, err := NewMailSender(Params{Config: &config.Config{}, Logger: discardLogger()})

	require.NoError(t, err)
	assert.IsType(t, &logSender{}, sender)
	assert.NoError(t, sender.Send(context.Background(), &service.MailMessage{To: "a@example.com"}))
}

func TestSMTPSender_SendBuildsMultipartMessage(t *testing.T) {
	sender, err := newSMTPSender(testSMTPConfig(), discardLogger())
	require.NoError(t, err)

	var captured bytes.Buffer
	sender.send = func(m *gomail.Message) error {
		_, err := m.WriteTo(&captured)

		return err
	}

	err = sender.Send(context.Background(), &service.MailMessage{
		To:      "owner@example.com",
		Subject: "Found near you: Blue umbrella",
		Text:    "plain body",
		HTML:    "<p>html body</p>",
	})
	require.NoError(t, err)

	raw := captured.String()
	assert.Contains(t, raw, "To: owner@example.com")
	assert.Contains(t, raw, "Reply-To: support@lostfound.example")
	assert.Contains(t, raw, "alerts@lostfound.example")
	assert.Contains(t, raw, "text/plain")
	assert.Contains(t, raw, "text/html")
	assert.Contains(t, raw, "plain body")
}

func TestSMTPSender_SendPropagatesTransportError(t *testing.T) {
	sender, err := newSMTPSender(testSMTPConfig(), discardLogger())
	require.NoError(t, err)

	sender.send = func(*gomail.Message) error {
		return errors.New("550 mailbox unavailable")
	}

	err = sender.Send(context.Background(), &service.MailMessage{To: "owner@example.com", Text: "body"})
	assert.ErrorContains(t, err, "550 mailbox unavailable")
}

func TestSMTPSender_SendHonoursContext(t *testing.T) {
	sender, err := newSMTPSender(testSMTPConfig(), discardLogger())
	require.NoError(t, err)

	release := make(chan struct{})
	defer close(release)
	sender.send = func(*gomail.Message) error {
		<-release

		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err = sender.Send(ctx, &service.MailMessage{To: "owner@example.com", Text: "body"})
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestSMTPSender_RejectsEmptyMessages(t *testing.T) {
	sender, err := newSMTPSender(testSMTPConfig(), discardLogger())
	require.NoError(t, err)
	sender.send = func(*gomail.Message) error {
		t.Fatal("transport must not be called")

		return nil
	}

	assert.Error(t, sender.Send(context.Background(), &service.MailMessage{Text: "body"}))
	assert.Error(t, sender.Send(context.Background(), &service.MailMessage{To: "owner@example.com"}))
}

func TestSMTPSender_DefaultTransportDialsServer(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := testSMTPConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = port
	cfg.Encryption = "none"

	sender, err := newSMTPSender(cfg, discardLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = sender.Send(ctx, &service.MailMessage{To: "owner@example.com", Text: "body"})
	assert.ErrorContains(t, err, "failed to send mail")
}
