package service

import "context"

// MailMessage is one outgoing e-mail. HTML and ReplyTo are optional.
type MailMessage struct {
	To      string
	Subject string
	Text    string
	HTML    string
	ReplyTo string
}

// MailSender hands messages to a mail transport.
type MailSender interface {
	// Send delivers msg or returns the transport error. It must honour ctx cancellation.
	Send(ctx context.Context, msg *MailMessage) error
}
