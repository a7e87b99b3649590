package main

import (
	"fmt"

	"github.com/wneessen/go-mail"
)

const (
	smtpHost = "smtp.gmail.com"
	smtpPort = 465
)

// Sender delivers a composed message to a list of recipients.
type Sender interface {
	Send(msg ComposedMessage, recipients []string) error
}

// GmailSender delivers mail through Gmail's implicit-TLS SMTP endpoint
// in a single authenticated session, one envelope for all recipients.
type GmailSender struct {
	address  string
	password string
}

// NewGmailSender creates a sender authenticating as the given address.
func NewGmailSender(address, password string) *GmailSender {
	return &GmailSender{address: address, password: password}
}

// Send submits the message to all recipients in one transmission. Both
// bodies ride in a multipart/alternative part so clients prefer HTML and
// fall back to plain text. There is no retry and no partial delivery:
// any failure aborts the run.
func (s *GmailSender) Send(msg ComposedMessage, recipients []string) error {
	m, err := s.buildMessage(msg, recipients)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(smtpHost,
		mail.WithPort(smtpPort),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.address),
		mail.WithPassword(s.password),
	)
	if err != nil {
		return fmt.Errorf("creating SMTP client: %w", err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("sending mail via %s:%d: %w", smtpHost, smtpPort, err)
	}
	return nil
}

func (s *GmailSender) buildMessage(msg ComposedMessage, recipients []string) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.FromFormat(senderName, s.address); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", s.address, err)
	}
	if err := m.To(recipients...); err != nil {
		return nil, fmt.Errorf("invalid recipient list: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.TextBody)
	m.AddAlternativeString(mail.TypeTextHTML, msg.HTMLBody)
	return m, nil
}
