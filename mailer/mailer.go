// Package mailer delivers HTML email through SMTP or the SendGrid REST API.
package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/pattanan23/elearnnig-it/config"
)

type Message struct {
	To      []string
	Subject string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New picks the provider named by cfg.MailProvider.
func New(cfg *config.Config) (Mailer, error) {
	switch strings.ToLower(cfg.MailProvider) {
	case "", "smtp":
		return NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailSender, cfg.EmailPassword), nil
	case "sendgrid":
		return NewSendGridMailer(cfg.SendGridURL, cfg.SendGridAPIKey, cfg.EmailSender), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.MailProvider)
	}
}
