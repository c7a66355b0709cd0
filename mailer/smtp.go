package mailer

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

type SMTPMailer struct {
	Host     string
	Port     string
	From     string
	Password string

	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(host, port, from, password string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, From: from, Password: password, send: smtp.SendMail}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.From == "" {
		return fmt.Errorf("smtp sender is not configured")
	}

	auth := smtp.PlainAuth("", m.From, m.Password, m.Host)
	log.Printf("[MAIL] Sending %q to %v via SMTP", msg.Subject, msg.To)

	if err := m.send(m.Host+":"+m.Port, auth, m.From, msg.To, buildMIME(m.From, msg)); err != nil {
		log.Printf("[MAIL] Error sending email: %v", err)
		return err
	}
	return nil
}

func buildMIME(from string, msg Message) []byte {
	var b strings.Builder
	b.WriteString("MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n")
	fmt.Fprintf(&b, "From: E-Learning IT <%s>\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ","))
	fmt.Fprintf(&b, "Subject: %s\r\n\r\n", msg.Subject)
	b.WriteString(msg.HTML)
	return []byte(b.String())
}
