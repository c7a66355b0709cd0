package mailer

import (
	"context"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
)

// SendGridMailer posts messages to the SendGrid v3 mail/send endpoint.
type SendGridMailer struct {
	URL    string
	APIKey string
	From   string
	client *resty.Client
}

func NewSendGridMailer(url, apiKey, from string) *SendGridMailer {
	return &SendGridMailer{URL: url, APIKey: apiKey, From: from, client: resty.New()}
}

type sendGridAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendGridPersonalization struct {
	To []sendGridAddress `json:"to"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendGridPayload struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridAddress           `json:"from"`
	Subject          string                    `json:"subject"`
	Content          []sendGridContent         `json:"content"`
}

func (m *SendGridMailer) Send(ctx context.Context, msg Message) error {
	if m.APIKey == "" {
		return fmt.Errorf("sendgrid api key is not configured")
	}

	to := make([]sendGridAddress, 0, len(msg.To))
	for _, addr := range msg.To {
		to = append(to, sendGridAddress{Email: addr})
	}
	payload := sendGridPayload{
		Personalizations: []sendGridPersonalization{{To: to}},
		From:             sendGridAddress{Email: m.From, Name: "E-Learning IT"},
		Subject:          msg.Subject,
		Content:          []sendGridContent{{Type: "text/html", Value: msg.HTML}},
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+m.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(m.URL)
	if err != nil {
		log.Printf("[MAIL] SendGrid request failed: %v", err)
		return err
	}
	if resp.StatusCode() >= 300 {
		log.Printf("[MAIL] SendGrid rejected message: %d %s", resp.StatusCode(), resp.String())
		return fmt.Errorf("sendgrid responded %d", resp.StatusCode())
	}
	log.Printf("[MAIL] Sent %q to %v via SendGrid", msg.Subject, msg.To)
	return nil
}
