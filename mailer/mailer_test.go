package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"testing"
	"time"

	"github.com/pattanan23/elearnnig-it/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetCodeEmail(t *testing.T) {
	msg := ResetCodeEmail("a@example.com", "04213", 10*time.Minute)
	assert.Equal(t, []string{"a@example.com"}, msg.To)
	assert.Contains(t, msg.HTML, "04213")
	assert.Contains(t, msg.HTML, "10 minutes")
}

func TestNewPicksProvider(t *testing.T) {
	m, err := New(&config.Config{MailProvider: "smtp"})
	require.NoError(t, err)
	assert.IsType(t, &SMTPMailer{}, m)

	m, err = New(&config.Config{MailProvider: "SendGrid"})
	require.NoError(t, err)
	assert.IsType(t, &SendGridMailer{}, m)

	_, err = New(&config.Config{MailProvider: "pigeon"})
	assert.Error(t, err)
}

func TestSMTPMailerBuildsMessage(t *testing.T) {
	m := NewSMTPMailer("smtp.example.com", "587", "noreply@example.com", "pw")
	var gotAddr string
	var gotBody []byte
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotBody = msg
		return nil
	}

	require.NoError(t, m.Send(context.Background(), ResetCodeEmail("a@example.com", "12345", 10*time.Minute)))
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Contains(t, string(gotBody), "Subject: Your password reset code")
	assert.Contains(t, string(gotBody), "12345")

	m.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("535 auth failed") }
	assert.Error(t, m.Send(context.Background(), Message{To: []string{"a@example.com"}}))
}

func TestSendGridMailer(t *testing.T) {
	var payload sendGridPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key-123", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	m := NewSendGridMailer(srv.URL, "key-123", "noreply@example.com")
	require.NoError(t, m.Send(context.Background(), ResetCodeEmail("a@example.com", "12345", 10*time.Minute)))

	require.Len(t, payload.Personalizations, 1)
	assert.Equal(t, "a@example.com", payload.Personalizations[0].To[0].Email)
	assert.Equal(t, "noreply@example.com", payload.From.Email)
	assert.Equal(t, "text/html", payload.Content[0].Type)
}

func TestSendGridMailerRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	m := NewSendGridMailer(srv.URL, "bad", "noreply@example.com")
	assert.Error(t, m.Send(context.Background(), Message{To: []string{"a@example.com"}}))
}
