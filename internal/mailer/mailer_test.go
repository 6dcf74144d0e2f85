package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mexicoindia/membership-backend/internal/config"
)

func TestNewSenderSelectsProvider(t *testing.T) {
	cfg := &config.Config{SMTPHost: "smtp.example.com", SMTPPort: "587"}

	cfg.MailProvider = "smtp"
	s, err := NewSender(cfg)
	require.NoError(t, err)
	assert.IsType(t, &SMTPSender{}, s)

	cfg.MailProvider = "resend"
	s, err = NewSender(cfg)
	require.NoError(t, err)
	assert.IsType(t, &ResendSender{}, s)

	cfg.MailProvider = "sendgrid"
	s, err = NewSender(cfg)
	require.NoError(t, err)
	assert.IsType(t, &SendgridSender{}, s)
}

func TestNewSenderUnknownProvider(t *testing.T) {
	_, err := NewSender(&config.Config{MailProvider: "pigeon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pigeon")
}

func TestNewSenderBadSMTPPort(t *testing.T) {
	_, err := NewSender(&config.Config{MailProvider: "smtp", SMTPPort: "not-a-port"})
	require.Error(t, err)
}
