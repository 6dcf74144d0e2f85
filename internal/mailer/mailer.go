package mailer

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mexicoindia/membership-backend/internal/config"
)

// Message is one outbound email, provider-agnostic.
type Message struct {
	FromName string
	From     string
	To       string
	Subject  string
	HTML     string
}

// Sender delivers a single message through a concrete provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ContactMessage carries a contact-form entry to the admin notification.
// It is never persisted.
type ContactMessage struct {
	Name    string
	Phone   string
	Email   string
	Subject string
	Message string
}

// NewSender picks the transport configured by MAIL_PROVIDER.
func NewSender(cfg *config.Config) (Sender, error) {
	switch cfg.MailProvider {
	case "smtp":
		port, err := strconv.Atoi(cfg.SMTPPort)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", cfg.SMTPPort, err)
		}
		return NewSMTPSender(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPassword), nil
	case "resend":
		return NewResendSender(cfg.ResendAPIKey), nil
	case "sendgrid":
		return NewSendgridSender(cfg.SendgridAPIKey), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.MailProvider)
	}
}
