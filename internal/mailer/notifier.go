package mailer

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mexicoindia/membership-backend/internal/config"
	"github.com/mexicoindia/membership-backend/internal/models"
)

// Notifier renders and dispatches the confirmation emails. Delivery is
// best-effort: a caller that has already stored the record never sees a
// transport failure, it only shows up in the logs.
type Notifier struct {
	sender     Sender
	adminEmail string
	from       string
	fromName   string
	timeout    time.Duration
}

func NewNotifier(sender Sender, cfg *config.Config) *Notifier {
	secs, err := strconv.Atoi(cfg.MailTimeout)
	if err != nil || secs <= 0 {
		secs = 8
	}
	return &Notifier{
		sender:     sender,
		adminEmail: cfg.AdminEmail,
		from:       cfg.MailFrom,
		fromName:   cfg.MailFromName,
		timeout:    time.Duration(secs) * time.Second,
	}
}

// MembershipAccepted dispatches the admin notice and the applicant
// acknowledgment in the background and returns immediately.
func (n *Notifier) MembershipAccepted(m models.Membership) {
	adminSubj, adminHTML, err := renderAdminMembership(m)
	if err != nil {
		log.Error().Err(err).Str("reference", m.Reference).Msg("admin email render failed")
	} else {
		go n.deliver("membership-admin", Message{
			FromName: "MIBC Admin",
			From:     n.from,
			To:       n.adminEmail,
			Subject:  adminSubj,
			HTML:     adminHTML,
		})
	}

	userSubj, userHTML, err := renderUserAck(m)
	if err != nil {
		log.Error().Err(err).Str("reference", m.Reference).Msg("user email render failed")
		return
	}
	go n.deliver("membership-user", Message{
		FromName: n.fromName,
		From:     n.from,
		To:       m.Email,
		Subject:  userSubj,
		HTML:     userHTML,
	})
}

// ContactReceived dispatches the admin contact notice in the background.
func (n *Notifier) ContactReceived(msg ContactMessage) {
	subj, html, err := renderAdminContact(msg)
	if err != nil {
		log.Error().Err(err).Msg("contact email render failed")
		return
	}
	go n.deliver("contact-admin", Message{
		FromName: "MIBC Contact",
		From:     n.from,
		To:       n.adminEmail,
		Subject:  subj,
		HTML:     html,
	})
}

// deliver runs detached; a panic or error here must never take the
// process down or reach the HTTP caller.
func (n *Notifier) deliver(kind string, msg Message) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("email", kind).Msg("email dispatch panicked")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	if err := n.sender.Send(ctx, msg); err != nil {
		log.Error().Err(err).Str("email", kind).Str("to", msg.To).Msg("email delivery failed")
		return
	}
	log.Info().Str("email", kind).Str("to", msg.To).Msg("email delivered")
}
