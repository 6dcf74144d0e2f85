package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/mexicoindia/membership-backend/internal/mailer"
	"github.com/mexicoindia/membership-backend/internal/models"
)

var errStoreDown = errors.New("store unavailable")

type fakeStore struct {
	inserted  []models.Membership
	insertErr error
	listErr   error
}

func (f *fakeStore) Insert(_ context.Context, m *models.Membership) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	m.CreatedAt = time.Now().UTC()
	f.inserted = append(f.inserted, *m)
	return nil
}

func (f *fakeStore) ListNewestFirst(_ context.Context) ([]models.Membership, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	// newest first, same as the mongo sort
	out := make([]models.Membership, len(f.inserted))
	for i, m := range f.inserted {
		out[len(f.inserted)-1-i] = m
	}
	return out, nil
}

// fakeNotifier is synchronous so tests can assert on calls directly.
type fakeNotifier struct {
	memberships []models.Membership
	contacts    []mailer.ContactMessage
}

func (f *fakeNotifier) MembershipAccepted(m models.Membership) {
	f.memberships = append(f.memberships, m)
}

func (f *fakeNotifier) ContactReceived(msg mailer.ContactMessage) {
	f.contacts = append(f.contacts, msg)
}
