package ports

import (
	"context"

	"github.com/careerpilot/advisor-api/internal/core/domain"
)

// Mailer relays a contact-form submission to the configured recipient.
type Mailer interface {
	SendContactMessage(ctx context.Context, msg domain.ContactMessage) error
}

// ContactDeduper suppresses repeated identical contact submissions within a
// time window. Implementations may be backed by Redis; a nil checker is
// treated as "never a duplicate".
type ContactDeduper interface {
	IsDuplicate(ctx context.Context, msg domain.ContactMessage) (bool, error)
	Mark(ctx context.Context, msg domain.ContactMessage) error
}

// ContactService validates and relays contact-form submissions.
type ContactService interface {
	Send(ctx context.Context, msg domain.ContactMessage) error
}
