package domain

import "errors"

// ErrMailNotConfigured is returned when the contact relay is invoked without
// SMTP credentials. The operator-facing cause is logged; end users only see a
// generic message.
var ErrMailNotConfigured = errors.New("email functionality is not configured")

// ContactMessage is a contact-form submission to be relayed by email.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}
