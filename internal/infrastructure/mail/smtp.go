// Package mail relays contact-form submissions over SMTP.
package mail

import (
	"context"
	"fmt"
	"strings"

	gomail "github.com/wneessen/go-mail"

	"github.com/careerpilot/advisor-api/internal/core/domain"
)

// Config holds the SMTP settings for the contact relay. The relay is
// considered configured only when host, username, password and recipient are
// all present.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Recipient string
}

// Configured reports whether all required relay settings are present.
func (c Config) Configured() bool {
	return c.Host != "" && c.Username != "" && c.Password != "" && c.Recipient != ""
}

// SMTPMailer sends contact messages to the configured recipient.
type SMTPMailer struct {
	cfg Config
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendContactMessage(ctx context.Context, msg domain.ContactMessage) error {
	if !m.cfg.Configured() {
		return domain.ErrMailNotConfigured
	}

	mail := gomail.NewMsg()
	if err := mail.FromFormat(msg.Name, m.cfg.Username); err != nil {
		return fmt.Errorf("contact mail from: %w", err)
	}
	if err := mail.To(m.cfg.Recipient); err != nil {
		return fmt.Errorf("contact mail to: %w", err)
	}
	mail.Subject(fmt.Sprintf("New message from %s via Career Advisor", msg.Name))
	mail.SetBodyString(gomail.TypeTextPlain, textBody(msg))
	mail.AddAlternativeString(gomail.TypeTextHTML, htmlBody(msg))

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("contact mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, mail); err != nil {
		return fmt.Errorf("contact mail send: %w", err)
	}
	return nil
}

func textBody(msg domain.ContactMessage) string {
	return fmt.Sprintf("You have received a new message from:\n\nName: %s\nEmail: %s\n\nMessage:\n%s",
		msg.Name, msg.Email, msg.Message)
}

func htmlBody(msg domain.ContactMessage) string {
	return fmt.Sprintf(`<p>You have received a new message from:</p>
<ul>
  <li><strong>Name:</strong> %s</li>
  <li><strong>Email:</strong> <a href="mailto:%s">%s</a></li>
</ul>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		msg.Name, msg.Email, msg.Email,
		strings.ReplaceAll(msg.Message, "\n", "<br>"))
}
