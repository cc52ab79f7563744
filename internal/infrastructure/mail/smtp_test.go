package mail

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/careerpilot/advisor-api/internal/core/domain"
)

func TestSMTPMailer_NotConfigured(t *testing.T) {
	m := NewSMTPMailer(Config{})

	err := m.SendContactMessage(context.Background(), domain.ContactMessage{Name: "A", Email: "a@example.com", Message: "hi"})
	if !errors.Is(err, domain.ErrMailNotConfigured) {
		t.Fatalf("expected ErrMailNotConfigured, got %v", err)
	}
}

func TestConfig_Configured(t *testing.T) {
	full := Config{Host: "smtp.example.com", Port: 587, Username: "u", Password: "p", Recipient: "r@example.com"}
	if !full.Configured() {
		t.Fatalf("full config must report configured")
	}

	partials := []Config{
		{Port: 587, Username: "u", Password: "p", Recipient: "r@example.com"},
		{Host: "smtp.example.com", Username: "u", Password: "p"},
		{},
	}
	for _, c := range partials {
		if c.Configured() {
			t.Fatalf("partial config must not report configured: %+v", c)
		}
	}
}

func TestBodies(t *testing.T) {
	msg := domain.ContactMessage{Name: "A", Email: "a@example.com", Message: "line one\nline two"}

	if !strings.Contains(textBody(msg), "line one\nline two") {
		t.Fatalf("text body must carry the raw message")
	}
	if !strings.Contains(htmlBody(msg), "line one<br>line two") {
		t.Fatalf("html body must convert newlines to <br>")
	}
}
