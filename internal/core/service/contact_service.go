package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/careerpilot/advisor-api/internal/core/domain"
	"github.com/careerpilot/advisor-api/internal/core/ports"
)

// ContactService relays contact-form submissions through a Mailer. An
// optional deduper suppresses identical resubmissions; when it is nil (or
// fails) the message is relayed normally.
type ContactService struct {
	mailer ports.Mailer
	dedup  ports.ContactDeduper
	log    zerolog.Logger
}

func NewContactService(mailer ports.Mailer, dedup ports.ContactDeduper, log zerolog.Logger) *ContactService {
	return &ContactService{mailer: mailer, dedup: dedup, log: log}
}

func (s *ContactService) Send(ctx context.Context, msg domain.ContactMessage) error {
	if s.dedup != nil {
		dup, err := s.dedup.IsDuplicate(ctx, msg)
		if err != nil {
			s.log.Warn().Err(err).Msg("contact dedup check failed, relaying anyway")
		} else if dup {
			s.log.Info().Str("email", msg.Email).Msg("duplicate contact message suppressed")
			return nil
		}
	}

	if err := s.mailer.SendContactMessage(ctx, msg); err != nil {
		return err
	}

	if s.dedup != nil {
		if err := s.dedup.Mark(ctx, msg); err != nil {
			s.log.Warn().Err(err).Msg("contact dedup mark failed")
		}
	}
	return nil
}
