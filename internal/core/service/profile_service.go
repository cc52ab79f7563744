package service

import (
	"context"
	"time"

	"github.com/careerpilot/advisor-api/internal/core/domain"
	"github.com/careerpilot/advisor-api/internal/core/ports"
)

// ProfileService reads and mutates the authenticated user's record.
type ProfileService struct {
	repo   ports.UserRepository
	tokens *TokenIssuer
}

func NewProfileService(repo ports.UserRepository, tokens *TokenIssuer) *ProfileService {
	return &ProfileService{repo: repo, tokens: tokens}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// Update applies last-write-wins semantics per field. Skills and career
// goals distinguish "not provided" (nil, keep stored value) from an explicit
// empty string (intentional clear). Name only changes when non-empty,
// matching the original contract. Every successful update re-issues a token.
func (s *ProfileService) Update(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, string, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	if input.Name != nil && *input.Name != "" {
		user.Name = *input.Name
	}
	if input.Skills != nil {
		user.Skills = *input.Skills
	}
	if input.CareerGoals != nil {
		user.CareerGoals = *input.CareerGoals
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(updated.ID)
	if err != nil {
		return nil, "", err
	}
	return updated, token, nil
}
