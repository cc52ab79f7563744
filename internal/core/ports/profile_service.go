package ports

import (
	"context"

	"github.com/careerpilot/advisor-api/internal/core/domain"
)

// UpdateProfileInput carries a partial profile update. Nil pointers mean
// "not provided, keep the stored value"; a pointer to the empty string is an
// intentional clear. Name follows the original contract: it only changes
// when a non-empty value is given.
type UpdateProfileInput struct {
	Name        *string
	Skills      *string
	CareerGoals *string
}

// ProfileService exposes the authenticated user's profile.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	// Update applies a partial update with per-field last-write-wins
	// semantics and returns the user with a newly issued token.
	Update(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, string, error)
}
